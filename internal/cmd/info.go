package cmd

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/registry"
	"github.com/be-smiley2/glados-launcher/internal/ui"
	"github.com/be-smiley2/glados-launcher/internal/updater"
)

// NewInfoCmd creates the info command.
func NewInfoCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show system information",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New(cfg, log)
			upd := updater.New(cfg, log, version)

			ui.PrintHeader("SYSTEM INFORMATION")
			ui.PrintKeyValue("Version", upd.CurrentVersion())
			ui.PrintKeyValue("Platform", runtime.GOOS+"/"+runtime.GOARCH)
			ui.PrintKeyValue("Total games", fmt.Sprintf("%d", reg.Count()))
			if reg.Count() > 0 {
				launches := 0
				for _, game := range reg.List() {
					launches += game.PlayCount
				}
				ui.PrintKeyValue("Total launches", fmt.Sprintf("%d", launches))
			}

			doc := reg.Document()
			for _, platform := range doc.Platforms {
				if count := doc.Stats.GamesByPlatform[platform]; count > 0 {
					ui.PrintKeyValue("  "+string(platform), fmt.Sprintf("%d", count))
				}
			}

			ui.PrintSeparator()
			ui.PrintKeyValue("Repository", fmt.Sprintf("https://github.com/%s/%s", cfg.Repo.Owner, cfg.Repo.Name))
			ui.PrintKeyValue("Data dir", cfg.Paths.DataDir)
			ui.PrintKeyValue("Registry file", cfg.Paths.RegistryFile)
			ui.PrintKeyValue("Catalog file", cfg.Paths.CatalogFile)
			ui.PrintKeyValue("Log file", cfg.Paths.LogFile)
			return nil
		},
	}

	return cmd
}
