package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/be-smiley2/glados-launcher/internal/catalog"
	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/registry"
	"github.com/be-smiley2/glados-launcher/internal/scanner"
	"github.com/be-smiley2/glados-launcher/internal/ui"
)

// NewScanCmd creates the scan command.
func NewScanCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan for installed games",
		Long:  `Scan local Steam libraries for installed games and register any not already in the collection.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			reg := registry.New(cfg, log)

			found := scanner.NewSteamScanner(fs, log).Scan()
			if len(found) == 0 {
				ui.PrintInfo("No installed games detected")
				return nil
			}

			ui.PrintInfo("Detected %d installed games", len(found))

			added := 0
			for _, game := range found {
				if hasStoreID(reg, game.Platform, game.StoreID) {
					continue
				}
				if dryRun {
					ui.PrintInfo("Would add: %s [%s %s]", game.Name, game.Platform, game.StoreID)
					added++
					continue
				}
				storeURL := core.StoreURL(game.Platform, game.StoreID, game.Name)
				if _, err := reg.CreateDetected(game.Name, game.Platform, game.StoreID, storeURL); err != nil {
					log.Warn().Err(err).Str("name", game.Name).Msg("detected game not added")
					continue
				}
				ui.PrintSuccess("Added: %s", game.Name)
				added++
			}

			if dryRun {
				ui.PrintInfo("%d games would be added", added)
				return nil
			}

			catalog.New(fs, cfg, log).Generate(reg.Document(), version)
			ui.PrintSuccess("Scan complete: %d games added", added)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report detected games without adding them")

	return cmd
}

func hasStoreID(reg *registry.Registry, platform core.Platform, storeID string) bool {
	for _, entry := range reg.FilterByPlatform(string(platform)) {
		if entry.StoreID == storeID {
			return true
		}
	}
	return false
}
