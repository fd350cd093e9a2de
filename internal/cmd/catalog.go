package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/be-smiley2/glados-launcher/internal/catalog"
	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/registry"
	"github.com/be-smiley2/glados-launcher/internal/ui"
)

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	var regenerate bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "View the facility game catalog",
		Long:  `Print the Aperture Science game catalog. Use --regenerate to rebuild it from the collection first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			gen := catalog.New(fs, cfg, log)

			if regenerate {
				reg := registry.New(cfg, log)
				gen.Generate(reg.Document(), version)
			}

			content, err := gen.View()
			if err != nil {
				reg := registry.New(cfg, log)
				gen.Generate(reg.Document(), version)
				if content, err = gen.View(); err != nil {
					ui.PrintError("catalog unavailable: %v", err)
					return fmt.Errorf("read catalog: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&regenerate, "regenerate", false, "rebuild the catalog before viewing")

	return cmd
}
