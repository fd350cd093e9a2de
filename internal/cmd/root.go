package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/be-smiley2/glados-launcher/internal/config"
)

// NewRootCmd creates the root command. Invoked without a subcommand it drops
// into the interactive facility menu.
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "glados",
		Short:        "Aperture Science game library organizer",
		Long:         `A personal game-library organizer: stores games owned across storefronts, renders the facility catalog, launches games through platform URI schemes and keeps itself updated.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd.Context(), cfg, log, version)
		},
	}

	cmd.AddCommand(NewAddCmd(cfg, log))
	cmd.AddCommand(NewRemoveCmd(cfg, log))
	cmd.AddCommand(NewListCmd(cfg, log))
	cmd.AddCommand(NewPlayCmd(cfg, log, version))
	cmd.AddCommand(NewScanCmd(cfg, log, version))
	cmd.AddCommand(NewSearchCmd(cfg, log))
	cmd.AddCommand(NewCatalogCmd(cfg, log, version))
	cmd.AddCommand(NewUpdateCmd(cfg, log, version))
	cmd.AddCommand(NewInfoCmd(cfg, log, version))
	cmd.AddCommand(NewCompletionCmd(cfg, log))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
