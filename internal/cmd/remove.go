package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/registry"
	"github.com/be-smiley2/glados-launcher/internal/ui"
)

// NewRemoveCmd creates the remove command.
func NewRemoveCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a game from the collection",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid game id %q", args[0])
			}

			reg := registry.New(cfg, log)
			game, err := reg.Get(id)
			if err != nil {
				if errors.Is(err, registry.ErrNotFound) {
					return fmt.Errorf("game #%d not found", id)
				}
				return err
			}

			if !yes {
				ok, err := ui.ConfirmPrompt(fmt.Sprintf("Remove '%s'", game.Name))
				if err != nil || !ok {
					ui.PrintInfo("Nothing removed.")
					return nil
				}
			}

			if err := reg.Remove(id); err != nil {
				return fmt.Errorf("failed to remove game: %w", err)
			}

			ui.PrintSuccess("Removed '%s'", game.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
