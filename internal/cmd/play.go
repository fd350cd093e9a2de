package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/be-smiley2/glados-launcher/internal/catalog"
	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/launcher"
	"github.com/be-smiley2/glados-launcher/internal/registry"
	"github.com/be-smiley2/glados-launcher/internal/ui"
)

// NewPlayCmd creates the play command.
func NewPlayCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <id|name>",
		Short: "Launch a game",
		Long:  `Launch a game by its numeric id or by name (partial match).`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New(cfg, log)

			game, err := resolveGame(reg, strings.Join(args, " "))
			if err != nil {
				return err
			}

			ui.GLaDOS("*Initializing launch for '%s'...*", game.Name)
			if err := launcher.New(log).Open(cmd.Context(), game.LaunchURL); err != nil {
				return fmt.Errorf("failed to launch %q: %w", game.Name, err)
			}

			reg.RecordLaunch(game.ID)
			catalog.New(afero.NewOsFs(), cfg, log).Generate(reg.Document(), version)

			ui.PrintSuccess("'%s' launched", game.Name)
			return nil
		},
	}

	return cmd
}

// resolveGame finds a game by numeric id first, then by name match. A name
// matching more than one game is an error listing the candidates.
func resolveGame(reg *registry.Registry, ref string) (*core.GameEntry, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		game, err := reg.Get(id)
		if err != nil {
			if errors.Is(err, registry.ErrNotFound) {
				return nil, fmt.Errorf("game #%d not found", id)
			}
			return nil, err
		}
		return game, nil
	}

	matches := reg.SearchByName(ref)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no game matching %q", ref)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = fmt.Sprintf("#%d %s", m.ID, m.Name)
		}
		return nil, fmt.Errorf("%q matches multiple games: %s", ref, strings.Join(names, ", "))
	}
}
