package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/registry"
	"github.com/be-smiley2/glados-launcher/internal/search"
	"github.com/be-smiley2/glados-launcher/internal/ui"
)

// NewSearchCmd creates the search command.
func NewSearchCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var knownOnly bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the collection and the known-games table",
		Long: `Search the collection by name, then suggest well-known titles matching
the query that are not in the collection yet.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			if !knownOnly {
				reg := registry.New(cfg, log)
				matches := reg.SearchByName(query)
				if len(matches) > 0 {
					ui.PrintHeader("IN YOUR COLLECTION")
					for _, game := range matches {
						fmt.Printf("  #%d %s [%s]\n", game.ID, game.Name, ui.ColorizePlatform(game.Platform))
					}
				} else {
					ui.PrintInfo("Nothing in the collection matches %q", query)
				}
			}

			suggestions := search.Suggest(query)
			if len(suggestions) == 0 {
				if knownOnly {
					ui.PrintInfo("No known games match %q", query)
				}
				return nil
			}

			ui.PrintHeader("KNOWN GAMES")
			for _, s := range suggestions {
				fmt.Printf("  %s [%s %s]  glados add %q\n", s.Name, s.Platform, s.StoreID, s.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&knownOnly, "known", false, "search the known-games table only")

	return cmd
}
