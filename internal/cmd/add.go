package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/registry"
	"github.com/be-smiley2/glados-launcher/internal/search"
	"github.com/be-smiley2/glados-launcher/internal/ui"
)

// NewAddCmd creates the add command.
func NewAddCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		platform string
		storeID  string
		storeURL string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a game to the collection",
		Long: `Add a game to the collection. The launch URL is derived from the
platform and store identifier. Well-known titles resolve their platform and
store identifier automatically when --platform and --id are omitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			reg := registry.New(cfg, log)

			if storeID == "" {
				known, ok := search.Lookup(name)
				if !ok {
					if suggestions := search.Suggest(name); len(suggestions) > 0 {
						ui.PrintInfo("Did you mean:")
						for _, s := range suggestions {
							fmt.Printf("  %s (%s %s)\n", s.Name, s.Platform, s.StoreID)
						}
					}
					return fmt.Errorf("unknown game %q: pass --platform and --id", name)
				}
				name = known.Name
				platform = string(known.Platform)
				storeID = known.StoreID
			}

			p := core.Platform(platform)
			if storeURL == "" {
				storeURL = core.StoreURL(p, storeID, name)
			}

			id, err := reg.Create(name, p, storeID, storeURL)
			if err != nil {
				return fmt.Errorf("failed to add game: %w", err)
			}

			ui.PrintSuccess("Added '%s' as game #%d", name, id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&platform, "platform", "p", string(core.PlatformSteam), "platform (steam, epic, ubisoft, gog, other)")
	cmd.Flags().StringVar(&storeID, "id", "", "store identifier (Steam app ID, Epic catalog ID, ...)")
	cmd.Flags().StringVar(&storeURL, "store-url", "", "store page URL")

	return cmd
}
