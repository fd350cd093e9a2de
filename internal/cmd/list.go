package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/registry"
	"github.com/be-smiley2/glados-launcher/internal/ui"
)

// NewListCmd creates the list command
func NewListCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput     bool
		filterPlatform string
		filterName     string
		showDetails    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games in the collection",
		Long:  `List all games in the collection with filtering options.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New(cfg, log)

			games := reg.List()
			if filterPlatform != "" {
				games = reg.FilterByPlatform(filterPlatform)
			}
			if filterName != "" {
				games = filterGamesByName(games, filterName)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(games)
			}

			if len(games) == 0 {
				if filterPlatform != "" || filterName != "" {
					ui.PrintWarning("No games found matching filters")
				} else {
					ui.PrintInfo("No games in the collection")
				}
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Game Collection (%d games)\n\n", len(games))

			if showDetails {
				printDetailedTable(cmd, games)
			} else {
				printCompactTable(cmd, games)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().StringVar(&filterPlatform, "platform", "", "filter by platform (steam, epic, ubisoft, gog, other)")
	cmd.Flags().StringVar(&filterName, "name", "", "filter by game name (partial match)")
	cmd.Flags().BoolVarP(&showDetails, "details", "d", false, "show detailed information")

	return cmd
}

// filterGamesByName keeps games whose name contains filterName, case-insensitively
func filterGamesByName(games []*core.GameEntry, filterName string) []*core.GameEntry {
	filtered := make([]*core.GameEntry, 0)
	for _, game := range games {
		if strings.Contains(strings.ToLower(game.Name), strings.ToLower(filterName)) {
			filtered = append(filtered, game)
		}
	}
	return filtered
}

// printCompactTable prints a compact table view
func printCompactTable(cmd *cobra.Command, games []*core.GameEntry) {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"ID", "Name", "Platform", "Played"}),
		tablewriter.WithAlignment(tw.MakeAlign(4, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for _, game := range games {
		played := "-"
		if game.PlayCount > 0 {
			played = fmt.Sprintf("%dx", game.PlayCount)
		}

		table.Append(
			fmt.Sprintf("%d", game.ID),
			game.Name,
			ui.ColorizePlatform(game.Platform),
			played,
		)
	}

	table.Render()
}

// printDetailedTable prints a detailed table view
func printDetailedTable(cmd *cobra.Command, games []*core.GameEntry) {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"ID", "Name", "Platform", "Store ID", "Played", "Last Played", "Added"}),
		tablewriter.WithAlignment(tw.MakeAlign(7, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleLight)),
	)

	for _, game := range games {
		lastPlayed := "-"
		if game.LastPlayedAt != nil {
			lastPlayed = game.LastPlayedAt.Format("2006-01-02 15:04")
		}
		added := "-"
		if !game.AddedAt.IsZero() {
			added = game.AddedAt.Format("2006-01-02")
		}

		table.Append(
			fmt.Sprintf("%d", game.ID),
			game.Name,
			ui.ColorizePlatform(game.Platform),
			game.StoreID,
			fmt.Sprintf("%d", game.PlayCount),
			lastPlayed,
			added,
		)
	}

	table.Render()
}
