package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/be-smiley2/glados-launcher/internal/core"
)

// KnownGame is one row of the static well-known-games lookup table
type KnownGame struct {
	Name     string
	Platform core.Platform
	StoreID  string
}

// knownGames is a fixed table of well-known Steam titles, keyed by their
// conventional lowercase lookup name. This is a lookup table plus matching,
// not a search engine.
var knownGames = map[string]KnownGame{
	"portal":            {Name: "Portal", Platform: core.PlatformSteam, StoreID: "400"},
	"portal 2":          {Name: "Portal 2", Platform: core.PlatformSteam, StoreID: "620"},
	"half-life":         {Name: "Half-Life", Platform: core.PlatformSteam, StoreID: "70"},
	"half-life 2":       {Name: "Half-Life 2", Platform: core.PlatformSteam, StoreID: "220"},
	"team fortress 2":   {Name: "Team Fortress 2", Platform: core.PlatformSteam, StoreID: "440"},
	"counter-strike 2":  {Name: "Counter-Strike 2", Platform: core.PlatformSteam, StoreID: "730"},
	"dota 2":            {Name: "Dota 2", Platform: core.PlatformSteam, StoreID: "570"},
	"left 4 dead 2":     {Name: "Left 4 Dead 2", Platform: core.PlatformSteam, StoreID: "550"},
	"garrys mod":        {Name: "Garry's Mod", Platform: core.PlatformSteam, StoreID: "4000"},
	"civilization vi":   {Name: "Civilization VI", Platform: core.PlatformSteam, StoreID: "289070"},
	"the witcher 3":     {Name: "The Witcher 3", Platform: core.PlatformSteam, StoreID: "292030"},
	"gta 5":             {Name: "Grand Theft Auto V", Platform: core.PlatformSteam, StoreID: "271590"},
	"cyberpunk 2077":    {Name: "Cyberpunk 2077", Platform: core.PlatformSteam, StoreID: "1091500"},
	"skyrim":            {Name: "Skyrim Special Edition", Platform: core.PlatformSteam, StoreID: "489830"},
	"fallout 4":         {Name: "Fallout 4", Platform: core.PlatformSteam, StoreID: "377160"},
	"among us":          {Name: "Among Us", Platform: core.PlatformSteam, StoreID: "945360"},
	"rocket league":     {Name: "Rocket League", Platform: core.PlatformSteam, StoreID: "252950"},
	"terraria":          {Name: "Terraria", Platform: core.PlatformSteam, StoreID: "105600"},
	"stardew valley":    {Name: "Stardew Valley", Platform: core.PlatformSteam, StoreID: "413150"},
}

// Lookup returns the known game exactly matching name, case-insensitively
func Lookup(name string) (KnownGame, bool) {
	game, ok := knownGames[strings.ToLower(strings.TrimSpace(name))]
	return game, ok
}

// Suggest returns known games fuzzily matching the query, best matches first
func Suggest(query string) []KnownGame {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	keys := make([]string, 0, len(knownGames))
	for key := range knownGames {
		keys = append(keys, key)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, keys)
	sort.Sort(ranks)

	suggestions := make([]KnownGame, 0, len(ranks))
	for _, rank := range ranks {
		suggestions = append(suggestions, knownGames[rank.Target])
	}
	return suggestions
}
