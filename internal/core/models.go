package core

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Platform identifies the storefront a game belongs to
type Platform string

const (
	PlatformSteam   Platform = "steam"
	PlatformEpic    Platform = "epic"
	PlatformUbisoft Platform = "ubisoft"
	PlatformGOG     Platform = "gog"
	PlatformOther   Platform = "other"
)

// Platforms lists every supported platform in display order
var Platforms = []Platform{PlatformSteam, PlatformEpic, PlatformUbisoft, PlatformGOG, PlatformOther}

// KnownPlatform reports whether p is one of the supported platforms
func KnownPlatform(p Platform) bool {
	switch p {
	case PlatformSteam, PlatformEpic, PlatformUbisoft, PlatformGOG, PlatformOther:
		return true
	}
	return false
}

// GameEntry represents one owned game in the registry
type GameEntry struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Platform     Platform   `json:"platform"`
	StoreID      string     `json:"store_id"`
	LaunchURL    string     `json:"launch_url"`
	StoreURL     string     `json:"store_url,omitempty"`
	AddedAt      time.Time  `json:"added_at"`
	PlayCount    int        `json:"play_count"`
	LastPlayedAt *time.Time `json:"last_played,omitempty"`
	Migrated     bool       `json:"migrated,omitempty"`
	Detected     bool       `json:"detected,omitempty"`
}

// Stats is the aggregate block recomputed from the entries on every save.
// It is derived data and never trusted as a source of truth on load.
type Stats struct {
	TotalGames      int                  `json:"total_games"`
	GamesByPlatform map[Platform]int     `json:"games_by_platform"`
	PlayCount       map[string]int       `json:"play_count"`
	LastPlayed      map[string]time.Time `json:"last_played"`
}

// SchemaVersion tags the registry document layout
const SchemaVersion = "3.0"

// RegistryDocument is the persisted envelope for the game collection.
// Entry keys are decimal string renderings of the entry id.
type RegistryDocument struct {
	SchemaVersion string                `json:"version"`
	Games         map[string]*GameEntry `json:"games"`
	NextID        int                   `json:"next_id"`
	LastUpdated   time.Time             `json:"last_updated"`
	Platforms     []Platform            `json:"platforms"`
	Stats         Stats                 `json:"stats"`
}

// NewRegistryDocument returns an empty document ready for use
func NewRegistryDocument() *RegistryDocument {
	return &RegistryDocument{
		SchemaVersion: SchemaVersion,
		Games:         make(map[string]*GameEntry),
		NextID:        1,
		LastUpdated:   time.Now(),
		Platforms:     append([]Platform(nil), Platforms...),
	}
}

// RecomputeStats rebuilds the aggregate stats block from the entries
func (d *RegistryDocument) RecomputeStats() {
	stats := Stats{
		TotalGames:      len(d.Games),
		GamesByPlatform: make(map[Platform]int),
		PlayCount:       make(map[string]int),
		LastPlayed:      make(map[string]time.Time),
	}
	for key, game := range d.Games {
		stats.GamesByPlatform[game.Platform]++
		stats.PlayCount[key] = game.PlayCount
		if game.LastPlayedAt != nil {
			stats.LastPlayed[key] = *game.LastPlayedAt
		}
	}
	d.Stats = stats
}

// UpdateState is the persisted update bookkeeping, kept in a separate file so
// it survives game-data resets
type UpdateState struct {
	Version     string `json:"version"`
	LastUpdated string `json:"last_updated"`
	Channel     string `json:"update_channel"`
	LastCheck   int64  `json:"last_check"`
}

// LaunchURL derives the launch target for a platform and store identifier.
// The result is computed once at entry creation and never recomputed, so
// later template changes do not retroactively alter existing entries.
func LaunchURL(platform Platform, storeID string) string {
	switch platform {
	case PlatformSteam:
		return fmt.Sprintf("steam://rungameid/%s", storeID)
	case PlatformUbisoft:
		return fmt.Sprintf("uplay://launch/%s", storeID)
	case PlatformEpic:
		return fmt.Sprintf("com.epicgames.launcher://apps/%s?action=launch&silent=true", storeID)
	case PlatformGOG:
		return fmt.Sprintf("goggalaxy://openGameView/%s", storeID)
	default:
		return storeID
	}
}

// StoreURL derives the human-facing store page for a platform entry.
// Returns empty when no sensible page can be built.
func StoreURL(platform Platform, storeID, name string) string {
	switch platform {
	case PlatformSteam:
		return fmt.Sprintf("https://store.steampowered.com/app/%s/", storeID)
	case PlatformUbisoft:
		return fmt.Sprintf("https://store.ubi.com/us/search/?q=%s", url.QueryEscape(name))
	case PlatformEpic:
		return fmt.Sprintf("https://store.epicgames.com/en-US/p/%s", storeID)
	case PlatformGOG:
		return fmt.Sprintf("https://www.gog.com/game/%s", storeID)
	default:
		return ""
	}
}

// Key renders an entry id as its registry map key
func Key(id int) string {
	return strconv.Itoa(id)
}

// Exit codes
const (
	ExitSuccess      = 0
	ExitGeneral      = 1
	ExitInvalidArgs  = 2
	ExitLaunchFailed = 3
	ExitUpdateFailed = 4
	ExitRegistry     = 5
	ExitNetwork      = 7
	ExitInterrupted  = 130
)
