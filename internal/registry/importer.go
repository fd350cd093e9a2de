package registry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/fsops"
)

// LegacyEntry is one candidate game recovered from the old launcher file
type LegacyEntry struct {
	ID        int
	LaunchURL string
	Comment   string
}

// Importer extracts candidate entries from legacy file content. The matching
// rule is pluggable so it can be swapped or tested independently of the
// registry itself.
type Importer interface {
	Parse(content []byte) []LegacyEntry
}

// legacyPattern recognizes the two launch-URL shapes the old launcher kept as
// quoted string literals keyed by a numeric id, with an optional trailing
// comment carrying the game name:
//
//	"3": "steam://rungameid/620",  # Portal 2
var legacyPattern = regexp.MustCompile(`"(\d+)":\s*"((?:steam://rungameid/|uplay://launch/)[^"]+)"(?:,?[ \t]*#[ \t]*([^\n]+))?`)

// RegexImporter is the default importer for the old single-file launcher format
type RegexImporter struct {
	pattern *regexp.Regexp
}

// NewRegexImporter returns the default legacy importer
func NewRegexImporter() *RegexImporter {
	return &RegexImporter{pattern: legacyPattern}
}

// Parse extracts every recognizable legacy entry from content
func (i *RegexImporter) Parse(content []byte) []LegacyEntry {
	var entries []LegacyEntry
	for _, match := range i.pattern.FindAllSubmatch(content, -1) {
		id, err := strconv.Atoi(string(match[1]))
		if err != nil || id < 1 {
			continue
		}
		entries = append(entries, LegacyEntry{
			ID:        id,
			LaunchURL: string(match[2]),
			Comment:   strings.TrimSpace(string(match[3])),
		})
	}
	return entries
}

// migrateLegacy runs the one-time recovery pass against the old launcher file.
// Idempotent: ids already present are never overwritten, so re-running after a
// partial failure only adds genuinely missing entries. On success the legacy
// file is copied to a fixed backup name and left in place.
func (r *Registry) migrateLegacy() {
	legacyPath := r.cfg.Paths.LegacyFile
	if legacyPath == "" || legacyPath == r.cfg.Paths.ProgramFile {
		return
	}
	if !fsops.Exists(r.fs, legacyPath) {
		return
	}

	content, err := afero.ReadFile(r.fs, legacyPath)
	if err != nil {
		r.log.Warn().Err(err).Str("file", legacyPath).Msg("legacy file unreadable, skipping migration")
		return
	}

	migrated := 0
	for _, legacy := range r.importer.Parse(content) {
		key := core.Key(legacy.ID)
		if _, exists := r.doc.Games[key]; exists {
			continue
		}

		entry := legacyEntryToGame(legacy)
		r.doc.Games[key] = entry
		if legacy.ID >= r.doc.NextID {
			r.doc.NextID = legacy.ID + 1
		}
		migrated++
	}

	if migrated == 0 {
		return
	}

	r.log.Info().Int("count", migrated).Str("file", legacyPath).Msg("migrated legacy games")
	if err := r.save(); err != nil {
		r.log.Warn().Err(err).Msg("migrated document not persisted")
		return
	}
	if err := fsops.CopyFile(r.fs, legacyPath, legacyPath+".migrated.bak"); err != nil {
		r.log.Warn().Err(err).Msg("legacy file backup failed")
	}
}

// legacyEntryToGame reconstructs a GameEntry from a recovered legacy match
func legacyEntryToGame(legacy LegacyEntry) *core.GameEntry {
	var (
		platform core.Platform
		storeID  string
		storeURL string
	)

	switch {
	case strings.HasPrefix(legacy.LaunchURL, "steam://rungameid/"):
		platform = core.PlatformSteam
		storeID = lastPathSegment(legacy.LaunchURL)
		storeURL = core.StoreURL(platform, storeID, legacy.Comment)
	case strings.HasPrefix(legacy.LaunchURL, "uplay://launch/"):
		platform = core.PlatformUbisoft
		storeID = lastPathSegment(legacy.LaunchURL)
		storeURL = core.StoreURL(platform, storeID, legacy.Comment)
	default:
		platform = core.PlatformOther
		storeID = legacy.LaunchURL
	}

	name := legacy.Comment
	if name == "" {
		name = fmt.Sprintf("Migrated Game %d", legacy.ID)
	}

	return &core.GameEntry{
		ID:        legacy.ID,
		Name:      name,
		Platform:  platform,
		StoreID:   storeID,
		LaunchURL: legacy.LaunchURL,
		StoreURL:  storeURL,
		Migrated:  true,
	}
}

func lastPathSegment(s string) string {
	idx := strings.LastIndex(s, "/")
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}
