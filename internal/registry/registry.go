package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/fsops"
)

var (
	// ErrNotFound indicates the requested entry id is not in the registry
	ErrNotFound = errors.New("game not found")
	// ErrInvalidInput indicates a create call with a missing identifier
	ErrInvalidInput = errors.New("invalid input")
)

// Registry owns the durable record of games. The in-memory document is
// authoritative for the process lifetime; the on-disk JSON file is overwritten
// in full on each mutation.
type Registry struct {
	fs       afero.Fs
	cfg      *config.Config
	log      *zerolog.Logger
	doc      *core.RegistryDocument
	importer Importer
}

// New creates a Registry backed by the OS filesystem and the default legacy
// importer, loads the persisted document and runs the one-time migration pass.
func New(cfg *config.Config, log *zerolog.Logger) *Registry {
	return NewWithFs(afero.NewOsFs(), cfg, log, NewRegexImporter())
}

// NewWithFs creates a Registry with an explicit filesystem and importer.
// Any load failure degrades to a fresh empty document; load never fails.
func NewWithFs(fs afero.Fs, cfg *config.Config, log *zerolog.Logger, importer Importer) *Registry {
	r := &Registry{
		fs:       fs,
		cfg:      cfg,
		log:      log,
		importer: importer,
	}
	r.doc = r.load()
	r.migrateLegacy()
	return r
}

// load reads the registry document, treating any failure as "no document"
func (r *Registry) load() *core.RegistryDocument {
	doc := core.NewRegistryDocument()
	if !fsops.Exists(r.fs, r.cfg.Paths.RegistryFile) {
		return doc
	}

	var loaded core.RegistryDocument
	if err := fsops.ReadJSON(r.fs, r.cfg.Paths.RegistryFile, &loaded); err != nil {
		r.log.Warn().Err(err).Str("file", r.cfg.Paths.RegistryFile).
			Msg("registry document unreadable, starting fresh")
		return doc
	}
	if loaded.Games == nil {
		loaded.Games = make(map[string]*core.GameEntry)
	}
	if loaded.NextID < 1 {
		loaded.NextID = 1
	}
	if len(loaded.Platforms) == 0 {
		loaded.Platforms = append([]core.Platform(nil), core.Platforms...)
	}
	return &loaded
}

// save recomputes stats and overwrites the on-disk document. A save failure
// is reported to the caller but leaves the in-memory document authoritative;
// the next successful save reconciles disk state.
func (r *Registry) save() error {
	r.doc.LastUpdated = time.Now()
	r.doc.RecomputeStats()
	if err := fsops.WriteJSON(r.fs, r.cfg.Paths.RegistryFile, r.doc); err != nil {
		r.log.Error().Err(err).Str("file", r.cfg.Paths.RegistryFile).Msg("registry save failed")
		return fmt.Errorf("save registry: %w", err)
	}
	return nil
}

// Create adds a new game and persists the document before returning.
// The launch URL is derived once here and never recomputed.
func (r *Registry) Create(name string, platform core.Platform, storeID, storeURL string) (int, error) {
	platform = core.Platform(strings.ToLower(string(platform)))
	if storeID == "" {
		return 0, fmt.Errorf("%w: empty store id", ErrInvalidInput)
	}
	if !core.KnownPlatform(platform) {
		return 0, fmt.Errorf("%w: unknown platform %q", ErrInvalidInput, platform)
	}

	id := r.doc.NextID
	entry := &core.GameEntry{
		ID:        id,
		Name:      name,
		Platform:  platform,
		StoreID:   storeID,
		LaunchURL: core.LaunchURL(platform, storeID),
		StoreURL:  storeURL,
		AddedAt:   time.Now(),
	}
	r.doc.Games[core.Key(id)] = entry
	r.doc.NextID++

	if err := r.save(); err != nil {
		return id, err
	}

	r.log.Info().Int("id", id).Str("name", name).Str("platform", string(platform)).
		Msg("game added")
	return id, nil
}

// CreateDetected adds a game found by the scanner, marking it auto-detected
func (r *Registry) CreateDetected(name string, platform core.Platform, storeID, storeURL string) (int, error) {
	id, err := r.Create(name, platform, storeID, storeURL)
	if err != nil {
		return 0, err
	}
	if entry, ok := r.doc.Games[core.Key(id)]; ok {
		entry.Detected = true
		if err := r.save(); err != nil {
			return id, err
		}
	}
	return id, nil
}

// Remove deletes the entry with the given id, persisting on success.
// The id space is never reused after deletion.
func (r *Registry) Remove(id int) error {
	key := core.Key(id)
	entry, ok := r.doc.Games[key]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	delete(r.doc.Games, key)
	if err := r.save(); err != nil {
		return err
	}
	r.log.Info().Int("id", id).Str("name", entry.Name).Msg("game removed")
	return nil
}

// RecordLaunch bumps the play counter and last-played stamp for an entry.
// Best-effort: a missing id or a failed save must never block the launch the
// user just performed, so failures are logged and swallowed.
func (r *Registry) RecordLaunch(id int) {
	entry, ok := r.doc.Games[core.Key(id)]
	if !ok {
		r.log.Debug().Int("id", id).Msg("launch recorded for unknown game, ignoring")
		return
	}
	now := time.Now()
	entry.PlayCount++
	entry.LastPlayedAt = &now
	if err := r.save(); err != nil {
		r.log.Warn().Err(err).Int("id", id).Msg("play count update not persisted")
	}
}

// Get returns the entry with the given id
func (r *Registry) Get(id int) (*core.GameEntry, error) {
	entry, ok := r.doc.Games[core.Key(id)]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return entry, nil
}

// List returns all entries sorted by id
func (r *Registry) List() []*core.GameEntry {
	entries := make([]*core.GameEntry, 0, len(r.doc.Games))
	for _, entry := range r.doc.Games {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// FilterByPlatform returns entries whose platform matches, case-insensitively
func (r *Registry) FilterByPlatform(platform string) []*core.GameEntry {
	var filtered []*core.GameEntry
	for _, entry := range r.List() {
		if strings.EqualFold(string(entry.Platform), platform) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// SearchByName returns entries whose name contains the substring, case-insensitively
func (r *Registry) SearchByName(substr string) []*core.GameEntry {
	needle := strings.ToLower(substr)
	var matched []*core.GameEntry
	for _, entry := range r.List() {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// MaxID returns the largest id currently present, 0 for an empty registry
func (r *Registry) MaxID() int {
	max := 0
	for _, entry := range r.doc.Games {
		if entry.ID > max {
			max = entry.ID
		}
	}
	return max
}

// Count returns the number of entries
func (r *Registry) Count() int {
	return len(r.doc.Games)
}

// Document exposes the current in-memory document for read-only collaborators
// such as the catalog renderer
func (r *Registry) Document() *core.RegistryDocument {
	return r.doc
}
