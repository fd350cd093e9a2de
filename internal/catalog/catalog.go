package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/core"
)

const banner = "████████████████████████████████████████████████████████████████████████████████"
const rule = "═══════════════════════════════════════════════════════════════════════════════════"

// Generator renders the human-readable catalog text. The catalog is a
// non-authoritative derivation of the registry; it is regenerated in full and
// never read back by the core.
type Generator struct {
	fs  afero.Fs
	cfg *config.Config
	log *zerolog.Logger
}

// New creates a catalog generator
func New(fs afero.Fs, cfg *config.Config, log *zerolog.Logger) *Generator {
	return &Generator{fs: fs, cfg: cfg, log: log}
}

// Generate writes the catalog file from the current registry document.
// Best-effort: a write failure is logged, never escalated, because a stale
// catalog must not block any primary action.
func (g *Generator) Generate(doc *core.RegistryDocument, version string) {
	content := Render(doc, version, time.Now())
	if err := afero.WriteFile(g.fs, g.cfg.Paths.CatalogFile, []byte(content), 0644); err != nil {
		g.log.Warn().Err(err).Str("file", g.cfg.Paths.CatalogFile).Msg("catalog not written")
	}
}

// View returns the current catalog file content
func (g *Generator) View() (string, error) {
	data, err := afero.ReadFile(g.fs, g.cfg.Paths.CatalogFile)
	if err != nil {
		return "", fmt.Errorf("read catalog: %w", err)
	}
	return string(data), nil
}

// Render produces the catalog text for a registry document
func Render(doc *core.RegistryDocument, version string, now time.Time) string {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString("                     APERTURE SCIENCE GAME CATALOG\n")
	fmt.Fprintf(&b, "                          VERSION: %s\n", version)
	b.WriteString(banner + "\n\n")

	if len(doc.Games) == 0 {
		b.WriteString("GAMES ADDED: 0\n")
		b.WriteString("STATUS: AWAITING USER INPUT\n")
		b.WriteString("EXPECTED DISAPPOINTMENT LEVEL: MAXIMUM\n\n")
		b.WriteString("Your catalog is currently empty. Use the game management system or the scanner to add games.\n\n")
		b.WriteString(rule + "\n")
		b.WriteString("                                  END CATALOG\n")
		b.WriteString(rule + "\n")
		return b.String()
	}

	detected := 0
	maxID := 0
	for _, game := range doc.Games {
		if game.Detected {
			detected++
		}
		if game.ID > maxID {
			maxID = game.ID
		}
	}

	fmt.Fprintf(&b, "GAMES TOTAL: %d\n", len(doc.Games))
	fmt.Fprintf(&b, "AUTO-DETECTED: %d\n", detected)
	fmt.Fprintf(&b, "MANUAL ENTRIES: %d\n", len(doc.Games)-detected)
	b.WriteString("STATUS: COLLECTION ACTIVE\n\n")
	b.WriteString("Your catalog of interactive disappointment:\n")

	grouped := groupByPlatform(doc)
	for _, platform := range core.Platforms {
		games := grouped[platform]
		if len(games) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s GAMES:\n", strings.ToUpper(string(platform)))
		for _, game := range games {
			line := fmt.Sprintf("%d. %s", game.ID, game.Name)
			if game.Detected {
				line += " [AUTO-DETECTED]"
			}
			if game.Migrated {
				line += " [MIGRATED]"
			}
			if game.PlayCount > 0 {
				line += fmt.Sprintf(" (Played %dx)", game.PlayCount)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "Game Selection Range: 1 to %d\n", maxID)
	fmt.Fprintf(&b, "Total Games: %d | Auto-Detected: %d\n", len(doc.Games), detected)
	fmt.Fprintf(&b, "Last Updated: %s\n\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString("\"Your disappointments, now with automatic detection.\" - GLaDOS\n")
	b.WriteString(rule + "\n")
	return b.String()
}

func groupByPlatform(doc *core.RegistryDocument) map[core.Platform][]*core.GameEntry {
	grouped := make(map[core.Platform][]*core.GameEntry)
	for _, game := range doc.Games {
		grouped[game.Platform] = append(grouped[game.Platform], game)
	}
	for _, games := range grouped {
		sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	}
	return grouped
}
