package scanner

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/fsops"
)

// DetectedGame is one installed game found by a library scan
type DetectedGame struct {
	Name     string
	Platform core.Platform
	StoreID  string
}

var (
	libraryPathPattern = regexp.MustCompile(`"path"\s*"([^"]+)"`)
	appIDPattern       = regexp.MustCompile(`"appid"\s*"(\d+)"`)
	appNamePattern     = regexp.MustCompile(`"name"\s*"([^"]+)"`)
)

// SteamScanner finds installed Steam games by reading the library manifests
type SteamScanner struct {
	fs    afero.Fs
	log   *zerolog.Logger
	roots []string
}

// NewSteamScanner creates a scanner over the conventional Steam roots for the
// current platform
func NewSteamScanner(fs afero.Fs, log *zerolog.Logger) *SteamScanner {
	return &SteamScanner{fs: fs, log: log, roots: defaultSteamRoots(runtime.GOOS)}
}

// NewSteamScannerWithRoots creates a scanner over explicit Steam roots, for tests
func NewSteamScannerWithRoots(fs afero.Fs, log *zerolog.Logger, roots []string) *SteamScanner {
	return &SteamScanner{fs: fs, log: log, roots: roots}
}

func defaultSteamRoots(goos string) []string {
	home, _ := os.UserHomeDir()
	switch goos {
	case "windows":
		return []string{
			`C:\Program Files (x86)\Steam`,
			`C:\Program Files\Steam`,
		}
	case "darwin":
		return []string{
			filepath.Join(home, "Library", "Application Support", "Steam"),
		}
	default:
		return []string{
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".local", "share", "Steam"),
			filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
		}
	}
}

// Scan walks every reachable Steam library and returns the installed games,
// sorted by name. A missing Steam installation yields an empty result, not an
// error.
func (s *SteamScanner) Scan() []DetectedGame {
	seen := make(map[string]bool)
	var games []DetectedGame

	for _, libDir := range s.libraryDirs() {
		for _, game := range s.scanLibrary(libDir) {
			if seen[game.StoreID] {
				continue
			}
			seen[game.StoreID] = true
			games = append(games, game)
		}
	}

	sort.Slice(games, func(i, j int) bool { return games[i].Name < games[j].Name })
	s.log.Info().Int("count", len(games)).Msg("steam scan complete")
	return games
}

// libraryDirs resolves every steamapps directory, following the library
// folders manifest when present
func (s *SteamScanner) libraryDirs() []string {
	var dirs []string
	for _, root := range s.roots {
		steamapps := filepath.Join(root, "steamapps")
		if !fsops.IsDir(s.fs, steamapps) {
			continue
		}
		dirs = append(dirs, steamapps)

		manifest := filepath.Join(steamapps, "libraryfolders.vdf")
		content, err := afero.ReadFile(s.fs, manifest)
		if err != nil {
			continue
		}
		for _, match := range libraryPathPattern.FindAllSubmatch(content, -1) {
			extra := filepath.Join(string(match[1]), "steamapps")
			if fsops.IsDir(s.fs, extra) {
				dirs = append(dirs, extra)
			}
		}
	}
	return dirs
}

// scanLibrary reads every appmanifest in one steamapps directory
func (s *SteamScanner) scanLibrary(dir string) []DetectedGame {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil
	}

	var games []DetectedGame
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".acf" {
			continue
		}
		matched, _ := filepath.Match("appmanifest_*.acf", name)
		if !matched {
			continue
		}

		content, err := afero.ReadFile(s.fs, filepath.Join(dir, name))
		if err != nil {
			continue
		}

		idMatch := appIDPattern.FindSubmatch(content)
		nameMatch := appNamePattern.FindSubmatch(content)
		if idMatch == nil || nameMatch == nil {
			continue
		}

		games = append(games, DetectedGame{
			Name:     string(nameMatch[1]),
			Platform: core.PlatformSteam,
			StoreID:  string(idMatch[1]),
		})
	}
	return games
}
