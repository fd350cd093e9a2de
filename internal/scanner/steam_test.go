package scanner

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/logging"
)

const portalManifest = `"AppState"
{
	"appid"		"400"
	"name"		"Portal"
	"StateFlags"		"4"
}
`

const halfLifeManifest = `"AppState"
{
	"appid"		"70"
	"name"		"Half-Life"
}
`

const libraryFoldersVDF = `"libraryfolders"
{
	"0"
	{
		"path"		"/steam"
	}
	"1"
	{
		"path"		"/mnt/games"
	}
}
`

func newScannerFixture(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/steam/steamapps", 0755))
	require.NoError(t, afero.WriteFile(fs, "/steam/steamapps/appmanifest_400.acf", []byte(portalManifest), 0644))
	return fs
}

func TestScanFindsInstalledGames(t *testing.T) {
	fs := newScannerFixture(t)
	log := logging.NewTestLogger(io.Discard)

	games := NewSteamScannerWithRoots(fs, log, []string{"/steam"}).Scan()
	require.Len(t, games, 1)
	assert.Equal(t, DetectedGame{Name: "Portal", Platform: core.PlatformSteam, StoreID: "400"}, games[0])
}

func TestScanFollowsLibraryFolders(t *testing.T) {
	fs := newScannerFixture(t)
	require.NoError(t, afero.WriteFile(fs, "/steam/steamapps/libraryfolders.vdf", []byte(libraryFoldersVDF), 0644))
	require.NoError(t, fs.MkdirAll("/mnt/games/steamapps", 0755))
	require.NoError(t, afero.WriteFile(fs, "/mnt/games/steamapps/appmanifest_70.acf", []byte(halfLifeManifest), 0644))

	log := logging.NewTestLogger(io.Discard)
	games := NewSteamScannerWithRoots(fs, log, []string{"/steam"}).Scan()

	require.Len(t, games, 2)
	// Sorted by name
	assert.Equal(t, "Half-Life", games[0].Name)
	assert.Equal(t, "Portal", games[1].Name)
}

func TestScanDeduplicatesAcrossLibraries(t *testing.T) {
	fs := newScannerFixture(t)
	require.NoError(t, afero.WriteFile(fs, "/steam/steamapps/libraryfolders.vdf", []byte(libraryFoldersVDF), 0644))
	require.NoError(t, fs.MkdirAll("/mnt/games/steamapps", 0755))
	require.NoError(t, afero.WriteFile(fs, "/mnt/games/steamapps/appmanifest_400.acf", []byte(portalManifest), 0644))

	log := logging.NewTestLogger(io.Discard)
	games := NewSteamScannerWithRoots(fs, log, []string{"/steam"}).Scan()
	assert.Len(t, games, 1)
}

func TestScanIgnoresMalformedManifests(t *testing.T) {
	fs := newScannerFixture(t)
	require.NoError(t, afero.WriteFile(fs, "/steam/steamapps/appmanifest_999.acf", []byte("not a manifest"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/steam/steamapps/notes.txt", []byte(portalManifest), 0644))

	log := logging.NewTestLogger(io.Discard)
	games := NewSteamScannerWithRoots(fs, log, []string{"/steam"}).Scan()
	assert.Len(t, games, 1)
}

func TestScanMissingSteamInstall(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := logging.NewTestLogger(io.Discard)

	games := NewSteamScannerWithRoots(fs, log, []string{"/nowhere"}).Scan()
	assert.Empty(t, games)
}
