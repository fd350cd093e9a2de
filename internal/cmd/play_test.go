package cmd

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/registry"
)

func TestResolveGame(t *testing.T) {
	cfg := cmdTestConfig(t)
	logger := zerolog.New(io.Discard)
	reg := registry.New(cfg, &logger)

	id1, err := reg.Create("Portal", core.PlatformSteam, "400", "")
	require.NoError(t, err)
	_, err = reg.Create("Portal 2", core.PlatformSteam, "620", "")
	require.NoError(t, err)
	_, err = reg.Create("Terraria", core.PlatformSteam, "105600", "")
	require.NoError(t, err)

	t.Run("by id", func(t *testing.T) {
		game, err := resolveGame(reg, "1")
		require.NoError(t, err)
		assert.Equal(t, id1, game.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := resolveGame(reg, "99")
		assert.Error(t, err)
	})

	t.Run("unique name match", func(t *testing.T) {
		game, err := resolveGame(reg, "terraria")
		require.NoError(t, err)
		assert.Equal(t, "Terraria", game.Name)
	})

	t.Run("ambiguous name", func(t *testing.T) {
		_, err := resolveGame(reg, "portal")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "matches multiple games")
	})

	t.Run("no match", func(t *testing.T) {
		_, err := resolveGame(reg, "witcher")
		assert.Error(t, err)
	})
}
