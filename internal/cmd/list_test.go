package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/be-smiley2/glados-launcher/internal/core"
)

func TestAddListRemoveFlow(t *testing.T) {
	cfg := cmdTestConfig(t)
	logger := zerolog.New(io.Discard)

	addCmd := NewAddCmd(cfg, &logger)
	addCmd.SetArgs([]string{"Portal 2", "--platform", "steam", "--id", "620"})
	require.NoError(t, addCmd.Execute())

	var out bytes.Buffer
	listCmd := NewListCmd(cfg, &logger)
	listCmd.SetOut(&out)
	listCmd.SetArgs([]string{"--json"})
	require.NoError(t, listCmd.Execute())

	var games []core.GameEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Portal 2", games[0].Name)
	assert.Equal(t, "steam://rungameid/620", games[0].LaunchURL)

	removeCmd := NewRemoveCmd(cfg, &logger)
	removeCmd.SetArgs([]string{"1", "--yes"})
	require.NoError(t, removeCmd.Execute())

	out.Reset()
	listCmd = NewListCmd(cfg, &logger)
	listCmd.SetOut(&out)
	listCmd.SetArgs([]string{"--json"})
	require.NoError(t, listCmd.Execute())

	games = nil
	require.NoError(t, json.Unmarshal(out.Bytes(), &games))
	assert.Empty(t, games)
}

func TestAddKnownGameResolvesStoreID(t *testing.T) {
	cfg := cmdTestConfig(t)
	logger := zerolog.New(io.Discard)

	addCmd := NewAddCmd(cfg, &logger)
	addCmd.SetArgs([]string{"portal 2"})
	require.NoError(t, addCmd.Execute())

	var out bytes.Buffer
	listCmd := NewListCmd(cfg, &logger)
	listCmd.SetOut(&out)
	listCmd.SetArgs([]string{"--json"})
	require.NoError(t, listCmd.Execute())

	var games []core.GameEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "620", games[0].StoreID)
}

func TestAddUnknownGameWithoutIDFails(t *testing.T) {
	cfg := cmdTestConfig(t)
	logger := zerolog.New(io.Discard)

	addCmd := NewAddCmd(cfg, &logger)
	addCmd.SetErr(io.Discard)
	addCmd.SetOut(io.Discard)
	addCmd.SetArgs([]string{"Totally Unheard Of Game"})
	assert.Error(t, addCmd.Execute())
}

func TestListFilters(t *testing.T) {
	cfg := cmdTestConfig(t)
	logger := zerolog.New(io.Discard)

	for _, args := range [][]string{
		{"Portal 2", "--platform", "steam", "--id", "620"},
		{"Fortnite", "--platform", "epic", "--id", "fn"},
	} {
		addCmd := NewAddCmd(cfg, &logger)
		addCmd.SetArgs(args)
		require.NoError(t, addCmd.Execute())
	}

	var out bytes.Buffer
	listCmd := NewListCmd(cfg, &logger)
	listCmd.SetOut(&out)
	listCmd.SetArgs([]string{"--json", "--platform", "epic"})
	require.NoError(t, listCmd.Execute())

	var games []core.GameEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Fortnite", games[0].Name)

	out.Reset()
	listCmd = NewListCmd(cfg, &logger)
	listCmd.SetOut(&out)
	listCmd.SetArgs([]string{"--json", "--name", "portal"})
	require.NoError(t, listCmd.Execute())

	games = nil
	require.NoError(t, json.Unmarshal(out.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Portal 2", games[0].Name)
}

func TestRemoveUnknownGame(t *testing.T) {
	cfg := cmdTestConfig(t)
	logger := zerolog.New(io.Discard)

	removeCmd := NewRemoveCmd(cfg, &logger)
	removeCmd.SetErr(io.Discard)
	removeCmd.SetArgs([]string{"42", "--yes"})
	assert.Error(t, removeCmd.Execute())
}
