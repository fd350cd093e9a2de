package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/be-smiley2/glados-launcher/internal/cmd"
	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/logging"
)

const colorNever = "never"

func TestConfigLoad(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err, "Configuration should load without error")
	assert.NotNil(t, cfg, "Configuration should not be nil")
}

func TestLoggerInitialization(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err, "Configuration should load without error")

	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: "",
		NoColor: cfg.Logging.Color == colorNever,
	})
	assert.NotNil(t, log, "Logger should not be nil")
}

func TestCommandExecution(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err, "Configuration should load without error")

	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: "",
		NoColor: cfg.Logging.Color == colorNever,
	})

	// The bare root command is interactive, so exercise a non-blocking
	// subcommand instead.
	rootCmd := cmd.NewRootCmd(cfg, log, version)
	rootCmd.SetArgs([]string{"version"})
	err = rootCmd.ExecuteContext(context.Background())
	assert.NoError(t, err, "Command execution should not return an error")
}
