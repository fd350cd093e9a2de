package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/be-smiley2/glados-launcher/internal/cmd"
	"github.com/be-smiley2/glados-launcher/internal/config"
	"github.com/be-smiley2/glados-launcher/internal/core"
	"github.com/be-smiley2/glados-launcher/internal/logging"
	"github.com/be-smiley2/glados-launcher/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return core.ExitGeneral
	}

	// Initialize logger
	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Paths.LogFile,
		NoColor: cfg.Logging.Color == "never",
	})

	ui.InitColors()

	// Catch-all: a panic anywhere produces a crash report file instead of a
	// bare stack trace on the terminal.
	defer func() {
		if r := recover(); r != nil {
			os.MkdirAll(cfg.Paths.DataDir, 0755)
			report := filepath.Join(cfg.Paths.DataDir, fmt.Sprintf("crash_log_%s.txt", time.Now().Format("20060102_150405")))
			body := fmt.Sprintf("GLaDOS crash report\ntime: %s\nversion: %s\npanic: %v\n\n%s\n",
				time.Now().Format(time.RFC3339), version, r, debug.Stack())
			if writeErr := os.WriteFile(report, []byte(body), 0644); writeErr == nil {
				fmt.Fprintf(os.Stderr, "An unexpected error occurred. Crash report written to %s\n", report)
			} else {
				fmt.Fprintf(os.Stderr, "An unexpected error occurred: %v\n%s\n", r, debug.Stack())
			}
			log.Error().Interface("panic", r).Msg("unhandled panic")
			exitCode = core.ExitGeneral
		}
	}()

	// Execute root command
	rootCmd := cmd.NewRootCmd(cfg, log, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		if ctx.Err() != nil {
			return core.ExitInterrupted
		}
		return core.ExitGeneral
	}

	return core.ExitSuccess
}
