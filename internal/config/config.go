package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration. It is constructed once at
// process start and passed by reference into every component; nothing reads
// ambient globals.
type Config struct {
	Repo    RepoConfig    `mapstructure:"repo"`
	Paths   PathsConfig   `mapstructure:"paths"`
	Update  UpdateConfig  `mapstructure:"update"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RepoConfig names the remote release repository
type RepoConfig struct {
	Owner string `mapstructure:"owner"`
	Name  string `mapstructure:"name"`
}

// PathsConfig contains every file path the launcher touches
type PathsConfig struct {
	DataDir      string `mapstructure:"data_dir"`
	RegistryFile string `mapstructure:"registry_file"`
	StateFile    string `mapstructure:"state_file"`
	CatalogFile  string `mapstructure:"catalog_file"`
	LegacyFile   string `mapstructure:"legacy_file"`
	FirstRunFile string `mapstructure:"first_run_file"`
	BackupDir    string `mapstructure:"backup_dir"`
	ProgramFile  string `mapstructure:"program_file"`
	LogFile      string `mapstructure:"log_file"`
}

// UpdateConfig contains update-check configuration
type UpdateConfig struct {
	Channel          string `mapstructure:"channel"`
	CheckIntervalSec int64  `mapstructure:"check_interval_sec"`
	TimeoutSec       int    `mapstructure:"timeout_sec"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".config", "glados"))
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("GLADOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Paths.DataDir = expandPath(cfg.Paths.DataDir)
	cfg.Paths.RegistryFile = expandPath(cfg.Paths.RegistryFile)
	cfg.Paths.StateFile = expandPath(cfg.Paths.StateFile)
	cfg.Paths.CatalogFile = expandPath(cfg.Paths.CatalogFile)
	cfg.Paths.LegacyFile = expandPath(cfg.Paths.LegacyFile)
	cfg.Paths.FirstRunFile = expandPath(cfg.Paths.FirstRunFile)
	cfg.Paths.BackupDir = expandPath(cfg.Paths.BackupDir)
	cfg.Paths.ProgramFile = expandPath(cfg.Paths.ProgramFile)
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)

	if cfg.Paths.ProgramFile == "" {
		if exe, err := os.Executable(); err == nil {
			cfg.Paths.ProgramFile = exe
		}
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. All data files live in a
// single directory beside each other, mirroring the original layout of one
// folder holding program, registry, state, catalog and backups.
func setDefaults(v *viper.Viper) {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = os.Getenv("HOME")
	}
	if homeDir == "" {
		homeDir = "."
	}

	dataDir := filepath.Join(homeDir, ".local", "share", "glados")

	v.SetDefault("repo.owner", "be-smiley2")
	v.SetDefault("repo.name", "glados_game_launcher")

	v.SetDefault("paths.data_dir", dataDir)
	v.SetDefault("paths.registry_file", filepath.Join(dataDir, "game_data.json"))
	v.SetDefault("paths.state_file", filepath.Join(dataDir, "version.json"))
	v.SetDefault("paths.catalog_file", filepath.Join(dataDir, "aperture_science_game_catalog.txt"))
	v.SetDefault("paths.legacy_file", filepath.Join(dataDir, "glados_game_launcher.py"))
	v.SetDefault("paths.first_run_file", filepath.Join(dataDir, ".aperture_first_run_complete"))
	v.SetDefault("paths.backup_dir", filepath.Join(dataDir, "backups"))
	v.SetDefault("paths.program_file", "")
	v.SetDefault("paths.log_file", filepath.Join(dataDir, "glados.log"))

	v.SetDefault("update.channel", "stable")
	v.SetDefault("update.check_interval_sec", 3600)
	v.SetDefault("update.timeout_sec", 10)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.color", "auto")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
