package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stickies/internal/board"
	"stickies/internal/storage"
)

const (
	appName        = "stickies"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "STICKIES"

	// logOff disables the log file.
	logOff = "off"
)

// Config keys.
const (
	cfgKeyDataDir       = "data_dir"
	cfgKeyBackend       = "backend"
	cfgKeyConfirmations = "confirmations"
	cfgKeyLogFile       = "log_file"
	cfgKeyVerbose       = "verbose"
)

type NoteConfig struct {
	DefaultWidth  float64 `mapstructure:"default_width" validate:"gt=0,gtefield=MinWidth"`
	DefaultHeight float64 `mapstructure:"default_height" validate:"gt=0,gtefield=MinHeight"`
	MinWidth      float64 `mapstructure:"min_width" validate:"gte=64"`
	MinHeight     float64 `mapstructure:"min_height" validate:"gte=48"`
	InitialX      float64 `mapstructure:"initial_x" validate:"gte=0"`
	InitialY      float64 `mapstructure:"initial_y" validate:"gte=0"`
	StackOffset   float64 `mapstructure:"stack_offset" validate:"gte=0"`
}

type Config struct {
	DataDir       string     `mapstructure:"data_dir" validate:"required"`
	Backend       string     `mapstructure:"backend" validate:"oneof=file sqlite memory"`
	Confirmations bool       `mapstructure:"confirmations"`
	LogFile       string     `mapstructure:"log_file"`
	Verbose       bool       `mapstructure:"verbose"`
	Note          NoteConfig `mapstructure:"note"`
}

// Placement returns where new notes are dropped.
func (c *Config) Placement() board.Placement {
	return board.Placement{
		DefaultWidth:  c.Note.DefaultWidth,
		DefaultHeight: c.Note.DefaultHeight,
		InitialX:      c.Note.InitialX,
		InitialY:      c.Note.InitialY,
		StackOffset:   c.Note.StackOffset,
	}
}

func (c *Config) Reducer() board.Reducer {
	return board.Reducer{MinWidth: c.Note.MinWidth, MinHeight: c.Note.MinHeight}
}

// LogPath returns the log file location, or "" when logging is off.
func (c *Config) LogPath() string {
	switch c.LogFile {
	case logOff:
		return ""
	case "":
		return filepath.Join(c.DataDir, appName+".log")
	default:
		return c.LogFile
	}
}

func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault(cfgKeyDataDir, dataDir)
	v.SetDefault(cfgKeyBackend, storage.BackendFile)
	v.SetDefault(cfgKeyConfirmations, true)
	v.SetDefault(cfgKeyLogFile, "")
	v.SetDefault(cfgKeyVerbose, false)
	v.SetDefault("note.default_width", board.DefaultWidth)
	v.SetDefault("note.default_height", board.DefaultHeight)
	v.SetDefault("note.min_width", board.MinWidth)
	v.SetDefault("note.min_height", board.MinHeight)
	v.SetDefault("note.initial_x", board.InitialX)
	v.SetDefault("note.initial_y", board.InitialY)
	v.SetDefault("note.stack_offset", board.StackOffset)
}

// loadConfig reads config.yaml from configDir (or configFile when set),
// then STICKIES_* environment variables, then the command's flags. A missing
// config.yaml in the default location is not an error.
func loadConfig(cmd *cobra.Command, configFile, configDir string) (*Config, error) {
	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v, dataDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(configDir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if cmd != nil {
		for key, flag := range map[string]string{
			cfgKeyDataDir: "data-dir",
			cfgKeyBackend: "backend",
			cfgKeyVerbose: "verbose",
		} {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.DataDir = expandHome(cfg.DataDir)
	if cfg.LogFile != logOff {
		cfg.LogFile = expandHome(cfg.LogFile)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// defaultConfigDir is $XDG_CONFIG_HOME/stickies, falling back to
// ~/.config/stickies.
func defaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultDataDir is $XDG_DATA_HOME/stickies, falling back to
// ~/.local/share/stickies.
func defaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}
