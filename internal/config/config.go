package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	DataFile string    `yaml:"data_file" mapstructure:"data_file"`
	PageSize int       `yaml:"page_size" mapstructure:"page_size"`
	Theme    string    `yaml:"theme" mapstructure:"theme"`
	Log      LogConfig `yaml:"log" mapstructure:"log"`

	// Source is the config file that was read, empty when none was found.
	Source string `yaml:"-" mapstructure:"-"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

const (
	DefaultDataFile = "data.txt"
	DefaultPageSize = 10
)

// flagKeys maps command line flag names onto config keys.
var flagKeys = map[string]string{
	"data-file":  "data_file",
	"page-size":  "page_size",
	"theme":      "theme",
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
}

func DefaultConfig() *Config {
	return &Config{
		DataFile: DefaultDataFile,
		PageSize: DefaultPageSize,
		Theme:    "auto",
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

func configDirs() []string {
	dirs := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "phonebook"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "phonebook"))
	}
	return dirs
}

// Load resolves the configuration from defaults, config.yaml, PHONEBOOK_*
// environment variables and, when flags is non-nil, the flags the user set.
func Load(flags *pflag.FlagSet) (*Config, error) {
	return load(viper.New(), configDirs(), flags)
}

func load(v *viper.Viper, dirs []string, flags *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetDefault("data_file", cfg.DataFile)
	v.SetDefault("page_size", cfg.PageSize)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file", cfg.Log.File)

	// Environment variables
	v.SetEnvPrefix("PHONEBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	cfg.DataFile = os.ExpandEnv(cfg.DataFile)
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("config: data_file is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid (must be debug, info, warn or error)", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format %q is invalid (must be console or json)", c.Log.Format)
	}
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
	return nil
}
