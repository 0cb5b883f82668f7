package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration with the following priority (highest to lowest):
//  1. Environment variables (TESTSCOUT_*)
//  2. Config file (.testscout/config.yml or .testscout/config.yaml)
//  3. Default values
func Load(rootDir string) (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(rootDir, ".testscout")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("TESTSCOUT")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., TESTSCOUT_SUMMARIZER_MODEL).
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{
		"extract.pattern",
		"extract.filter_pattern",
		"extract.workers",
		"extract.window_size",
		"extract.method_cap",
		"summarizer.provider",
		"summarizer.endpoint",
		"summarizer.model",
		"summarizer.api_key",
		"output.dir",
		"output.json",
	} {
		_ = v.BindEnv(key)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFromWorkingDir loads configuration using the current working directory
// as the root.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return Load(wd)
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("extract.pattern", defaults.Extract.Pattern)
	v.SetDefault("extract.filter_pattern", defaults.Extract.FilterPattern)
	v.SetDefault("extract.workers", defaults.Extract.Workers)
	v.SetDefault("extract.window_size", defaults.Extract.WindowSize)
	v.SetDefault("extract.method_cap", defaults.Extract.MethodCap)
	v.SetDefault("extract.exclude", defaults.Extract.Exclude)

	v.SetDefault("summarizer.provider", defaults.Summarizer.Provider)
	v.SetDefault("summarizer.endpoint", defaults.Summarizer.Endpoint)
	v.SetDefault("summarizer.model", defaults.Summarizer.Model)
	v.SetDefault("summarizer.api_key", defaults.Summarizer.APIKey)

	v.SetDefault("output.dir", defaults.Output.Dir)
	v.SetDefault("output.json", defaults.Output.JSON)
}
