// Package config loads testscout configuration from file and environment.
package config

import (
	"strings"

	"github.com/testscout/core/pkg/extract"
	"github.com/testscout/core/pkg/summarize"
)

// Config represents the complete testscout configuration.
// It can be loaded from .testscout/config.yml with environment variable overrides.
type Config struct {
	Extract    ExtractConfig    `yaml:"extract" mapstructure:"extract"`
	Summarizer SummarizerConfig `yaml:"summarizer" mapstructure:"summarizer"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
}

// ExtractConfig configures the discovery pipeline.
type ExtractConfig struct {
	Pattern       string   `yaml:"pattern" mapstructure:"pattern"`                 // extension pattern, e.g. "*.java"
	FilterPattern string   `yaml:"filter_pattern" mapstructure:"filter_pattern"`   // line-level keyword pattern
	Workers       int      `yaml:"workers" mapstructure:"workers"`                 // 0 = GOMAXPROCS
	WindowSize    int      `yaml:"window_size" mapstructure:"window_size"`         // context lines per candidate
	MethodCap     int      `yaml:"method_cap" mapstructure:"method_cap"`           // analyzed candidates per file
	Exclude       []string `yaml:"exclude" mapstructure:"exclude"`                 // extra directory names to skip
}

// SummarizerConfig configures the purpose-description collaborator.
type SummarizerConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider"` // "static" or "openai"
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"` // chat-completions endpoint URL
	Model    string `yaml:"model" mapstructure:"model"`       // model identifier
	APIKey   string `yaml:"api_key" mapstructure:"api_key"`   // bearer token, usually set via env
}

// OutputConfig configures result persistence.
type OutputConfig struct {
	Dir  string `yaml:"dir" mapstructure:"dir"`   // directory for JSON artifacts
	JSON bool   `yaml:"json" mapstructure:"json"` // write the structured JSON artifact
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Extract: ExtractConfig{
			Pattern:       "*.java",
			FilterPattern: extract.DefaultFilterPattern,
			Workers:       extract.DefaultWorkers,
			WindowSize:    extract.DefaultWindowSize,
			MethodCap:     extract.DefaultMethodCap,
		},
		Summarizer: SummarizerConfig{
			Provider: "static",
		},
		Output: OutputConfig{
			Dir:  ".",
			JSON: true,
		},
	}
}

// BuildSummarizer constructs the collaborator described by the configuration.
func (c *Config) BuildSummarizer() summarize.Summarizer {
	if strings.ToLower(c.Summarizer.Provider) == "openai" {
		var opts []summarize.ClientOption
		if c.Summarizer.APIKey != "" {
			opts = append(opts, summarize.WithAPIKey(c.Summarizer.APIKey))
		}
		return summarize.NewClient(c.Summarizer.Endpoint, c.Summarizer.Model, opts...)
	}
	return summarize.NewStatic()
}

// ExtractOptions converts the configuration into pipeline options.
func (c *Config) ExtractOptions() []extract.ExtractOption {
	return []extract.ExtractOption{
		extract.WithPattern(c.Extract.Pattern),
		extract.WithFilterPattern(c.Extract.FilterPattern),
		extract.WithWorkers(c.Extract.Workers),
		extract.WithWindowSize(c.Extract.WindowSize),
		extract.WithMethodCap(c.Extract.MethodCap),
		extract.WithExcludePatterns(c.Extract.Exclude),
		extract.WithSummarizer(c.BuildSummarizer()),
	}
}
