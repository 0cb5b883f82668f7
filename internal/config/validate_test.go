package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testscout/core/internal/config"
)

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		cfg := config.Default()
		cfg.Summarizer.Provider = "openai"
		cfg.Summarizer.Endpoint = "https://api.example.com/v1/chat/completions"
		cfg.Summarizer.Model = "nova-lite"
		return cfg
	}

	t.Run("accepts a valid openai configuration", func(t *testing.T) {
		assert.NoError(t, config.Validate(valid()))
	})

	t.Run("accepts the static provider without endpoint or model", func(t *testing.T) {
		assert.NoError(t, config.Validate(config.Default()))
	})

	t.Run("rejects an unknown provider", func(t *testing.T) {
		cfg := valid()
		cfg.Summarizer.Provider = "oracle"

		err := config.Validate(cfg)
		assert.ErrorIs(t, err, config.ErrInvalidProvider)
	})

	t.Run("rejects openai without endpoint", func(t *testing.T) {
		cfg := valid()
		cfg.Summarizer.Endpoint = "  "

		err := config.Validate(cfg)
		assert.ErrorIs(t, err, config.ErrEmptyEndpoint)
	})

	t.Run("rejects openai without model", func(t *testing.T) {
		cfg := valid()
		cfg.Summarizer.Model = ""

		err := config.Validate(cfg)
		assert.ErrorIs(t, err, config.ErrEmptyModel)
	})

	t.Run("rejects negative tuning values", func(t *testing.T) {
		cfg := valid()
		cfg.Extract.WindowSize = -1
		cfg.Extract.MethodCap = -1
		cfg.Extract.Workers = -1

		err := config.Validate(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidWindowSize)
		assert.ErrorIs(t, err, config.ErrInvalidMethodCap)
		assert.ErrorIs(t, err, config.ErrInvalidWorkers)
	})

	t.Run("reports all problems at once", func(t *testing.T) {
		cfg := valid()
		cfg.Summarizer.Endpoint = ""
		cfg.Summarizer.Model = ""

		err := config.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
		assert.ErrorIs(t, err, config.ErrEmptyEndpoint)
		assert.ErrorIs(t, err, config.ErrEmptyModel)
	})
}
