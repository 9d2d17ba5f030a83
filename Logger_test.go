package main

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewTextLogger(t *testing.T) {
	t.Run("level_filter", func(t *testing.T) {
		var out bytes.Buffer
		logger, err := NewTextLogger(&out, "warn")
		require.NoError(t, err)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message", "cell", "A1")
		logger.Error("error message", "sheet", "sheet1")

		assert.NotContains(t, out.String(), "debug message")
		assert.NotContains(t, out.String(), "info message")
		assert.Contains(t, out.String(), "level=WARN msg=\"warn message\" cell=A1")
		assert.Contains(t, out.String(), "level=ERROR msg=\"error message\" sheet=sheet1")
	})

	t.Run("lower_case_level", func(t *testing.T) {
		var out bytes.Buffer
		logger, err := NewTextLogger(&out, "debug")
		require.NoError(t, err)

		logger.Debug("visible")
		assert.Contains(t, out.String(), "visible")
	})

	t.Run("invalid_level", func(t *testing.T) {
		_, err := NewTextLogger(&bytes.Buffer{}, "loud")
		assert.Error(t, err)
	})
}
