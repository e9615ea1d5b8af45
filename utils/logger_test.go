package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggerLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    LevelType
		expected string
	}{
		{"error", ERROR, "[Error] e\n"},
		{"warn", WARN, "[Warn] w\n[Error] e\n"},
		{"info", INFO, "[Info] i\n[Warn] w\n[Error] e\n"},
		{"debug", DEBUG, "[Debug] d\n[Info] i\n[Warn] w\n[Error] e\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var logs, output bytes.Buffer
			logger := newLogger(test.level, &logs, &output)
			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")
			logger.Output("out")
			assert.Equal(t, test.expected, logs.String())
			assert.Equal(t, "out\n", output.String())
		})
	}
}
