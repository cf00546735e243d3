package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{name: "default config", cfg: DefaultLogConfig()},
		{name: "console format", cfg: LogConfig{Level: "debug", Format: "console", Output: "stderr"}},
		{name: "invalid level", cfg: LogConfig{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()

	// Must not panic on any call.
	logger.Debug("debug", String("k", "v"))
	logger.Info("info", Int("n", 1))
	logger.Warn("warn", Bool("b", true))
	logger.Error("error", Error(assert.AnError))

	child := logger.With(String("component", "test"))
	assert.NotNil(t, child)
	assert.NoError(t, child.Sync())
}
