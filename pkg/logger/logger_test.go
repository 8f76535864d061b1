package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger(t *testing.T) {
	orig := Log
	defer func() { Log = orig }()

	t.Run("Production json logger", func(t *testing.T) {
		err := InitLogger("warn", "prod")
		assert.NoError(t, err)
		assert.False(t, Log.Core().Enabled(zap.InfoLevel))
		assert.True(t, Log.Core().Enabled(zap.WarnLevel))
	})

	t.Run("Development logger defaults to debug", func(t *testing.T) {
		err := InitLogger("", "dev")
		assert.NoError(t, err)
		assert.True(t, Log.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Invalid level", func(t *testing.T) {
		err := InitLogger("verbose", "dev")
		assert.Error(t, err)
	})
}

func TestNamed(t *testing.T) {
	orig := Log
	defer func() { Log = orig }()

	core, logs := observer.New(zap.InfoLevel)
	Log = zap.New(core)

	Named("checkout").Info("hello")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "checkout", entries[0].LoggerName)
}
