package logger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hydrotrack/core/internal/infrastructure/config"
)

func TestNew_RejectsBadLevel(t *testing.T) {
	_, err := New(config.LoggerConfig{Level: "loud", Format: "json"})
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNew_JSON(t *testing.T) {
	l, err := New(config.LoggerConfig{Level: "debug", Format: "json", Output: "stdout"})
	require.NoError(t, err)
	assert.NotNil(t, l.SugaredLogger)
}

func TestLogCollaboratorCall(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.WithComponent("advisor").LogCollaboratorCall("tip", 5*time.Millisecond, errors.New("quota exceeded"))
	l.LogCollaboratorCall("guide", time.Millisecond, nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
	assert.Equal(t, "quota exceeded", entries[0].ContextMap()["error"])
	assert.Equal(t, "advisor", entries[0].ContextMap()["component"])
	assert.Equal(t, zap.DebugLevel, entries[1].Level)
}
