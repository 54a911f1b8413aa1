package notify

import (
	"context"
	"testing"

	"github.com/Amrutha2803/employee-list/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	ctx := context.Background()
	r.Notify(ctx, "Employee saved successfully!", Success)
	r.Notify(ctx, "Employee deleted!", Error)

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, Notification{Message: "Employee deleted!", Severity: Error}, last)
	assert.Len(t, r.All(), 2)
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	n := NewLogNotifier(logger.NewWithCore(core))

	n.Notify(context.Background(), "Employee updated!", Info)
	n.Notify(context.Background(), "Employee deleted!", Error)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Employee deleted!", entries[1].Message)
}
