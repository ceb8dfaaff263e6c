package logging

import (
	"context"
	"slices"
	"testing"

	"github.com/42-short/council/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidLevels(t *testing.T) {
	assert.Equal(t, []string{"info", "debug", "error", "warn"}, ValidLevels())
}

func TestLogger(t *testing.T) {
	logger := NewLogger(Options{Level: "info"})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	sub := logger.Subscribe(ctx)

	logger.Debug("not shown")
	logger.Info("navigating", "path", "/about")
	logger.Error("boom", "error", "bad thing")

	got := logger.List()
	require.Len(t, got, 2)

	assert.Equal(t, "INFO", got[0].Level)
	assert.Equal(t, "navigating", got[0].Message)
	assert.Equal(t, []Attr{{Key: "path", Value: "/about"}}, got[0].Attributes)
	assert.Equal(t, uint(0), got[0].Serial)
	assert.False(t, got[0].Time.IsZero())

	assert.Equal(t, "ERROR", got[1].Level)
	assert.Equal(t, "boom error=bad thing", got[1].String())
	assert.Equal(t, uint(1), got[1].Serial)

	ev := <-sub
	assert.Equal(t, pubsub.CreatedEvent, ev.Type)
	assert.Equal(t, "navigating", ev.Payload.Message)
}

func TestLogger_DebugLevel(t *testing.T) {
	logger := NewLogger(Options{Level: "debug"})

	logger.Debug("shown")

	assert.Len(t, logger.List(), 1)
}

func TestBySerialDesc(t *testing.T) {
	msgs := []Message{{Serial: 0}, {Serial: 2}, {Serial: 1}}

	slices.SortFunc(msgs, BySerialDesc)

	assert.Equal(t, []Message{{Serial: 2}, {Serial: 1}, {Serial: 0}}, msgs)
}
