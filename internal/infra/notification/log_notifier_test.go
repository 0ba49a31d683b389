package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotifier(capacity int) *LogNotifier {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewLogNotifier(logger, capacity)
}

func TestLogNotifier_RecentNewestFirst(t *testing.T) {
	n := testNotifier(10)
	ctx := context.Background()

	n.Notify(ctx, "Order ORD-1 status updated to ready")
	n.Notify(ctx, "Table 4 status updated to available")

	recent := n.Recent(10)
	require.Len(t, recent, 2)
	assert.Equal(t, "Table 4 status updated to available", recent[0].Message)
	assert.Equal(t, "Order ORD-1 status updated to ready", recent[1].Message)
}

func TestLogNotifier_CapacityEvictsOldest(t *testing.T) {
	n := testNotifier(2)
	ctx := context.Background()

	n.Notify(ctx, "first")
	n.Notify(ctx, "second")
	n.Notify(ctx, "third")

	recent := n.Recent(10)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Message)
	assert.Equal(t, "second", recent[1].Message)
}

func TestLogNotifier_LimitCapsResult(t *testing.T) {
	n := testNotifier(10)
	ctx := context.Background()

	n.Notify(ctx, "first")
	n.Notify(ctx, "second")

	recent := n.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, "second", recent[0].Message)
}
