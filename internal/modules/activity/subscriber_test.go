package activity

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/statframes/internal/modules/frames/events"
	"github.com/nfrund/statframes/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriber_RecordsRenderedFrames(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	type call struct{ variant, state string }
	calls := make(chan call, 1)

	s := NewSubscriber(bridge)
	s.record = func(variant, state string) { calls <- call{variant, state} }
	require.NoError(t, s.Start(ctx))

	require.NoError(t, pubsub.Publish(ctx, bridge, events.TopicRendered,
		events.Rendered{Variant: "masks", FID: "3", State: "populated"}, nil))

	select {
	case got := <-calls:
		assert.Equal(t, call{"masks", "populated"}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not recorded")
	}
}
