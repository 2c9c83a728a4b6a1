package ws

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"archsdinos/internal/app"
)

func TestClient_DeliverNeverBlocks(t *testing.T) {
	c := newClient(nil, nil, Identity{UserID: "user-1"})
	for i := 0; i < sendBuffer; i++ {
		require.NoError(t, c.Deliver(context.Background(), string(app.EventTurnChanged), i))
	}

	start := time.Now()
	err := c.Deliver(context.Background(), string(app.EventTurnChanged), "overflow")
	require.ErrorIs(t, err, errSlowClient)
	require.Less(t, time.Since(start), app.DefaultNotifyTimeout)

	select {
	case <-c.done:
	default:
		t.Fatal("expected a slow client to be closed")
	}
	require.ErrorIs(t, c.Deliver(context.Background(), string(app.EventTurnChanged), nil), errClientClosed)
}
