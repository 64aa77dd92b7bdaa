package brackets

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlySeasonRoom(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := NewHub(nil)
	go hub.Run(ctx)

	current := NewClient(hub, nil, LeaderboardRoom(2025))
	previous := NewClient(hub, nil, LeaderboardRoom(2024))
	require.True(t, hub.Subscribe(current))
	require.True(t, hub.Subscribe(previous))
	assert.Equal(t, 1, hub.RoomSize("season_2025"))
	assert.Equal(t, 1, hub.RoomSize("season_2024"))

	hub.PublishLeaderboard(2025, []models.LeaderboardEntry{{Rank: 1, BracketID: 4, TotalScore: 8}})

	select {
	case raw := <-current.Send:
		var msg WebSocketMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, MessageLeaderboardUpdated, msg.Type)
		assert.Equal(t, "season_2025", msg.RoomID)
	case <-time.After(time.Second):
		t.Fatal("no message for the 2025 room")
	}
	assert.Empty(t, previous.Send)
}

func TestHub_StopClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	client := NewClient(hub, nil, LeaderboardRoom(2025))
	require.True(t, hub.Subscribe(client))

	cancel()
	<-stopped

	_, open := <-client.Send
	assert.False(t, open)
	assert.Zero(t, hub.RoomSize("season_2025"))
	assert.False(t, hub.Subscribe(NewClient(hub, nil, LeaderboardRoom(2025))))
	assert.Error(t, client.Release(WebSocketMessage{Type: MessageLeaderboardUpdated}))
}

func TestClient_ReleaseFailsWhenBufferFull(t *testing.T) {
	client := NewClient(NewHub(nil), nil, LeaderboardRoom(2025))
	for i := 0; i < sendBufferSize; i++ {
		require.NoError(t, client.Release(WebSocketMessage{Type: MessageLeaderboardUpdated}))
	}
	assert.Error(t, client.Release(WebSocketMessage{Type: MessageLeaderboardUpdated}))
}

func TestClient_HeldUpdatesFollowSnapshot(t *testing.T) {
	hub := NewHub(nil)
	client := NewClient(hub, nil, LeaderboardRoom(2025))
	client.Hold()
	require.True(t, hub.Subscribe(client))

	hub.PublishLeaderboard(2025, []models.LeaderboardEntry{{Rank: 1, BracketID: 1}})
	hub.PublishLeaderboard(2025, []models.LeaderboardEntry{{Rank: 1, BracketID: 2}})
	assert.Empty(t, client.Send)

	require.NoError(t, client.Release(WebSocketMessage{Type: MessageLeaderboardUpdated, Payload: "snapshot"}))
	require.Len(t, client.Send, 2)

	var first, second WebSocketMessage
	require.NoError(t, json.Unmarshal(<-client.Send, &first))
	require.NoError(t, json.Unmarshal(<-client.Send, &second))
	assert.Equal(t, "snapshot", first.Payload)
	entries, ok := second.Payload.([]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, entries[0].(map[string]interface{})["bracket_id"])

	hub.PublishLeaderboard(2025, nil)
	assert.Len(t, client.Send, 1)
}

func TestHub_UnsubscribeClosesClient(t *testing.T) {
	hub := NewHub(nil)
	client := NewClient(hub, nil, LeaderboardRoom(2025))
	require.True(t, hub.Subscribe(client))

	hub.Unsubscribe(client)

	assert.Zero(t, hub.RoomSize("season_2025"))
	_, open := <-client.Send
	assert.False(t, open)
}
