package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStream(t *testing.T) {
	_, client := setupMiniredis(t)

	_, err := NewStream[testEvent](nil, "activity")
	assert.Error(t, err)

	_, err = NewStream[testEvent](client, "")
	assert.Error(t, err)

	stream, err := NewStream[testEvent](client, "activity")
	require.NoError(t, err)
	assert.NotNil(t, stream)
}

func TestStream_Append(t *testing.T) {
	_, client := setupMiniredis(t)
	stream, err := NewStream[testEvent](client, "activity")
	require.NoError(t, err)
	ctx := context.Background()

	at := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 1; i <= 3; i++ {
		id, err := stream.Append(ctx, testEvent{Kind: "bid_placed", ID: uint(i), Amount: fmt.Sprint(100 * i), At: at})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	messages, err := client.XRange(ctx, "activity", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i, message := range messages {
		assert.Equal(t, ids[i], message.ID)
		event, err := DefaultParseFromMessage[testEvent](message.Values)
		require.NoError(t, err)
		assert.Equal(t, uint(i+1), event.ID)
		assert.Equal(t, fmt.Sprint(100*(i+1)), event.Amount)
		assert.True(t, at.Equal(event.At))
	}
}

func TestStream_MaxLen(t *testing.T) {
	_, client := setupMiniredis(t)
	stream, err := NewStream[testEvent](client, "activity", WithStreamMaxLen(5))
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := stream.Append(ctx, testEvent{ID: uint(i)})
		require.NoError(t, err)
	}

	length, err := client.XLen(ctx, "activity").Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, length, int64(20))
	assert.GreaterOrEqual(t, length, int64(5))
}

type unsupportedEvent struct {
	Done chan struct{}
}

func TestStream_AppendUnsupported(t *testing.T) {
	_, client := setupMiniredis(t)
	stream, err := NewStream[unsupportedEvent](client, "activity")
	require.NoError(t, err)

	_, err = stream.Append(context.Background(), unsupportedEvent{Done: make(chan struct{})})
	assert.Error(t, err)

	length, err := client.XLen(context.Background(), "activity").Result()
	require.NoError(t, err)
	assert.Zero(t, length)
}

func TestStream_Recent(t *testing.T) {
	_, client := setupMiniredis(t)
	stream, err := NewStream[testEvent](client, "activity")
	require.NoError(t, err)
	ctx := context.Background()

	empty, err := stream.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for i := 1; i <= 5; i++ {
		_, err := stream.Append(ctx, testEvent{ID: uint(i)})
		require.NoError(t, err)
	}
	// 其他程式寫入的訊息無法解碼
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{Stream: "activity", Values: map[string]any{"other": "x"}}).Err())

	events, err := stream.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, uint(5), events[0].ID)
	assert.Equal(t, uint(4), events[1].ID)
}

func TestStream_ClosedClient(t *testing.T) {
	server, client := setupMiniredis(t)
	stream, err := NewStream[testEvent](client, "activity")
	require.NoError(t, err)
	server.Close()

	_, err = stream.Append(context.Background(), testEvent{})
	assert.Error(t, err)
	_, err = stream.Recent(context.Background(), 1)
	assert.Error(t, err)
}
