package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type streamOptions struct {
	logger *slog.Logger
	maxLen int64
}

type StreamOption func(*streamOptions)

// WithStreamLogger 設置日誌記錄器
func WithStreamLogger(logger *slog.Logger) StreamOption {
	return func(o *streamOptions) {
		o.logger = logger
	}
}

// WithStreamMaxLen 設置 stream 的大約長度上限，0 代表不裁切
func WithStreamMaxLen(maxLen int64) StreamOption {
	return func(o *streamOptions) {
		o.maxLen = maxLen
	}
}

// Stream 同步地將資料附加到 Redis stream，並可以讀回最新的資料
//
// 資料以 DefaultParseToMessage 編碼，DefaultParseFromMessage 解碼。
type Stream[T any] struct {
	client  redis.StreamCmdable
	stream  string
	logger  *slog.Logger
	options streamOptions
}

func NewStream[T any](client redis.StreamCmdable, stream string, opts ...StreamOption) (*Stream[T], error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if stream == "" {
		return nil, errors.New("stream cannot be empty")
	}

	options := streamOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Stream[T]{
		client:  client,
		stream:  stream,
		logger:  options.logger.With(slog.String("caller", "Stream"), slog.String("stream", stream)),
		options: options,
	}, nil
}

// Append 寫入一筆訊息並回傳訊息編號
func (s *Stream[T]) Append(ctx context.Context, data T) (string, error) {
	const op = "redis.Stream.Append"
	message, err := DefaultParseToMessage(data)
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to parse message, err=%w", op, err)
	}

	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: message,
	}
	if s.options.maxLen > 0 {
		args.MaxLen = s.options.maxLen
		args.Approx = true
	}
	id, err := s.client.XAdd(ctx, args).Result()
	if err != nil {
		return "", fmt.Errorf("[%s] Fail to add message, err=%w", op, err)
	}

	s.logger.Debug("message appended", slog.String("messageId", id))
	return id, nil
}

// Recent 由新到舊讀出最多 count 筆訊息，無法解碼的訊息會被略過
func (s *Stream[T]) Recent(ctx context.Context, count int64) ([]T, error) {
	const op = "redis.Stream.Recent"
	messages, err := s.client.XRevRangeN(ctx, s.stream, "+", "-", count).Result()
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to read messages, err=%w", op, err)
	}

	result := make([]T, 0, len(messages))
	for _, message := range messages {
		data, err := DefaultParseFromMessage[T](message.Values)
		if err != nil {
			s.logger.Warn("skip malformed message", slog.String("messageId", message.ID), slog.Any("error", err))
			continue
		}
		result = append(result, data)
	}
	return result, nil
}
