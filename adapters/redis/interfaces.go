package redis

import "context"

// IStream 定義了 Stream 的操作介面
type IStream[T any] interface {
	Append(ctx context.Context, data T) (string, error)
	Recent(ctx context.Context, count int64) ([]T, error)
}

var _ IStream[struct{}] = (*Stream[struct{}])(nil)
