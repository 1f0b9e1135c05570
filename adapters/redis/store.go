package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gallery/adapters/session"
)

const defaultStoreTTL = 20 * time.Minute

// Store 實現了 session.IStore 介面，以 Redis hash 保存 session 資料
type Store struct {
	client  redis.Cmdable
	options StoreOptions
}

// StoreOptions 定義了 Store 的配置選項
type StoreOptions struct {
	Prefix string
	TTL    time.Duration
}

type StoreOption func(*StoreOptions)

// WithStorePrefix 設定 Store 的 key 前綴
func WithStorePrefix(prefix string) StoreOption {
	return func(o *StoreOptions) {
		o.Prefix = prefix
	}
}

// WithStoreTTL 設定 session 資料的存活時間，每次儲存都會重新計算
func WithStoreTTL(ttl time.Duration) StoreOption {
	return func(o *StoreOptions) {
		if ttl > 0 {
			o.TTL = ttl
		}
	}
}

// NewStore 建立一個新的 Store 實例
func NewStore(client redis.Cmdable, opts ...StoreOption) session.IStore {
	options := &StoreOptions{TTL: defaultStoreTTL}
	for _, opt := range opts {
		opt(options)
	}

	return &Store{
		client:  client,
		options: *options,
	}
}

// Load 從 Redis 中載入 session 資料，不存在時回傳空的 map
func (s *Store) Load(ctx context.Context, name string) (map[string]string, error) {
	const op = "redis.Store.Load"
	key := s.options.Prefix + name

	result, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to get hash, err=%w", op, err)
	}
	return result, nil
}

// saveScript 原子性地取代整個 hash 並重設存活時間
// ARGV[1] 為存活時間(毫秒)，其餘為欄位與值
var saveScript = redis.NewScript(`
local key = KEYS[1]
redis.call('DEL', key)
if #ARGV > 1 then
    redis.call('HSET', key, unpack(ARGV, 2))
    redis.call('PEXPIRE', key, ARGV[1])
end
return 1
`)

// Save 將 session 資料儲存到 Redis 中
// NOTE: 空的資料等同於刪除 session
func (s *Store) Save(ctx context.Context, name string, data map[string]string) error {
	const op = "redis.Store.Save"
	key := s.options.Prefix + name

	args := make([]any, 0, len(data)*2+1)
	args = append(args, s.options.TTL.Milliseconds())
	for k, v := range data {
		args = append(args, k, v)
	}
	if err := saveScript.Run(ctx, s.client, []string{key}, args...).Err(); err != nil {
		return fmt.Errorf("[%s] Fail to execute save script, err=%w", op, err)
	}
	return nil
}
