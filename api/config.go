package api

import (
	"net/http"
	"time"

	"gallery/adapters/database"
	internalS3 "gallery/adapters/s3"
)

type ServerConfig struct {
	DB      database.Config
	Redis   RedisConfig
	Session SessionConfig
	S3      internalS3.Config
	Auction AuctionConfig
	Auth    AuthConfig
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string

	StreamKeys RedisStreamKeys
	// ActivityMaxLen 是活動紀錄 stream 的大約長度上限，0 代表不裁切
	ActivityMaxLen int64
}

type RedisStreamKeys struct {
	Activity string
}

type SessionConfig struct {
	KeyForCookie   string
	CookieMaxAge   time.Duration
	CookieSecure   bool
	CookieDomain   string
	CookieSameSite http.SameSite // 0 代表使用預設的 Lax
}

type AuctionConfig struct {
	// StrictBidding 要求出價必須高於目前最高出價
	StrictBidding bool
}

type AuthConfig struct {
	BcryptCost int
}
