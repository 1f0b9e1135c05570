package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"gallery/adapters/database"
	internalS3 "gallery/adapters/s3"
	"gallery/api"
)

func ParseArgs() Args {
	// server config
	pflag.String("server-url", "0.0.0.0:8080", "")
	pflag.String("log-level", "info", "debug, info, warn or error")

	// db config
	pflag.String("db-driver", database.DriverPostgres, "postgres, mysql or sqlite")
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")
	pflag.String("db-schema", "", "")
	pflag.String("db-path", "gallery.db", "sqlite database file")
	pflag.Int("db-max-open-conns", 10, "")

	// redis config
	pflag.String("redis-addr", "", "")
	pflag.String("redis-password", "", "")
	pflag.Int("redis-db", 15, "")
	pflag.String("redis-key-prefix", "gallery:", "")

	// redis stream keys
	pflag.String("redis-stream-key-for-activity", "activity", "empty disables the activity stream")
	pflag.Int64("redis-activity-max-len", 10000, "")

	// session config
	pflag.String("session-cookie-name", "session", "")
	pflag.Duration("session-max-age", 20*time.Minute, "")
	pflag.Bool("session-cookie-secure", true, "")
	pflag.String("session-cookie-domain", "", "")
	pflag.String("session-cookie-same-site", "lax", "lax, strict or none")

	// s3 config
	pflag.String("s3-endpoint", "", "")
	pflag.String("s3-bucket", "", "empty disables image upload")
	pflag.String("s3-public-base-url", "", "")
	pflag.String("s3-access-key-id", "", "")
	pflag.String("s3-secret-access-key", "", "")
	pflag.String("s3-region", "auto", "")

	// domain config
	pflag.Bool("auction-strict-bidding", false, "reject bids not higher than the current highest bid")
	pflag.Int("auth-bcrypt-cost", bcrypt.DefaultCost, "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("GALLERY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// initial arguments
	return Args{
		ServerURL:   viper.GetString("server-url"),
		RawLogLevel: viper.GetString("log-level"),
		RawSameSite: viper.GetString("session-cookie-same-site"),
		ServerConfig: api.ServerConfig{
			DB: database.Config{
				Driver:       viper.GetString("db-driver"),
				User:         viper.GetString("db-user"),
				Password:     viper.GetString("db-password"),
				Host:         viper.GetString("db-host"),
				Port:         viper.GetInt("db-port"),
				Database:     viper.GetString("db-database"),
				Schema:       viper.GetString("db-schema"),
				Path:         viper.GetString("db-path"),
				MaxOpenConns: viper.GetInt("db-max-open-conns"),
			},
			Redis: api.RedisConfig{
				Addr:      viper.GetString("redis-addr"),
				Password:  viper.GetString("redis-password"),
				DB:        viper.GetInt("redis-db"),
				KeyPrefix: viper.GetString("redis-key-prefix"),
				StreamKeys: api.RedisStreamKeys{
					Activity: viper.GetString("redis-stream-key-for-activity"),
				},
				ActivityMaxLen: viper.GetInt64("redis-activity-max-len"),
			},
			Session: api.SessionConfig{
				KeyForCookie: viper.GetString("session-cookie-name"),
				CookieMaxAge: viper.GetDuration("session-max-age"),
				CookieSecure: viper.GetBool("session-cookie-secure"),
				CookieDomain: viper.GetString("session-cookie-domain"),
			},
			S3: internalS3.Config{
				Endpoint:        viper.GetString("s3-endpoint"),
				Bucket:          viper.GetString("s3-bucket"),
				PublicBaseURL:   viper.GetString("s3-public-base-url"),
				AccessKeyID:     viper.GetString("s3-access-key-id"),
				SecretAccessKey: viper.GetString("s3-secret-access-key"),
				Region:          viper.GetString("s3-region"),
			},
			Auction: api.AuctionConfig{
				StrictBidding: viper.GetBool("auction-strict-bidding"),
			},
			Auth: api.AuthConfig{
				BcryptCost: viper.GetInt("auth-bcrypt-cost"),
			},
		},
	}
}

type Args struct {
	ServerURL    string
	RawLogLevel  string
	LogLevel     slog.Level
	RawSameSite  string
	ServerConfig api.ServerConfig
}

// Validate 檢查必要參數並解析日誌等級
func (args *Args) Validate() error {
	var errs []error
	if args.ServerURL == "" {
		errs = append(errs, errors.New("server-url is required"))
	}
	if err := args.LogLevel.UnmarshalText([]byte(args.RawLogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("invalid log-level %q", args.RawLogLevel))
	}
	if args.ServerConfig.Redis.Addr == "" {
		errs = append(errs, errors.New("redis-addr is required"))
	}
	sameSite, err := parseSameSite(args.RawSameSite)
	if err != nil {
		errs = append(errs, err)
	}
	args.ServerConfig.Session.CookieSameSite = sameSite
	if sameSite == http.SameSiteNoneMode && !args.ServerConfig.Session.CookieSecure {
		errs = append(errs, errors.New("session-cookie-same-site none requires session-cookie-secure"))
	}
	if args.ServerConfig.Session.CookieMaxAge <= 0 {
		errs = append(errs, errors.New("session-max-age must be positive"))
	}
	db := args.ServerConfig.DB
	if _, err := db.DSN(); err != nil {
		errs = append(errs, err)
	} else if db.Driver != database.DriverSQLite && (db.Host == "" || db.Database == "") {
		errs = append(errs, errors.New("db-host and db-database are required"))
	}
	if s3 := args.ServerConfig.S3; s3.Bucket != "" && (s3.Endpoint == "" || s3.PublicBaseURL == "") {
		errs = append(errs, errors.New("s3-endpoint and s3-public-base-url are required when s3-bucket is set"))
	}
	return errors.Join(errs...)
}

func parseSameSite(raw string) (http.SameSite, error) {
	switch strings.ToLower(raw) {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	}
	return 0, fmt.Errorf("invalid session-cookie-same-site %q", raw)
}
