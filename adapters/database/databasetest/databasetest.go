// Package databasetest 提供測試用的資料庫連線
package databasetest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gallery/adapters/database"
)

// 設定 GALLERY_TEST_POSTGRES_HOST 後，OpenContended 改用 postgres
const (
	envPostgresHost     = "GALLERY_TEST_POSTGRES_HOST"
	envPostgresPort     = "GALLERY_TEST_POSTGRES_PORT"
	envPostgresUser     = "GALLERY_TEST_POSTGRES_USER"
	envPostgresPassword = "GALLERY_TEST_POSTGRES_PASSWORD"
	envPostgresDatabase = "GALLERY_TEST_POSTGRES_DATABASE"
)

// Open 在 t.TempDir() 建立已遷移的 sqlite 資料庫
func Open(t testing.TB, name string) *gorm.DB {
	t.Helper()
	db, err := database.Open(database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), name+".db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		database.Close(db)
	})
	return db
}

// OpenContended 回傳可以讓交易真正並行的資料庫
//
// sqlite 只有一條連線，交易會依序執行；設定 postgres 後每個測試使用
// 獨立的 schema，結束時刪除。
func OpenContended(t testing.TB, name string) *gorm.DB {
	t.Helper()
	host := os.Getenv(envPostgresHost)
	if host == "" {
		t.Logf("%s is not set, transactions run one at a time on sqlite", envPostgresHost)
		return Open(t, name)
	}

	port := 5432
	if raw := os.Getenv(envPostgresPort); raw != "" {
		parsed, err := strconv.Atoi(raw)
		require.NoError(t, err)
		port = parsed
	}
	cfg := database.Config{
		Driver:       database.DriverPostgres,
		Host:         host,
		Port:         port,
		User:         envOr(envPostgresUser, "postgres"),
		Password:     os.Getenv(envPostgresPassword),
		Database:     envOr(envPostgresDatabase, "postgres"),
		MaxOpenConns: 16,
	}
	admin, err := database.Open(cfg)
	require.NoError(t, err)
	schema := fmt.Sprintf("%s_%d", name, time.Now().UnixNano())
	require.NoError(t, admin.Exec("CREATE SCHEMA "+schema).Error)
	t.Cleanup(func() {
		admin.Exec("DROP SCHEMA " + schema + " CASCADE")
		database.Close(admin)
	})

	cfg.Schema = schema
	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		database.Close(db)
	})
	require.NoError(t, database.Migrate(db))
	return db
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
