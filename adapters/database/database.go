package database

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gallery/models"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Config 描述資料庫連線設定
// Path 只在 sqlite 時使用
type Config struct {
	Driver          string
	User            string
	Password        string
	Host            string
	Port            int
	Database        string
	Schema          string
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Debug           bool
}

// DSN 依照驅動組出連線字串
func (cfg Config) DSN() (string, error) {
	switch cfg.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)
		if cfg.Schema != "" {
			dsn += "&search_path=" + cfg.Schema
		}
		return dsn, nil
	case DriverMySQL:
		// clientFoundRows 讓條件更新在值沒有改變時仍回報符合的列數
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database), nil
	case DriverSQLite:
		if cfg.Path == "" {
			return "", fmt.Errorf("sqlite path cannot be empty")
		}
		return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", cfg.Path), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

func (cfg Config) dialector() (gorm.Dialector, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}
	switch cfg.Driver {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	default:
		return sqlite.Open(dsn), nil
	}
}

// Open 建立 gorm 連線並設定連線池
func Open(cfg Config) (*gorm.DB, error) {
	const op = "database.Open"
	dialector, err := cfg.dialector()
	if err != nil {
		return nil, fmt.Errorf("[%s] Invalid database config, err=%w", op, err)
	}
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to connect to database, err=%w", op, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to get connection pool, err=%w", op, err)
	}
	maxOpen := cfg.MaxOpenConns
	// sqlite 同一時間只允許一個寫入者
	if cfg.Driver == DriverSQLite {
		maxOpen = 1
	}
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	slog.Info("Database connected", slog.String("driver", cfg.Driver))
	return db, nil
}

// Migrate 依照模型建立或更新資料表
func Migrate(db *gorm.DB) error {
	const op = "database.Migrate"
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("[%s] Fail to migrate schema, err=%w", op, err)
	}
	return nil
}

// Close 關閉底層連線池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
