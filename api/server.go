// Package api 提供藝廊的 HTTP 介面
//
// 表單送出後以 session 中的 flash 訊息搭配 303 轉址回應，
// 頁面類的 GET 請求則回傳 JSON(flashes、user 與頁面資料)。
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"gallery/accounts"
	"gallery/adapters/database"
	redisAdapter "gallery/adapters/redis"
	internalS3 "gallery/adapters/s3"
	"gallery/api/openapi"
	"gallery/catalog"
	"gallery/ledger"
	"gallery/orders"
)

// ImageUploader 檢查並儲存作品圖片，回傳公開網址
type ImageUploader interface {
	Upload(ctx context.Context, prefix string, body io.Reader) (string, error)
}

var _ openapi.ServerInterface = (*ServerImpl)(nil)

type ServerImpl struct {
	db          *gorm.DB
	redisClient *redis.Client
	catalog     *catalog.Store
	ledger      *ledger.Ledger
	orders      *orders.Processor
	accounts    *accounts.Service
	activity    redisAdapter.IStream[ActivityEvent]
	images      ImageUploader
	htmlChecker *bluemonday.Policy
	textChecker *bluemonday.Policy
	logger      *slog.Logger
	now         func() time.Time

	config ServerConfig
}

func NewServer(config ServerConfig) (*ServerImpl, error) {
	const op = "NewServer"

	// 初始化資料庫連線
	db, err := database.Open(config.DB)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to open database, err=%w", op, err)
	}
	if err := database.Migrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("[%s] Fail to migrate database, err=%w", op, err)
	}

	// 初始化Redis連線
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	// 初始化S3客戶端，沒有設定存儲桶時停用圖片上傳
	var images ImageUploader
	if config.S3.Bucket != "" {
		client, err := internalS3.NewClient(context.Background(), config.S3)
		if err != nil {
			database.Close(db)
			redisClient.Close()
			return nil, fmt.Errorf("[%s] Fail to create S3 client, err=%w", op, err)
		}
		operator, err := internalS3.NewImageOperator(client, config.S3.Bucket, config.S3.PublicBaseURL)
		if err != nil {
			database.Close(db)
			redisClient.Close()
			return nil, fmt.Errorf("[%s] Fail to create S3 operator, err=%w", op, err)
		}
		images = operator
	}

	impl, err := newServer(db, redisClient, images, config, slog.Default())
	if err != nil {
		database.Close(db)
		redisClient.Close()
		return nil, fmt.Errorf("[%s] Fail to create server, err=%w", op, err)
	}
	return impl, nil
}

// newServer 以已建立的連線組裝伺服器
func newServer(db *gorm.DB, redisClient *redis.Client, images ImageUploader, config ServerConfig, logger *slog.Logger) (*ServerImpl, error) {
	now := func() time.Time {
		return time.Now().UTC()
	}
	store := catalog.NewStore(db)
	impl := &ServerImpl{
		db:          db,
		redisClient: redisClient,
		catalog:     store,
		ledger: ledger.New(db,
			ledger.WithStrictBidding(config.Auction.StrictBidding),
			ledger.WithLogger(logger),
		),
		orders: orders.NewProcessor(db, store, orders.WithLogger(logger)),
		accounts: accounts.NewService(db,
			accounts.WithBcryptCost(config.Auth.BcryptCost),
			accounts.WithLogger(logger),
		),
		images:      images,
		htmlChecker: bluemonday.UGCPolicy(),
		textChecker: bluemonday.StrictPolicy(),
		logger:      logger,
		now:         now,
		config:      config,
	}

	if config.Redis.StreamKeys.Activity != "" {
		stream, err := redisAdapter.NewStream[ActivityEvent](
			redisClient,
			config.Redis.KeyPrefix+config.Redis.StreamKeys.Activity,
			redisAdapter.WithStreamMaxLen(config.Redis.ActivityMaxLen),
			redisAdapter.WithStreamLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("fail to create activity stream, err=%w", err)
		}
		impl.activity = stream
	}
	return impl, nil
}

// Router 建立 gin engine 並依照 openapi.yaml 註冊所有路由
func (impl *ServerImpl) Router() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestLogger(impl.logger),
		SecurityHeaders(),
		impl.SessionMiddleware(),
	)
	openapi.RegisterHandlersWithOptions(router, impl, openapi.GinServerOptions{
		Middlewares: []openapi.MiddlewareFunc{impl.AccessGuard},
		ErrorHandler: func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, openapi.Message{Message: err.Error()})
		},
	})
	return router
}

func (impl *ServerImpl) Close() {
	const op = "ServerImpl.Close"
	if err := impl.redisClient.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
		impl.logger.Error("Fail to close redis client", slog.String("op", op), slog.Any("error", err))
	}
	if err := database.Close(impl.db); err != nil {
		impl.logger.Error("Fail to close database", slog.String("op", op), slog.Any("error", err))
	}
}

// Index 列出可以選擇的身分
func (impl *ServerImpl) Index(c *gin.Context) {
	impl.render(c, "", gin.H{
		"roles": []gin.H{
			{"role": "artist", "login": "/artist_login", "register": "/artist_register"},
			{"role": "customer", "login": "/customer_login", "register": "/customer_register"},
		},
	})
}

func (impl *ServerImpl) internalError(c *gin.Context, op string, err error) {
	impl.logger.Error("Internal error", slog.String("op", op), slog.Any("error", err))
	c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, openapi.Message{Message: "internal server error"})
}
