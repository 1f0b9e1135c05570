// Package orders 處理作品的直接購買與購買紀錄
package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"gallery/catalog"
	"gallery/models"
)

var (
	ErrArtworkNotFound     = catalog.ErrArtworkNotFound
	ErrArtworkNotAvailable = models.NewError(models.ErrInvalidState, "artwork is not available for purchase")
)

type options struct {
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*options)

// WithLogger 設置日誌記錄器
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock 設置訂單日期的來源
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

type Processor struct {
	db      *gorm.DB
	catalog *catalog.Store
	logger  *slog.Logger
	now     func() time.Time
}

func NewProcessor(db *gorm.DB, store *catalog.Store, opts ...Option) *Processor {
	options := options{
		logger: slog.Default(),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Processor{
		db:      db,
		catalog: store,
		logger:  options.logger.With(slog.String("caller", "OrderProcessor")),
		now:     options.now,
	}
}

// Purchase 購買一件作品
//
// 作品狀態的比較後寫入與訂單的新增在同一個交易內完成，
// 同時購買同一件作品時只有一個會成功。
func (p *Processor) Purchase(ctx context.Context, customerID, artworkID uint) (models.Order, error) {
	const op = "orders.Purchase"

	var order models.Order
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := p.catalog.WithTx(tx).SetStatus(ctx, artworkID, models.ArtworkAvailable, models.ArtworkSold)
		switch {
		case errors.Is(err, catalog.ErrStatusConflict):
			return ErrArtworkNotAvailable
		case err != nil:
			return err
		}

		order = models.Order{
			CustomerID: customerID,
			ArtworkID:  artworkID,
			Quantity:   1,
			Status:     models.OrderCompleted,
			Date:       p.now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("fail to create order, err=%w", models.Persistence(err))
		}
		return nil
	})
	if err != nil {
		if _, ok := models.UserMessage(err); ok {
			return models.Order{}, err
		}
		return models.Order{}, fmt.Errorf("[%s] Fail to purchase artwork, err=%w", op, models.Persistence(err))
	}

	p.logger.Info("Artwork purchased",
		slog.Uint64("orderID", uint64(order.ID)),
		slog.Uint64("customerID", uint64(customerID)),
		slog.Uint64("artworkID", uint64(artworkID)),
	)
	return order, nil
}

// PurchaseRecord 是購買紀錄顯示用的資料
type PurchaseRecord struct {
	OrderID uint               `json:"orderId"`
	Title   string             `json:"title"`
	Type    string             `json:"type"`
	Date    time.Time          `json:"date"`
	Status  models.OrderStatus `json:"status"`
}

// ListPurchaseHistory 列出買家的購買紀錄，最新的在前
func (p *Processor) ListPurchaseHistory(ctx context.Context, customerID uint) ([]PurchaseRecord, error) {
	const op = "orders.ListPurchaseHistory"
	var rows []PurchaseRecord
	if err := p.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.id AS order_id, a.title, a.type, o.date, o.order_status AS status").
		Joins("JOIN artworks AS a ON o.artwork_id = a.id").
		Where("o.customer_id = ?", customerID).
		Order("o.date DESC").
		Order("o.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list orders, err=%w", op, models.Persistence(err))
	}
	return rows, nil
}
