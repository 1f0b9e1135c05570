// Package ledger 維護拍賣的出價紀錄與最高出價
//
// 最高出價的更新是單一條件式 UPDATE，與出價紀錄的新增在同一個交易內完成；
// 資料庫是唯一的狀態來源，這裡不快取任何拍賣狀態。
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gallery/models"
)

type options struct {
	strict bool
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*options)

// WithStrictBidding 要求新出價必須高於目前最高出價
func WithStrictBidding(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLogger 設置日誌記錄器
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock 設置出價時間的來源
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

type Ledger struct {
	db      *gorm.DB
	logger  *slog.Logger
	options options
}

func New(db *gorm.DB, opts ...Option) *Ledger {
	options := options{
		logger: slog.Default(),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Ledger{
		db:      db,
		logger:  options.logger.With(slog.String("caller", "Ledger")),
		options: options,
	}
}

// 金額欄位是 decimal(12,2)
const amountScale = 2

var maxAmount = decimal.New(1, 12-amountScale)

// ParseAmount 解析表單上的出價金額
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if err := checkAmount(amount); err != nil {
		return decimal.Decimal{}, err
	}
	return amount, nil
}

// checkAmount 確認金額為正數且能原樣存入金額欄位
func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThanOrEqual(maxAmount) {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(amountScale)) {
		return ErrInvalidAmount
	}
	return nil
}

// BidResult 是出價成功後的結果
type BidResult struct {
	Bid        models.Bid
	HighestBid decimal.Decimal
}

// PlaceBid 對進行中的拍賣出價
//
// 流程:
//   - 1. 檢查金額、拍賣狀態、起標價與作品是否已售出
//   - 2. 以條件式 UPDATE 更新最高出價(條件包含拍賣狀態與作品狀態)
//   - 3a. 沒有更新到資料代表狀態在檢查後被改變，重新判斷原因並回滾
//   - 3b. 新增出價紀錄
//   - 4. 讀回更新後的最高出價
func (l *Ledger) PlaceBid(ctx context.Context, auctionID, customerID uint, amount decimal.Decimal) (BidResult, error) {
	const op = "ledger.PlaceBid"
	if err := checkAmount(amount); err != nil {
		return BidResult{}, err
	}

	var result BidResult
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 檢查拍賣是否可以出價
		var auction models.Auction
		if err := tx.Preload("Artwork").First(&auction, auctionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAuctionNotFound
			}
			return fmt.Errorf("fail to find auction, err=%w", models.Persistence(err))
		}
		if err := l.validate(auction, amount); err != nil {
			return err
		}

		// 更新最高出價
		update := tx.Model(&models.Auction{}).
			Where("id = ? AND status = ?", auctionID, models.AuctionOngoing).
			Where("EXISTS (SELECT 1 FROM artworks WHERE artworks.id = auction.artwork_id AND artworks.status = ?)", models.ArtworkAvailable)
		if l.options.strict {
			update = update.Where("(highest_bid IS NULL OR highest_bid < ?)", amount)
		}
		updated := update.UpdateColumn("highest_bid", gorm.Expr(
			"CASE WHEN highest_bid IS NULL OR highest_bid < ? THEN ? ELSE highest_bid END", amount, amount,
		))
		if updated.Error != nil {
			return fmt.Errorf("fail to update highest bid, err=%w", models.Persistence(updated.Error))
		}
		if updated.RowsAffected == 0 {
			return l.rejectReason(tx, auctionID, amount)
		}

		// 新增出價紀錄
		bid := models.Bid{
			AuctionID:  auctionID,
			CustomerID: customerID,
			Amount:     amount,
			BidTime:    l.options.now(),
		}
		if err := tx.Create(&bid).Error; err != nil {
			return fmt.Errorf("fail to create bid, err=%w", models.Persistence(err))
		}

		// 讀回最高出價
		var current models.Auction
		if err := tx.Select("id", "highest_bid").First(&current, auctionID).Error; err != nil {
			return fmt.Errorf("fail to reload auction, err=%w", models.Persistence(err))
		}
		result = BidResult{Bid: bid, HighestBid: current.HighestBid.Decimal}
		return nil
	})
	if err != nil {
		if _, ok := models.UserMessage(err); ok {
			return BidResult{}, err
		}
		return BidResult{}, fmt.Errorf("[%s] Fail to place bid, err=%w", op, models.Persistence(err))
	}

	l.logger.Info("Bid placed",
		slog.Uint64("auctionID", uint64(auctionID)),
		slog.Uint64("customerID", uint64(customerID)),
		slog.String("amount", amount.String()),
		slog.String("highestBid", result.HighestBid.String()),
	)
	return result, nil
}

func (l *Ledger) validate(auction models.Auction, amount decimal.Decimal) error {
	if auction.Status != models.AuctionOngoing {
		return ErrAuctionNotOngoing
	}
	if amount.LessThan(auction.StartPrice) {
		return ErrBidBelowStartPrice
	}
	if auction.Artwork != nil && auction.Artwork.Status != models.ArtworkAvailable {
		return ErrArtworkSold
	}
	if l.options.strict && auction.HighestBid.Valid && !amount.GreaterThan(auction.HighestBid.Decimal) {
		return ErrBidTooLow
	}
	return nil
}

// rejectReason 在條件式更新失敗時重新讀取拍賣，找出被拒絕的原因
func (l *Ledger) rejectReason(tx *gorm.DB, auctionID uint, amount decimal.Decimal) error {
	var auction models.Auction
	if err := tx.Preload("Artwork").First(&auction, auctionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAuctionNotFound
		}
		return fmt.Errorf("fail to reload auction, err=%w", models.Persistence(err))
	}
	if err := l.validate(auction, amount); err != nil {
		return err
	}
	if auction.Artwork == nil {
		return ErrArtworkSold
	}
	l.logger.Warn("Conditional bid update matched no rows", slog.Uint64("auctionID", uint64(auctionID)))
	return ErrBidTooLow
}
