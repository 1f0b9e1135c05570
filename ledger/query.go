package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"gallery/models"
)

// ActiveAuction 是拍賣列表顯示用的資料
type ActiveAuction struct {
	AuctionID  uint                 `json:"auctionId"`
	Artwork    string               `json:"artwork"`
	Type       string               `json:"type"`
	Artist     string               `json:"artist"`
	Status     models.AuctionStatus `json:"status"`
	StartPrice decimal.Decimal      `json:"startPrice"`
	HighestBid decimal.NullDecimal  `json:"highestBid"`
}

// BidRecord 是出價紀錄顯示用的資料
type BidRecord struct {
	BidID    uint            `json:"bidId"`
	Customer string          `json:"customer"`
	Amount   decimal.Decimal `json:"amount"`
	BidTime  time.Time       `json:"bidTime"`
}

func (l *Ledger) auctions(ctx context.Context, limit int, statuses ...models.AuctionStatus) ([]ActiveAuction, error) {
	query := l.db.WithContext(ctx).
		Table("auction AS auc").
		Select("auc.id AS auction_id, a.title AS artwork, a.type, ar.name AS artist, auc.status, auc.start_price, auc.highest_bid").
		Joins("JOIN artworks AS a ON auc.artwork_id = a.id").
		Joins("JOIN artist AS ar ON a.artist_id = ar.id").
		Where("auc.status IN ?", statuses).
		Order("auc.id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []ActiveAuction
	if err := query.Scan(&rows).Error; err != nil {
		return nil, models.Persistence(err)
	}
	return rows, nil
}

// ListActiveAuctions 列出進行中與即將開始的拍賣
func (l *Ledger) ListActiveAuctions(ctx context.Context) ([]ActiveAuction, error) {
	const op = "ledger.ListActiveAuctions"
	rows, err := l.auctions(ctx, 0, models.AuctionOngoing, models.AuctionScheduled)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list auctions, err=%w", op, err)
	}
	return rows, nil
}

// OngoingAuctions 列出進行中的拍賣
func (l *Ledger) OngoingAuctions(ctx context.Context, limit int) ([]ActiveAuction, error) {
	const op = "ledger.OngoingAuctions"
	rows, err := l.auctions(ctx, limit, models.AuctionOngoing)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list auctions, err=%w", op, err)
	}
	return rows, nil
}

// BidHistory 列出拍賣的出價紀錄，最新的在前
func (l *Ledger) BidHistory(ctx context.Context, auctionID uint) ([]BidRecord, error) {
	const op = "ledger.BidHistory"
	var rows []BidRecord
	if err := l.db.WithContext(ctx).
		Table("bids AS b").
		Select("b.id AS bid_id, c.full_name AS customer, b.amount, b.bid_time").
		Joins("JOIN customer_login AS c ON b.customer_id = c.id").
		Where("b.auction_id = ?", auctionID).
		Order("b.bid_time DESC").
		Order("b.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list bids, err=%w", op, models.Persistence(err))
	}
	return rows, nil
}
