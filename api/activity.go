package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const recentActivityLimit = 20

type ActivityKind string

const (
	ActivityBidPlaced        ActivityKind = "bid_placed"
	ActivityArtworkPurchased ActivityKind = "artwork_purchased"
)

// ActivityEvent 是成功出價或購買後寫入 stream 的稽核紀錄
// 金額以字串保存
type ActivityEvent struct {
	Kind       ActivityKind `json:"kind"`
	CustomerID uint         `json:"customer_id"`
	AuctionID  uint         `json:"auction_id,omitempty"`
	ArtworkID  uint         `json:"artwork_id,omitempty"`
	OrderID    uint         `json:"order_id,omitempty"`
	Amount     string       `json:"amount,omitempty"`
	HighestBid string       `json:"highest_bid,omitempty"`
	At         time.Time    `json:"at"`
}

// recordActivity 在交易提交後寫入活動紀錄，失敗只記錄日誌
func (impl *ServerImpl) recordActivity(ctx context.Context, event ActivityEvent) {
	if impl.activity == nil {
		return
	}
	event.At = impl.now()
	id, err := impl.activity.Append(ctx, event)
	if err != nil {
		impl.logger.Warn("Fail to record activity",
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)
		return
	}
	impl.logger.Debug("Activity recorded", slog.String("kind", string(event.Kind)), slog.String("messageId", id))
}

// RecentActivity 列出最近的出價與購買紀錄，新的在前
// (GET /activity)
func (impl *ServerImpl) RecentActivity(c *gin.Context) {
	const op = "RecentActivity"
	events := []ActivityEvent{}
	if impl.activity != nil {
		recent, err := impl.activity.Recent(c.Request.Context(), recentActivityLimit)
		if err != nil {
			impl.internalError(c, op, err)
			return
		}
		events = append(events, recent...)
	}
	impl.render(c, SESSION_KEY_ARTIST, gin.H{"activity": events})
}
