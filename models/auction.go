package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuctionStatus string

const (
	AuctionScheduled AuctionStatus = "Scheduled"
	AuctionOngoing   AuctionStatus = "Ongoing"
	AuctionClosed    AuctionStatus = "Closed"
)

// Auction 代表一件作品的拍賣
// 狀態由外部流程推進(Scheduled → Ongoing → Closed)，最高出價只會遞增
type Auction struct {
	ID         uint                `gorm:"primaryKey"`
	ArtworkID  uint                `gorm:"not null;index"`
	Status     AuctionStatus       `gorm:"type:varchar(20);not null;default:Scheduled;index"`
	StartPrice decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	HighestBid decimal.NullDecimal `gorm:"type:decimal(12,2)"`

	// 外鍵關聯
	Artwork *Artwork `gorm:"foreignKey:ArtworkID"`
	Bids    []Bid    `gorm:"foreignKey:AuctionID"`
}

func (Auction) TableName() string { return "auction" }

// Bid 代表拍賣的出價紀錄，只會新增不會修改
type Bid struct {
	ID         uint            `gorm:"primaryKey"`
	AuctionID  uint            `gorm:"not null;index;<-:create"`
	CustomerID uint            `gorm:"not null;index;<-:create"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null;<-:create"`
	BidTime    time.Time       `gorm:"not null;<-:create"`

	Customer *Customer `gorm:"foreignKey:CustomerID"`
}

func (Bid) TableName() string { return "bids" }
