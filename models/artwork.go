package models

import "time"

type ArtworkStatus string

const (
	ArtworkAvailable ArtworkStatus = "Available"
	ArtworkSold      ArtworkStatus = "Sold"
)

// Artwork 代表藝廊中的一件作品
// 建立後只有狀態會被核心流程修改，且只能經由完成的訂單從 Available 變為 Sold
type Artwork struct {
	ID          uint          `gorm:"primaryKey"`
	Title       string        `gorm:"type:varchar(255);not null"`
	Type        string        `gorm:"type:varchar(100);not null"`
	Year        int           `gorm:"not null;default:0"`
	Description string        `gorm:"type:text;not null"`
	ArtistID    uint          `gorm:"not null;index"`
	StockID     uint          `gorm:"not null;index"`
	Status      ArtworkStatus `gorm:"type:varchar(20);not null;default:Available;index"`
	ImageURL    string        `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time

	// 外鍵關聯
	Artist *Artist `gorm:"foreignKey:ArtistID"`
	Stock  *Stock  `gorm:"foreignKey:StockID"`
}

func (Artwork) TableName() string { return "artworks" }
