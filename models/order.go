package models

import "time"

type OrderStatus string

const (
	OrderCompleted OrderStatus = "Completed"
)

// Order 代表一筆直接購買的紀錄，只會新增不會修改
type Order struct {
	ID         uint        `gorm:"primaryKey"`
	CustomerID uint        `gorm:"not null;index;<-:create"`
	ArtworkID  uint        `gorm:"not null;index;<-:create"`
	Quantity   int         `gorm:"not null;default:1;<-:create"`
	Status     OrderStatus `gorm:"column:order_status;type:varchar(20);not null;<-:create"`
	Date       time.Time   `gorm:"not null;index;<-:create"`

	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Artwork  *Artwork  `gorm:"foreignKey:ArtworkID"`
}

func (Order) TableName() string { return "orders" }
