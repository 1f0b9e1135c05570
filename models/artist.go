package models

import "time"

// Artist 代表作品的創作者資料
type Artist struct {
	ID          uint       `gorm:"primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Style       string     `gorm:"type:varchar(255);not null;default:''"`
	DateOfBirth *time.Time `gorm:"type:date"`
	Contact     string     `gorm:"type:varchar(100);not null;default:''"`
	Email       string     `gorm:"type:varchar(255);not null;default:''"`
}

func (Artist) TableName() string { return "artist" }

// Stock 代表作品的庫存紀錄
type Stock struct {
	ID             uint `gorm:"primaryKey"`
	AvailableCount int  `gorm:"not null;default:0"`
}

func (Stock) TableName() string { return "artwork_stocks" }
