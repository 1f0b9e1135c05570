package models

import "time"

// Exhibition 代表一場展覽
type Exhibition struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Venue     string    `gorm:"type:varchar(255);not null;default:''"`
	StartDate time.Time `gorm:"type:date;not null;index"`
	LastDate  time.Time `gorm:"type:date;not null"`
}

func (Exhibition) TableName() string { return "exhibition" }

// DisplayedIn 記錄哪些作品在哪場展覽中展出
type DisplayedIn struct {
	ExhibitionID  uint   `gorm:"primaryKey"`
	ArtworkID     uint   `gorm:"primaryKey"`
	DisplayStatus string `gorm:"type:varchar(50);not null;default:''"`

	Exhibition *Exhibition `gorm:"foreignKey:ExhibitionID"`
	Artwork    *Artwork    `gorm:"foreignKey:ArtworkID"`
}

func (DisplayedIn) TableName() string { return "displayed_in" }
