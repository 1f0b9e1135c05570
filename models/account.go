package models

// Customer 代表買家帳號
type Customer struct {
	ID           uint   `gorm:"primaryKey"`
	FullName     string `gorm:"type:varchar(255);not null"`
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

func (Customer) TableName() string { return "customer_login" }

// ArtistAccount 代表藝術家的登入帳號
type ArtistAccount struct {
	ID           uint   `gorm:"primaryKey"`
	FullName     string `gorm:"type:varchar(255);not null"`
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

func (ArtistAccount) TableName() string { return "register" }
