// Package catalog 管理作品、藝術家、庫存與展覽資料
// 作品狀態是購買與拍賣共用的可變資源，所有修改都經由 SetStatus 的比較後寫入
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gallery/models"
)

var (
	ErrArtworkNotFound = models.NewError(models.ErrNotFound, "artwork not found")
	ErrArtistNotFound  = models.NewError(models.ErrNotFound, "artist not found")
	ErrStockNotFound   = models.NewError(models.ErrNotFound, "stock record not found")
	ErrStatusConflict  = models.NewError(models.ErrInvalidState, "artwork status has changed")
	ErrInvalidArtwork  = models.NewError(models.ErrInvalidInput, "artwork title and type are required")
	ErrInvalidArtist   = models.NewError(models.ErrInvalidInput, "artist name is required")
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx 回傳綁定在指定交易上的 Store
func (s *Store) WithTx(tx *gorm.DB) *Store {
	return &Store{db: tx}
}

// GalleryArtwork 是作品列表顯示用的資料
type GalleryArtwork struct {
	ArtworkID uint                 `json:"artworkId"`
	Title     string               `json:"title"`
	Type      string               `json:"type"`
	Status    models.ArtworkStatus `json:"status"`
	Artist    string               `json:"artist"`
}

// AvailableArtwork 是購買頁面顯示用的資料
type AvailableArtwork struct {
	ArtworkID      uint                 `json:"artworkId"`
	Title          string               `json:"title"`
	Type           string               `json:"type"`
	Status         models.ArtworkStatus `json:"status"`
	Artist         string               `json:"artist"`
	Description    string               `json:"description"`
	ImageURL       string               `json:"imageUrl"`
	StockAvailable int                  `json:"stockAvailable"`
}

func (s *Store) artworkRows(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("artworks AS a").
		Joins("JOIN artist AS ar ON a.artist_id = ar.id")
}

// ListGallery 列出所有作品
func (s *Store) ListGallery(ctx context.Context) ([]GalleryArtwork, error) {
	const op = "catalog.ListGallery"
	var rows []GalleryArtwork
	if err := s.artworkRows(ctx).
		Select("a.id AS artwork_id, a.title, a.type, a.status, ar.name AS artist").
		Order("a.id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list artworks, err=%w", op, models.Persistence(err))
	}
	return rows, nil
}

// GetAvailableArtworks 列出可以購買的作品
func (s *Store) GetAvailableArtworks(ctx context.Context) ([]AvailableArtwork, error) {
	return s.availableArtworks(ctx, 0)
}

// FeaturedArtworks 列出首頁展示的可購買作品
func (s *Store) FeaturedArtworks(ctx context.Context, limit int) ([]AvailableArtwork, error) {
	return s.availableArtworks(ctx, limit)
}

func (s *Store) availableArtworks(ctx context.Context, limit int) ([]AvailableArtwork, error) {
	const op = "catalog.GetAvailableArtworks"
	query := s.artworkRows(ctx).
		Joins("JOIN artwork_stocks AS s ON a.stock_id = s.id").
		Select("a.id AS artwork_id, a.title, a.type, a.status, ar.name AS artist, a.description, a.image_url, s.available_count AS stock_available").
		Where("a.status = ?", models.ArtworkAvailable).
		Order("a.id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []AvailableArtwork
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list available artworks, err=%w", op, models.Persistence(err))
	}
	return rows, nil
}

// GetArtworkByID 取得單一作品
func (s *Store) GetArtworkByID(ctx context.Context, id uint) (models.Artwork, error) {
	const op = "catalog.GetArtworkByID"
	var artwork models.Artwork
	if err := s.db.WithContext(ctx).First(&artwork, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Artwork{}, ErrArtworkNotFound
		}
		return models.Artwork{}, fmt.Errorf("[%s] Fail to find artwork, err=%w", op, models.Persistence(err))
	}
	return artwork, nil
}

// SetStatus 只有在作品目前的狀態為 from 時才改為 to
func (s *Store) SetStatus(ctx context.Context, id uint, from, to models.ArtworkStatus) error {
	const op = "catalog.SetStatus"
	result := s.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("id = ? AND status = ?", id, from).
		UpdateColumn("status", to)
	if result.Error != nil {
		return fmt.Errorf("[%s] Fail to update artwork status, err=%w", op, models.Persistence(result.Error))
	}
	if result.RowsAffected == 1 {
		return nil
	}
	// 沒有更新到任何資料，區分作品不存在與狀態已改變
	if _, err := s.GetArtworkByID(ctx, id); err != nil {
		return err
	}
	return ErrStatusConflict
}

// SetImageURL 更新作品圖片
func (s *Store) SetImageURL(ctx context.Context, id uint, url string) error {
	const op = "catalog.SetImageURL"
	result := s.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("id = ?", id).
		UpdateColumn("image_url", url)
	if result.Error != nil {
		return fmt.Errorf("[%s] Fail to update artwork image, err=%w", op, models.Persistence(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrArtworkNotFound
	}
	return nil
}

type NewArtwork struct {
	Title       string
	Type        string
	Year        int
	Description string
	ArtistID    uint
	StockID     uint
}

// AddArtwork 新增作品，新作品一律為 Available
func (s *Store) AddArtwork(ctx context.Context, input NewArtwork) (models.Artwork, error) {
	const op = "catalog.AddArtwork"
	if input.Title == "" || input.Type == "" {
		return models.Artwork{}, ErrInvalidArtwork
	}
	artwork := models.Artwork{
		Title:       input.Title,
		Type:        input.Type,
		Year:        input.Year,
		Description: input.Description,
		ArtistID:    input.ArtistID,
		StockID:     input.StockID,
		Status:      models.ArtworkAvailable,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists[models.Artist](tx, input.ArtistID, ErrArtistNotFound); err != nil {
			return err
		}
		if err := exists[models.Stock](tx, input.StockID, ErrStockNotFound); err != nil {
			return err
		}
		return tx.Create(&artwork).Error
	})
	if err != nil {
		return models.Artwork{}, fmt.Errorf("[%s] Fail to create artwork, err=%w", op, models.Persistence(err))
	}
	return artwork, nil
}

func exists[T any](tx *gorm.DB, id uint, notFound error) error {
	var count int64
	if err := tx.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound
	}
	return nil
}

type NewArtist struct {
	Name        string
	Style       string
	DateOfBirth *time.Time
	Contact     string
	Email       string
}

// AddArtist 新增藝術家資料
func (s *Store) AddArtist(ctx context.Context, input NewArtist) (models.Artist, error) {
	const op = "catalog.AddArtist"
	if input.Name == "" {
		return models.Artist{}, ErrInvalidArtist
	}
	artist := models.Artist{
		Name:        input.Name,
		Style:       input.Style,
		DateOfBirth: input.DateOfBirth,
		Contact:     input.Contact,
		Email:       input.Email,
	}
	if err := s.db.WithContext(ctx).Create(&artist).Error; err != nil {
		return models.Artist{}, fmt.Errorf("[%s] Fail to create artist, err=%w", op, models.Persistence(err))
	}
	return artist, nil
}

func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	const op = "catalog.ListArtists"
	var artists []models.Artist
	if err := s.db.WithContext(ctx).Order("id").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list artists, err=%w", op, models.Persistence(err))
	}
	return artists, nil
}

func (s *Store) ListStocks(ctx context.Context) ([]models.Stock, error) {
	const op = "catalog.ListStocks"
	var stocks []models.Stock
	if err := s.db.WithContext(ctx).Order("id").Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list stocks, err=%w", op, models.Persistence(err))
	}
	return stocks, nil
}
