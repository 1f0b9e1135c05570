package catalog

import (
	"context"
	"fmt"
	"time"

	"gallery/models"
)

type UpcomingExhibition struct {
	Name      string    `json:"name"`
	Venue     string    `json:"venue"`
	StartDate time.Time `json:"startDate"`
	LastDate  time.Time `json:"lastDate"`
}

type ExhibitionListing struct {
	Exhibition    string    `json:"exhibition"`
	Venue         string    `json:"venue"`
	StartDate     time.Time `json:"startDate"`
	LastDate      time.Time `json:"lastDate"`
	Artwork       string    `json:"artwork"`
	Artist        string    `json:"artist"`
	DisplayStatus string    `json:"displayStatus"`
}

// UpcomingExhibitions 列出 from 當天或之後開始的展覽，依開始日期排序
func (s *Store) UpcomingExhibitions(ctx context.Context, from time.Time, limit int) ([]UpcomingExhibition, error) {
	const op = "catalog.UpcomingExhibitions"
	// start_date 是日期欄位，只比較到日
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	query := s.db.WithContext(ctx).
		Model(&models.Exhibition{}).
		Select("name, venue, start_date, last_date").
		Where("start_date >= ?", from).
		Order("start_date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []UpcomingExhibition
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list exhibitions, err=%w", op, models.Persistence(err))
	}
	return rows, nil
}

// ExhibitionListings 列出每場展覽展出的作品，最新的展覽在前
func (s *Store) ExhibitionListings(ctx context.Context) ([]ExhibitionListing, error) {
	const op = "catalog.ExhibitionListings"
	var rows []ExhibitionListing
	if err := s.db.WithContext(ctx).
		Table("exhibition AS e").
		Select("e.name AS exhibition, e.venue, e.start_date, e.last_date, a.title AS artwork, ar.name AS artist, di.display_status").
		Joins("JOIN displayed_in AS di ON e.id = di.exhibition_id").
		Joins("JOIN artworks AS a ON di.artwork_id = a.id").
		Joins("JOIN artist AS ar ON a.artist_id = ar.id").
		Order("e.start_date DESC").
		Order("a.id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list exhibition artworks, err=%w", op, models.Persistence(err))
	}
	return rows, nil
}
