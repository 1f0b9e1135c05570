package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gallery/adapters/database/databasetest"
	"gallery/models"
)

func setupTest(t *testing.T) (*gorm.DB, *Store) {
	db := databasetest.Open(t, "catalog")
	return db, NewStore(db)
}

func seedArtwork(t *testing.T, db *gorm.DB, title string, status models.ArtworkStatus) models.Artwork {
	artist := models.Artist{Name: "Artist of " + title, Style: "Oil"}
	require.NoError(t, db.Create(&artist).Error)
	stock := models.Stock{AvailableCount: 1}
	require.NoError(t, db.Create(&stock).Error)
	artwork := models.Artwork{
		Title:       title,
		Type:        "Painting",
		Year:        1999,
		Description: "description of " + title,
		ArtistID:    artist.ID,
		StockID:     stock.ID,
		Status:      status,
	}
	require.NoError(t, db.Create(&artwork).Error)
	return artwork
}
