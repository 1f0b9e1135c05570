package orders

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gallery/adapters/database/databasetest"
	"gallery/catalog"
	"gallery/models"
)

func setupTest(t *testing.T, opts ...Option) (*gorm.DB, *Processor) {
	db := databasetest.Open(t, "orders")
	return db, NewProcessor(db, catalog.NewStore(db), opts...)
}

// setupContendedTest 使用可以並行交易的資料庫，見 databasetest.OpenContended
func setupContendedTest(t *testing.T) (*gorm.DB, *Processor) {
	db := databasetest.OpenContended(t, "orders")
	return db, NewProcessor(db, catalog.NewStore(db))
}

func seedArtwork(t *testing.T, db *gorm.DB, title string, status models.ArtworkStatus) models.Artwork {
	artist := models.Artist{Name: "Hokusai", Style: "Ukiyo-e"}
	require.NoError(t, db.Create(&artist).Error)
	stock := models.Stock{AvailableCount: 3}
	require.NoError(t, db.Create(&stock).Error)
	artwork := models.Artwork{
		Title:    title,
		Type:     "Print",
		Year:     1831,
		ArtistID: artist.ID,
		StockID:  stock.ID,
		Status:   status,
	}
	require.NoError(t, db.Create(&artwork).Error)
	return artwork
}

func seedCustomer(t *testing.T, db *gorm.DB, username string) models.Customer {
	customer := models.Customer{FullName: "Customer " + username, Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func countOrders(t *testing.T, db *gorm.DB, artworkID uint) int64 {
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Where("artwork_id = ?", artworkID).Count(&count).Error)
	return count
}

func artworkStatus(t *testing.T, db *gorm.DB, artworkID uint) models.ArtworkStatus {
	var artwork models.Artwork
	require.NoError(t, db.First(&artwork, artworkID).Error)
	return artwork.Status
}
