package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gallery/adapters/database/databasetest"
	"gallery/models"
)

func setupTest(t *testing.T) *gorm.DB {
	return databasetest.Open(t, "ledger")
}

type fixture struct {
	artwork   models.Artwork
	auction   models.Auction
	customers []models.Customer
}

// seedAuction 建立一件作品、一場拍賣與數個買家
func seedAuction(t *testing.T, db *gorm.DB, status models.AuctionStatus, startPrice int64, highestBid *int64, customers int) fixture {
	artist := models.Artist{Name: "Claude Monet", Style: "Impressionism"}
	require.NoError(t, db.Create(&artist).Error)
	stock := models.Stock{AvailableCount: 1}
	require.NoError(t, db.Create(&stock).Error)
	artwork := models.Artwork{
		Title:    "Impression, Sunrise",
		Type:     "Painting",
		Year:     1872,
		ArtistID: artist.ID,
		StockID:  stock.ID,
		Status:   models.ArtworkAvailable,
	}
	require.NoError(t, db.Create(&artwork).Error)
	auction := models.Auction{
		ArtworkID:  artwork.ID,
		Status:     status,
		StartPrice: decimal.NewFromInt(startPrice),
	}
	if highestBid != nil {
		auction.HighestBid = decimal.NewNullDecimal(decimal.NewFromInt(*highestBid))
	}
	require.NoError(t, db.Create(&auction).Error)

	f := fixture{artwork: artwork, auction: auction}
	for i := 0; i < customers; i++ {
		customer := models.Customer{
			FullName:     "Customer",
			Username:     "customer" + string(rune('a'+i)),
			PasswordHash: "x",
		}
		require.NoError(t, db.Create(&customer).Error)
		f.customers = append(f.customers, customer)
	}
	return f
}

func countBids(t *testing.T, db *gorm.DB, auctionID uint) int64 {
	var count int64
	require.NoError(t, db.Model(&models.Bid{}).Where("auction_id = ?", auctionID).Count(&count).Error)
	return count
}

func reloadAuction(t *testing.T, db *gorm.DB, auctionID uint) models.Auction {
	var auction models.Auction
	require.NoError(t, db.First(&auction, auctionID).Error)
	return auction
}
