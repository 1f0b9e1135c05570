package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"gallery/api/openapi"
	"gallery/ledger"
)

const (
	featuredArtworksLimit    = 4
	upcomingExhibitionsLimit = 5
	ongoingAuctionsLimit     = 5
)

type purchaseForm struct {
	ArtworkID uint `form:"artwork_id" binding:"required"`
}

type bidForm struct {
	AuctionID uint   `form:"auction_id" binding:"required"`
	BidAmount string `form:"bid_amount" binding:"required"`
}

// CustomerHome 顯示精選作品、即將開始的展覽與進行中的拍賣
func (impl *ServerImpl) CustomerHome(c *gin.Context) {
	const op = "CustomerHome"
	ctx := c.Request.Context()
	artworks, err := impl.catalog.FeaturedArtworks(ctx, featuredArtworksLimit)
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	exhibitions, err := impl.catalog.UpcomingExhibitions(ctx, impl.now(), upcomingExhibitionsLimit)
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	auctions, err := impl.ledger.OngoingAuctions(ctx, ongoingAuctionsLimit)
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	impl.render(c, SESSION_KEY_CUSTOMER, gin.H{
		"artworks":    artworks,
		"exhibitions": exhibitions,
		"auctions":    auctions,
	})
}

func (impl *ServerImpl) ViewExhibition(c *gin.Context) {
	const op = "ViewExhibition"
	exhibitions, err := impl.catalog.ExhibitionListings(c.Request.Context())
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	impl.render(c, SESSION_KEY_CUSTOMER, gin.H{"exhibitions": exhibitions})
}

func (impl *ServerImpl) BuyArtworkPage(c *gin.Context) {
	const op = "BuyArtworkPage"
	artworks, err := impl.catalog.GetAvailableArtworks(c.Request.Context())
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	impl.render(c, SESSION_KEY_CUSTOMER, gin.H{"artworks": artworks})
}

// BuyArtwork 直接購買一件作品
func (impl *ServerImpl) BuyArtwork(c *gin.Context) {
	const op = "BuyArtwork"
	customerID, err := CurrentCustomerID(c)
	if err != nil {
		impl.fail(c, op, err, "/customer_login")
		return
	}
	var form purchaseForm
	if err := c.ShouldBind(&form); err != nil {
		impl.flash(c, FlashWarning, "Please choose an artwork to buy.")
		c.Redirect(http.StatusSeeOther, "/buy_artwork")
		return
	}

	order, err := impl.orders.Purchase(c.Request.Context(), customerID, form.ArtworkID)
	if err != nil {
		impl.fail(c, op, err, "/buy_artwork")
		return
	}
	impl.recordActivity(c.Request.Context(), ActivityEvent{
		Kind:       ActivityArtworkPurchased,
		CustomerID: customerID,
		ArtworkID:  order.ArtworkID,
		OrderID:    order.ID,
	})
	impl.succeed(c, "Purchase successful! The artwork is now yours.", "/purchase_history")
}

func (impl *ServerImpl) AuctionPage(c *gin.Context) {
	const op = "AuctionPage"
	auctions, err := impl.ledger.ListActiveAuctions(c.Request.Context())
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	impl.render(c, SESSION_KEY_CUSTOMER, gin.H{"auctions": auctions})
}

// PlaceBid 對進行中的拍賣出價
func (impl *ServerImpl) PlaceBid(c *gin.Context) {
	const op = "PlaceBid"
	customerID, err := CurrentCustomerID(c)
	if err != nil {
		impl.fail(c, op, err, "/customer_login")
		return
	}
	var form bidForm
	if err := c.ShouldBind(&form); err != nil {
		impl.flash(c, FlashWarning, "Please choose an auction and enter a bid amount.")
		c.Redirect(http.StatusSeeOther, "/auction")
		return
	}
	amount, err := ledger.ParseAmount(form.BidAmount)
	if err != nil {
		impl.fail(c, op, err, "/auction")
		return
	}

	result, err := impl.ledger.PlaceBid(c.Request.Context(), form.AuctionID, customerID, amount)
	if err != nil {
		impl.fail(c, op, err, "/auction")
		return
	}
	impl.recordActivity(c.Request.Context(), ActivityEvent{
		Kind:       ActivityBidPlaced,
		CustomerID: customerID,
		AuctionID:  form.AuctionID,
		Amount:     result.Bid.Amount.StringFixed(2),
		HighestBid: result.HighestBid.StringFixed(2),
	})
	if result.HighestBid.GreaterThan(amount) {
		impl.logger.Debug("Bid recorded below highest bid",
			slog.Uint64("auctionID", uint64(form.AuctionID)),
			slog.String("highestBid", result.HighestBid.String()),
		)
	}
	impl.succeed(c, "Bid placed successfully!", "/auction")
}

// PurchaseHistory 列出目前買家的購買紀錄
func (impl *ServerImpl) PurchaseHistory(c *gin.Context) {
	const op = "PurchaseHistory"
	customerID, err := CurrentCustomerID(c)
	if err != nil {
		impl.fail(c, op, err, "/customer_login")
		return
	}
	purchases, err := impl.orders.ListPurchaseHistory(c.Request.Context(), customerID)
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	impl.render(c, SESSION_KEY_CUSTOMER, gin.H{"purchases": purchases})
}

// BidHistory 列出一場拍賣的出價紀錄
// (GET /auction/{auctionID}/bids)
func (impl *ServerImpl) BidHistory(c *gin.Context, auctionID int) {
	const op = "BidHistory"
	if auctionID <= 0 {
		c.JSON(http.StatusBadRequest, openapi.Message{Message: "invalid auction id"})
		return
	}
	bids, err := impl.ledger.BidHistory(c.Request.Context(), uint(auctionID))
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	impl.render(c, SESSION_KEY_CUSTOMER, gin.H{"bids": bids})
}
