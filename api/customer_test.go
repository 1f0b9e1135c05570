package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery/ledger"
	"gallery/models"
)

func TestBuyArtwork(t *testing.T) {
	ts := setupTest(t, nil)
	customer := ts.registerCustomer(t, "Ada Lovelace", "ada", "s3cret")
	client := ts.loginCustomer(t, "ada", "s3cret")
	artwork := ts.seedArtwork(t, "Red Canna")
	ts.get(t, client, "/customer_home")

	_, _, view := ts.get(t, client, "/buy_artwork")
	require.Len(t, view.Data["artworks"], 1)

	status, location := ts.postForm(t, client, "/buy_artwork", url.Values{
		"artwork_id": {fmt.Sprint(artwork.ID)},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/purchase_history", location)

	status, _, view = ts.get(t, client, "/purchase_history")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"success: Purchase successful! The artwork is now yours."}, flashMessages(view))
	purchases, ok := view.Data["purchases"].([]any)
	require.True(t, ok)
	require.Len(t, purchases, 1)
	purchase := purchases[0].(map[string]any)
	assert.Equal(t, "Red Canna", purchase["title"])
	assert.Equal(t, "Completed", purchase["status"])

	var stored models.Artwork
	require.NoError(t, ts.db.First(&stored, artwork.ID).Error)
	assert.Equal(t, models.ArtworkSold, stored.Status)

	// 已售出的作品不能再購買
	status, location = ts.postForm(t, client, "/buy_artwork", url.Values{
		"artwork_id": {fmt.Sprint(artwork.ID)},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/buy_artwork", location)
	_, _, view = ts.get(t, client, "/buy_artwork")
	assert.Equal(t, []string{"danger: artwork is not available for purchase"}, flashMessages(view))
	assert.Empty(t, view.Data["artworks"])

	var orders int64
	require.NoError(t, ts.db.Model(&models.Order{}).Count(&orders).Error)
	assert.Equal(t, int64(1), orders)

	events := ts.activities(t)
	require.Len(t, events, 1)
	assert.Equal(t, ActivityArtworkPurchased, events[0].Kind)
	assert.Equal(t, customer.ID, events[0].CustomerID)
	assert.Equal(t, artwork.ID, events[0].ArtworkID)
	assert.NotZero(t, events[0].OrderID)
	assert.False(t, events[0].At.IsZero())
}

func TestBuyArtwork_Anonymous(t *testing.T) {
	ts := setupTest(t, nil)
	artwork := ts.seedArtwork(t, "Red Canna")
	client := ts.newClient(t)

	status, location := ts.postForm(t, client, "/buy_artwork", url.Values{
		"artwork_id": {fmt.Sprint(artwork.ID)},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/customer_login", location)

	var stored models.Artwork
	require.NoError(t, ts.db.First(&stored, artwork.ID).Error)
	assert.Equal(t, models.ArtworkAvailable, stored.Status)
	assert.Empty(t, ts.activities(t))
}

func TestBuyArtwork_InvalidInput(t *testing.T) {
	ts := setupTest(t, nil)
	ts.registerCustomer(t, "Ada Lovelace", "ada", "s3cret")
	client := ts.loginCustomer(t, "ada", "s3cret")
	ts.get(t, client, "/customer_home")

	tests := []struct {
		name    string
		form    url.Values
		message string
	}{
		{name: "missing artwork", form: url.Values{}, message: "warning: Please choose an artwork to buy."},
		{name: "unknown artwork", form: url.Values{"artwork_id": {"999"}}, message: "danger: artwork not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, location := ts.postForm(t, client, "/buy_artwork", tt.form)
			assert.Equal(t, http.StatusSeeOther, status)
			assert.Equal(t, "/buy_artwork", location)
			_, _, view := ts.get(t, client, "/buy_artwork")
			assert.Equal(t, []string{tt.message}, flashMessages(view))
		})
	}
}

func TestPlaceBid(t *testing.T) {
	ts := setupTest(t, nil)
	customer := ts.registerCustomer(t, "Ada Lovelace", "ada", "s3cret")
	client := ts.loginCustomer(t, "ada", "s3cret")
	ts.get(t, client, "/customer_home")
	artwork := ts.seedArtwork(t, "Jimson Weed")
	auction := ts.seedAuction(t, artwork.ID, models.AuctionOngoing, 100)

	status, location := ts.postForm(t, client, "/auction", url.Values{
		"auction_id": {fmt.Sprint(auction.ID)},
		"bid_amount": {"150"},
	})
	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/auction", location)

	_, _, view := ts.get(t, client, "/auction")
	assert.Equal(t, []string{"success: Bid placed successfully!"}, flashMessages(view))
	auctions, ok := view.Data["auctions"].([]any)
	require.True(t, ok)
	require.Len(t, auctions, 1)
	assert.Equal(t, "150", auctions[0].(map[string]any)["highestBid"])

	var stored models.Auction
	require.NoError(t, ts.db.First(&stored, auction.ID).Error)
	assert.True(t, decimal.NewFromInt(150).Equal(stored.HighestBid.Decimal))

	_, _, view = ts.get(t, client, fmt.Sprintf("/auction/%d/bids", auction.ID))
	bids, ok := view.Data["bids"].([]any)
	require.True(t, ok)
	require.Len(t, bids, 1)
	assert.Equal(t, "Ada Lovelace", bids[0].(map[string]any)["customer"])

	events := ts.activities(t)
	require.Len(t, events, 1)
	assert.Equal(t, ActivityBidPlaced, events[0].Kind)
	assert.Equal(t, customer.ID, events[0].CustomerID)
	assert.Equal(t, auction.ID, events[0].AuctionID)
	assert.Equal(t, "150.00", events[0].Amount)
	assert.Equal(t, "150.00", events[0].HighestBid)
}

func TestBidHistory_InvalidAuctionID(t *testing.T) {
	ts := setupTest(t, nil)
	ts.registerCustomer(t, "Ada Lovelace", "ada", "s3cret")
	client := ts.loginCustomer(t, "ada", "s3cret")

	tests := []struct {
		name    string
		path    string
		message string
	}{
		{name: "not a number", path: "/auction/abc/bids", message: "Invalid format for parameter auctionID"},
		{name: "zero", path: "/auction/0/bids", message: "invalid auction id"},
		{name: "negative", path: "/auction/-3/bids", message: "invalid auction id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Get(ts.server.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Contains(t, body.Message, tt.message)
		})
	}
}

func TestPlaceBid_Rejections(t *testing.T) {
	ts := setupTest(t, nil)
	ts.registerCustomer(t, "Ada Lovelace", "ada", "s3cret")
	client := ts.loginCustomer(t, "ada", "s3cret")
	ts.get(t, client, "/customer_home")
	artwork := ts.seedArtwork(t, "Black Iris")
	ongoing := ts.seedAuction(t, artwork.ID, models.AuctionOngoing, 100)
	closed := ts.seedAuction(t, artwork.ID, models.AuctionClosed, 100)

	tests := []struct {
		name    string
		form    url.Values
		message string
	}{
		{
			name:    "closed auction",
			form:    url.Values{"auction_id": {fmt.Sprint(closed.ID)}, "bid_amount": {"200"}},
			message: "danger: auction is not ongoing",
		},
		{
			name:    "not a number",
			form:    url.Values{"auction_id": {fmt.Sprint(ongoing.ID)}, "bid_amount": {"abc"}},
			message: "warning: " + ledger.ErrInvalidAmount.Message,
		},
		{
			name:    "too large for the amount column",
			form:    url.Values{"auction_id": {fmt.Sprint(ongoing.ID)}, "bid_amount": {"1e11"}},
			message: "warning: " + ledger.ErrInvalidAmount.Message,
		},
		{
			name:    "fractions of a cent",
			form:    url.Values{"auction_id": {fmt.Sprint(ongoing.ID)}, "bid_amount": {"150.005"}},
			message: "warning: " + ledger.ErrInvalidAmount.Message,
		},
		{
			name:    "below start price",
			form:    url.Values{"auction_id": {fmt.Sprint(ongoing.ID)}, "bid_amount": {"50"}},
			message: "warning: bid amount is below the start price",
		},
		{
			name:    "unknown auction",
			form:    url.Values{"auction_id": {"999"}, "bid_amount": {"200"}},
			message: "danger: auction not found",
		},
		{
			name:    "missing amount",
			form:    url.Values{"auction_id": {fmt.Sprint(ongoing.ID)}},
			message: "warning: Please choose an auction and enter a bid amount.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, location := ts.postForm(t, client, "/auction", tt.form)
			assert.Equal(t, http.StatusSeeOther, status)
			assert.Equal(t, "/auction", location)
			_, _, view := ts.get(t, client, "/auction")
			assert.Equal(t, []string{tt.message}, flashMessages(view))
		})
	}

	var bids int64
	require.NoError(t, ts.db.Model(&models.Bid{}).Count(&bids).Error)
	assert.Zero(t, bids)
	assert.Empty(t, ts.activities(t))
}

func TestPlaceBid_StrictBidding(t *testing.T) {
	ts := setupTest(t, nil, func(config *ServerConfig) {
		config.Auction.StrictBidding = true
	})
	ts.registerCustomer(t, "Ada Lovelace", "ada", "s3cret")
	client := ts.loginCustomer(t, "ada", "s3cret")
	ts.get(t, client, "/customer_home")
	artwork := ts.seedArtwork(t, "Blue and Green Music")
	auction := ts.seedAuction(t, artwork.ID, models.AuctionOngoing, 100)

	form := url.Values{"auction_id": {fmt.Sprint(auction.ID)}, "bid_amount": {"150"}}
	ts.postForm(t, client, "/auction", form)
	ts.get(t, client, "/auction")

	ts.postForm(t, client, "/auction", form)
	_, _, view := ts.get(t, client, "/auction")
	assert.Equal(t, []string{"danger: bid must be higher than the current highest bid"}, flashMessages(view))
	assert.Len(t, ts.activities(t), 1)
}

func TestCustomerHome(t *testing.T) {
	ts := setupTest(t, nil)
	ts.registerCustomer(t, "Ada Lovelace", "ada", "s3cret")
	client := ts.loginCustomer(t, "ada", "s3cret")
	for i := 0; i < 6; i++ {
		ts.seedArtwork(t, fmt.Sprintf("Artwork %d", i))
	}
	artwork := ts.seedArtwork(t, "On Auction")
	ts.seedAuction(t, artwork.ID, models.AuctionOngoing, 100)
	ts.seedAuction(t, artwork.ID, models.AuctionScheduled, 100)

	status, _, view := ts.get(t, client, "/customer_home")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, view.Data["artworks"], featuredArtworksLimit)
	assert.Len(t, view.Data["auctions"], 1)
	assert.Empty(t, view.Data["exhibitions"])

	status, _, view = ts.get(t, client, "/view_exhibition")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, view.Data["exhibitions"])
}
