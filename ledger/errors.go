package ledger

import "gallery/models"

var (
	ErrAuctionNotFound    = models.NewError(models.ErrNotFound, "auction not found")
	ErrAuctionNotOngoing  = models.NewError(models.ErrInvalidState, "auction is not ongoing")
	ErrArtworkSold        = models.NewError(models.ErrInvalidState, "artwork has already been sold")
	ErrBidTooLow          = models.NewError(models.ErrInvalidState, "bid must be higher than the current highest bid")
	ErrInvalidAmount      = models.NewError(models.ErrInvalidInput, "bid amount must be a positive number below 10000000000 with at most two decimal places")
	ErrBidBelowStartPrice = models.NewError(models.ErrInvalidInput, "bid amount is below the start price")
)
