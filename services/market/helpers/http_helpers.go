package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"nft-auction-house/internal/markerrors"
	"nft-auction-house/internal/models"
	"nft-auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// baseUnitExponent is the fixed-point scale of engine amounts.
const baseUnitExponent = 18

// ParseDisplayAmount converts a display-unit decimal string into base
// units, rejecting negative values and sub-base-unit precision.
func ParseDisplayAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: %w", s, markerrors.ErrInvalidAmount)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %q is negative: %w", s, markerrors.ErrInvalidAmount)
	}
	base := d.Shift(baseUnitExponent)
	if !base.IsInteger() {
		return decimal.Zero, fmt.Errorf("amount %q has sub-base-unit precision: %w", s, markerrors.ErrInvalidAmount)
	}
	return base, nil
}

// FormatDisplayAmount converts base units back to a display-unit string.
func FormatDisplayAmount(base decimal.Decimal) string {
	return base.Shift(-baseUnitExponent).String()
}

// ParseAddressParam normalizes an address from a request, wrapping the
// failure in the validation taxonomy.
func ParseAddressParam(s string) (models.Address, error) {
	addr, err := models.ParseAddress(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", markerrors.ErrBadAddress, err)
	}
	return addr, nil
}

// NFTToResponse maps a token record onto its response DTO.
func NFTToResponse(nft models.NFT) NFTResponse {
	return NFTResponse{
		TokenID:  nft.TokenID,
		Owner:    string(nft.Owner),
		ForSale:  nft.ForSale,
		Price:    FormatDisplayAmount(nft.Price),
		TokenURI: nft.TokenURI,
	}
}

// AuctionToResponse maps an auction snapshot onto its response DTO.
func AuctionToResponse(a models.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:     a.AuctionID,
		TokenID:       a.TokenID,
		Seller:        string(a.Seller),
		StartingPrice: FormatDisplayAmount(a.StartingPrice),
		HighestBid:    FormatDisplayAmount(a.HighestBid),
		HighestBidder: string(a.HighestBidder),
		EndTime:       a.EndTime.UTC().Format(time.RFC3339),
		Ended:         a.Ended,
	}
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain errors to HTTP status code and message.
// Validation errors are 400, missing records 404, state conflicts 409.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, markerrors.ErrTokenNotFound):
		return http.StatusNotFound, "token not found"
	case errors.Is(err, markerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, markerrors.ErrBadAddress):
		return http.StatusBadRequest, "invalid address"
	case errors.Is(err, markerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid amount"
	case errors.Is(err, markerrors.ErrInvalidDuration):
		return http.StatusBadRequest, "invalid auction duration"
	case errors.Is(err, markerrors.ErrNotOwner):
		return http.StatusForbidden, "caller does not own token"
	case errors.Is(err, markerrors.ErrSelfBid):
		return http.StatusBadRequest, "seller cannot bid on own auction"
	case errors.Is(err, markerrors.ErrAlreadyOnAuction):
		return http.StatusConflict, "token already has an active auction"
	case errors.Is(err, markerrors.ErrNotForSale):
		return http.StatusConflict, "token is not listed for sale"
	case errors.Is(err, markerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, markerrors.ErrNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, markerrors.ErrNotExpired):
		return http.StatusConflict, "auction has not expired yet"
	case errors.Is(err, markerrors.ErrAlreadySettled):
		return http.StatusConflict, "auction already settled"
	case errors.Is(err, markerrors.ErrNothingToWithdraw):
		return http.StatusConflict, "no pending return to withdraw"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
