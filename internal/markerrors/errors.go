package markerrors

import "errors"

// Validation errors: bad parameters, rejected before any state change.
var (
	ErrBadAddress      = errors.New("invalid address")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDuration = errors.New("invalid auction duration")
	ErrNotOwner        = errors.New("caller does not own token")
	ErrSelfBid         = errors.New("seller cannot bid on own auction")
	ErrTokenNotFound   = errors.New("token not found")
	ErrAuctionNotFound = errors.New("auction not found")
)

// State-conflict errors: valid request, wrong state. No state change,
// safe to retry after re-reading current state.
var (
	ErrAlreadyOnAuction  = errors.New("token already has an active auction")
	ErrNotForSale        = errors.New("token is not listed for sale")
	ErrBidTooLow         = errors.New("bid amount too low")
	ErrNotActive         = errors.New("auction is not active")
	ErrNotExpired        = errors.New("auction has not expired yet")
	ErrAlreadySettled    = errors.New("auction already settled")
	ErrNothingToWithdraw = errors.New("no pending return to withdraw")
)
