package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Address is an opaque 20-byte identity in canonical lowercase 0x-hex form.
// Addresses compare equal iff their canonical forms are equal.
type Address string

// ZeroAddress is the sentinel for "no bidder" / "no winner".
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// ParseAddress validates s as a 20-byte hex address and returns its
// canonical lowercase form.
func ParseAddress(s string) (Address, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "0x") {
		return "", fmt.Errorf("address %q: missing 0x prefix", s)
	}
	digits := s[2:]
	if len(digits) != 40 {
		return "", fmt.Errorf("address %q: want 40 hex digits, got %d", s, len(digits))
	}
	for _, c := range digits {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", fmt.Errorf("address %q: invalid hex digit %q", s, c)
		}
	}
	return Address(s), nil
}

// IsZero reports whether a is the zero-address sentinel.
func (a Address) IsZero() bool {
	return a == ZeroAddress || a == ""
}

// NFT represents a minted token and its fixed-price listing state.
// Price and every other amount in this package are 18-decimal base units.
type NFT struct {
	TokenID  uint64          `json:"token_id"`
	Owner    Address         `json:"owner"`
	ForSale  bool            `json:"for_sale"`
	Price    decimal.Decimal `json:"price"`
	TokenURI string          `json:"token_uri"`
}

// Auction represents one English auction over a single token.
type Auction struct {
	AuctionID     string          `json:"auction_id"`
	TokenID       uint64          `json:"token_id"`
	Seller        Address         `json:"seller"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	HighestBid    decimal.Decimal `json:"highest_bid"`
	HighestBidder Address         `json:"highest_bidder"`
	EndTime       time.Time       `json:"end_time"`
	Ended         bool            `json:"ended"`
}

// HasBids reports whether at least one bid has been accepted.
func (a Auction) HasBids() bool {
	return !a.HighestBidder.IsZero()
}
