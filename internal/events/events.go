package events

import (
	"time"

	"nft-auction-house/internal/models"

	"github.com/shopspring/decimal"
)

// Event is a state-change notification on the append-only feed. Each event
// carries enough data for a consumer to apply its effect without a
// follow-up query.
type Event interface {
	// Kind names the event type on the wire.
	Kind() string
}

// Kind values for the event schema.
const (
	KindNFTMinted      = "NFTMinted"
	KindNFTListed      = "NFTListed"
	KindNFTSold        = "NFTSold"
	KindAuctionCreated = "AuctionCreated"
	KindBidPlaced      = "BidPlaced"
	KindAuctionEnded   = "AuctionEnded"
)

// NFTMinted signals a newly minted token.
type NFTMinted struct {
	TokenID uint64         `json:"token_id"`
	Owner   models.Address `json:"owner"`
}

// NFTListed signals a token put up for fixed-price sale.
type NFTListed struct {
	TokenID uint64          `json:"token_id"`
	Seller  models.Address  `json:"seller"`
	Price   decimal.Decimal `json:"price"`
}

// NFTSold signals a completed fixed-price sale.
type NFTSold struct {
	TokenID uint64          `json:"token_id"`
	Buyer   models.Address  `json:"buyer"`
	Price   decimal.Decimal `json:"price"`
}

// AuctionCreated signals a new auction opening for bids.
type AuctionCreated struct {
	AuctionID     string          `json:"auction_id"`
	TokenID       uint64          `json:"token_id"`
	Seller        models.Address  `json:"seller"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	EndTime       time.Time       `json:"end_time"`
}

// BidPlaced signals an accepted bid.
type BidPlaced struct {
	AuctionID string          `json:"auction_id"`
	Bidder    models.Address  `json:"bidder"`
	Amount    decimal.Decimal `json:"amount"`
}

// AuctionEnded signals a settled auction. Winner is the zero address when
// the auction closed without bids.
type AuctionEnded struct {
	AuctionID string          `json:"auction_id"`
	TokenID   uint64          `json:"token_id"`
	Winner    models.Address  `json:"winner"`
	Amount    decimal.Decimal `json:"amount"`
}

func (NFTMinted) Kind() string      { return KindNFTMinted }
func (NFTListed) Kind() string      { return KindNFTListed }
func (NFTSold) Kind() string        { return KindNFTSold }
func (AuctionCreated) Kind() string { return KindAuctionCreated }
func (BidPlaced) Kind() string      { return KindBidPlaced }
func (AuctionEnded) Kind() string   { return KindAuctionEnded }
