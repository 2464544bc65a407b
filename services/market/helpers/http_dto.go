package helpers

// Request/Response DTOs. Amounts cross the HTTP boundary in display
// units (decimal strings); the engine only ever sees 18-decimal base
// units.

type MintNFTRequest struct {
	Owner    string `json:"owner" binding:"required"`
	TokenURI string `json:"token_uri"`
}

type ListNFTRequest struct {
	Seller string `json:"seller" binding:"required"`
	Price  string `json:"price" binding:"required"`
}

type BuyNFTRequest struct {
	Buyer string `json:"buyer" binding:"required"`
}

type CreateAuctionRequest struct {
	TokenID         uint64 `json:"token_id" binding:"required"`
	Seller          string `json:"seller" binding:"required"`
	StartingPrice   string `json:"starting_price" binding:"required"`
	DurationSeconds int64  `json:"duration_seconds" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	Bidder string `json:"bidder" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

type SettleRequest struct {
	Caller string `json:"caller" binding:"required"`
}

type WithdrawRequest struct {
	Caller string `json:"caller" binding:"required"`
}

type NFTResponse struct {
	TokenID  uint64 `json:"token_id"`
	Owner    string `json:"owner"`
	ForSale  bool   `json:"for_sale"`
	Price    string `json:"price"`
	TokenURI string `json:"token_uri,omitempty"`
}

type AuctionResponse struct {
	AuctionID     string `json:"auction_id"`
	TokenID       uint64 `json:"token_id"`
	Seller        string `json:"seller"`
	StartingPrice string `json:"starting_price"`
	HighestBid    string `json:"highest_bid"`
	HighestBidder string `json:"highest_bidder"`
	EndTime       string `json:"end_time"`
	Ended         bool   `json:"ended"`
}

type TimeLeftResponse struct {
	AuctionID string `json:"auction_id"`
	Seconds   int64  `json:"seconds"`
}

type PendingReturnResponse struct {
	AuctionID string `json:"auction_id"`
	Bidder    string `json:"bidder"`
	Amount    string `json:"amount"`
}

type WithdrawResponse struct {
	AuctionID string `json:"auction_id"`
	Caller    string `json:"caller"`
	Amount    string `json:"amount"`
}
