package syncer

import (
	"sort"
	"sync"

	"nft-auction-house/internal/events"
	"nft-auction-house/internal/models"
)

// ClientView is the denormalized read cache consumers query instead of
// the authoritative registry. It is patched incrementally from the event
// feed and periodically overwritten wholesale from authoritative state.
// Reads are eventually consistent; Stale reports whether the feed is
// currently lost and the cache may lag until the next reload.
type ClientView struct {
	mu       sync.RWMutex
	auctions map[string]models.Auction // unsettled auctions only
	nfts     map[uint64]models.NFT
	stale    bool
}

// NewClientView creates an empty view, marked stale until the first
// authoritative load.
func NewClientView() *ClientView {
	return &ClientView{
		auctions: make(map[string]models.Auction),
		nfts:     make(map[uint64]models.NFT),
		stale:    true,
	}
}

// Replace overwrites the cache with authoritative snapshots and clears
// the stale flag.
func (v *ClientView) Replace(auctions []models.Auction, nfts []models.NFT) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.auctions = make(map[string]models.Auction, len(auctions))
	for _, a := range auctions {
		v.auctions[a.AuctionID] = a
	}
	v.nfts = make(map[uint64]models.NFT, len(nfts))
	for _, n := range nfts {
		v.nfts[n.TokenID] = n
	}
	v.stale = false
}

// Apply patches the cache with one event's effect.
func (v *ClientView) Apply(ev events.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch e := ev.(type) {
	case events.NFTMinted:
		v.nfts[e.TokenID] = models.NFT{TokenID: e.TokenID, Owner: e.Owner}
	case events.NFTListed:
		if nft, ok := v.nfts[e.TokenID]; ok {
			nft.Owner = e.Seller
			nft.ForSale = true
			nft.Price = e.Price
			v.nfts[e.TokenID] = nft
		}
	case events.NFTSold:
		if nft, ok := v.nfts[e.TokenID]; ok {
			nft.Owner = e.Buyer
			nft.ForSale = false
			v.nfts[e.TokenID] = nft
		}
	case events.AuctionCreated:
		v.auctions[e.AuctionID] = models.Auction{
			AuctionID:     e.AuctionID,
			TokenID:       e.TokenID,
			Seller:        e.Seller,
			StartingPrice: e.StartingPrice,
			HighestBidder: models.ZeroAddress,
			EndTime:       e.EndTime,
		}
		if nft, ok := v.nfts[e.TokenID]; ok {
			nft.ForSale = false
			v.nfts[e.TokenID] = nft
		}
	case events.BidPlaced:
		if a, ok := v.auctions[e.AuctionID]; ok {
			a.HighestBid = e.Amount
			a.HighestBidder = e.Bidder
			v.auctions[e.AuctionID] = a
		}
	case events.AuctionEnded:
		delete(v.auctions, e.AuctionID)
		if !e.Winner.IsZero() {
			if nft, ok := v.nfts[e.TokenID]; ok {
				nft.Owner = e.Winner
				nft.ForSale = false
				v.nfts[e.TokenID] = nft
			}
		}
	}
}

// MarkStale flags the cache as possibly lagging authoritative state.
func (v *ClientView) MarkStale() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stale = true
}

// Stale reports whether the cache may be behind authoritative state.
func (v *ClientView) Stale() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.stale
}

// ActiveAuctions returns cached unsettled auctions ordered by auctionID.
func (v *ClientView) ActiveAuctions() []models.Auction {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]models.Auction, 0, len(v.auctions))
	for _, a := range v.auctions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AuctionID < out[j].AuctionID })
	return out
}

// AllNFTs returns cached token records ordered by tokenID.
func (v *ClientView) AllNFTs() []models.NFT {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]models.NFT, 0, len(v.nfts))
	for _, n := range v.nfts {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TokenID < out[j].TokenID })
	return out
}
