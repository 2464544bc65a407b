package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"nft-auction-house/internal/clock"
	"nft-auction-house/internal/markerrors"
	"nft-auction-house/internal/models"

	"github.com/shopspring/decimal"
)

// AuctionRegistry owns the authoritative NFT and Auction records. It maps
// auctionID to auction, tokenID to its active auction (at most one
// unsettled auction per token), and tokenID to the NFT record. All auction
// mutation runs through WithAuction, which serializes writers per
// auctionID; callers never touch records directly.
type AuctionRegistry struct {
	mu            sync.RWMutex
	nfts          map[uint64]models.NFT
	auctions      map[string]*auctionRecord
	activeByToken map[uint64]string // tokenID -> unsettled auctionID
	nextToken     uint64
	clock         clock.TimeSource
}

// auctionRecord wraps an auction with its per-auction write lock.
type auctionRecord struct {
	mu sync.Mutex
	a  models.Auction
}

// NewAuctionRegistry creates an empty registry using ts for deadlines.
func NewAuctionRegistry(ts clock.TimeSource) *AuctionRegistry {
	return &AuctionRegistry{
		nfts:          make(map[uint64]models.NFT),
		auctions:      make(map[string]*auctionRecord),
		activeByToken: make(map[uint64]string),
		clock:         ts,
	}
}

// MintNFT creates a new token owned by owner. Token IDs are assigned
// sequentially starting at 1.
func (r *AuctionRegistry) MintNFT(owner models.Address, tokenURI string) models.NFT {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextToken++
	nft := models.NFT{
		TokenID:  r.nextToken,
		Owner:    owner,
		Price:    decimal.Zero,
		TokenURI: tokenURI,
	}
	r.nfts[nft.TokenID] = nft
	return nft
}

// NFT returns the record for tokenID.
func (r *AuctionRegistry) NFT(tokenID uint64) (models.NFT, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nft, ok := r.nfts[tokenID]
	if !ok {
		return models.NFT{}, fmt.Errorf("registry: token %d: %w", tokenID, markerrors.ErrTokenNotFound)
	}
	return nft, nil
}

// UpdateNFT applies fn to the token's record under the registry lock.
// If fn returns an error the record is left untouched.
func (r *AuctionRegistry) UpdateNFT(tokenID uint64, fn func(*models.NFT) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	nft, ok := r.nfts[tokenID]
	if !ok {
		return fmt.Errorf("registry: token %d: %w", tokenID, markerrors.ErrTokenNotFound)
	}
	if err := fn(&nft); err != nil {
		return err
	}
	r.nfts[tokenID] = nft
	return nil
}

// ListForSale marks the token for fixed-price sale at price. The
// active-auction check and the listing write happen in one critical
// section, so a concurrent CreateAuction on the same token cannot slip
// between them and leave an auctioned token buyable.
func (r *AuctionRegistry) ListForSale(tokenID uint64, seller models.Address, price decimal.Decimal) (models.NFT, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nft, ok := r.nfts[tokenID]
	if !ok {
		return models.NFT{}, fmt.Errorf("registry: token %d: %w", tokenID, markerrors.ErrTokenNotFound)
	}
	if nft.Owner != seller {
		return models.NFT{}, fmt.Errorf("registry: token %d owned by %s not %s: %w", tokenID, nft.Owner, seller, markerrors.ErrNotOwner)
	}
	if _, busy := r.activeByToken[tokenID]; busy {
		return models.NFT{}, fmt.Errorf("registry: token %d: %w", tokenID, markerrors.ErrAlreadyOnAuction)
	}

	nft.ForSale = true
	nft.Price = price
	r.nfts[tokenID] = nft
	return nft, nil
}

// Buy transfers a listed token to buyer. A token with an unsettled
// auction is rejected here even if its listing flag was left set, under
// the same lock that CreateAuction and ListForSale take.
func (r *AuctionRegistry) Buy(tokenID uint64, buyer models.Address) (models.NFT, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nft, ok := r.nfts[tokenID]
	if !ok {
		return models.NFT{}, fmt.Errorf("registry: token %d: %w", tokenID, markerrors.ErrTokenNotFound)
	}
	if _, busy := r.activeByToken[tokenID]; busy {
		return models.NFT{}, fmt.Errorf("registry: token %d: %w", tokenID, markerrors.ErrAlreadyOnAuction)
	}
	if !nft.ForSale {
		return models.NFT{}, fmt.Errorf("registry: token %d: %w", tokenID, markerrors.ErrNotForSale)
	}

	nft.Owner = buyer
	nft.ForSale = false
	r.nfts[tokenID] = nft
	return nft, nil
}

// ActiveAuctionID returns the unsettled auction on tokenID, if any.
func (r *AuctionRegistry) ActiveAuctionID(tokenID uint64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.activeByToken[tokenID]
	return id, ok
}

// CreateAuction atomically records a new unsettled auction for tokenID.
// It enforces the one-unsettled-auction-per-token invariant and takes the
// token off ordinary sale for the auction's duration.
func (r *AuctionRegistry) CreateAuction(auctionID string, tokenID uint64, seller models.Address, startingPrice decimal.Decimal, duration time.Duration) (models.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nft, ok := r.nfts[tokenID]
	if !ok {
		return models.Auction{}, fmt.Errorf("registry: token %d: %w", tokenID, markerrors.ErrTokenNotFound)
	}
	if nft.Owner != seller {
		return models.Auction{}, fmt.Errorf("registry: token %d owned by %s not %s: %w", tokenID, nft.Owner, seller, markerrors.ErrNotOwner)
	}
	if _, busy := r.activeByToken[tokenID]; busy {
		return models.Auction{}, fmt.Errorf("registry: token %d: %w", tokenID, markerrors.ErrAlreadyOnAuction)
	}

	a := models.Auction{
		AuctionID:     auctionID,
		TokenID:       tokenID,
		Seller:        seller,
		StartingPrice: startingPrice,
		HighestBid:    decimal.Zero,
		HighestBidder: models.ZeroAddress,
		EndTime:       r.clock.Now().Add(duration),
	}
	r.auctions[auctionID] = &auctionRecord{a: a}
	r.activeByToken[tokenID] = auctionID

	// lock the token from the fixed-price flow
	nft.ForSale = false
	r.nfts[tokenID] = nft

	return a, nil
}

// WithAuction runs fn with exclusive access to the auction's record.
// Mutations made through the pointer are the auction's authoritative
// state; concurrent writers on the same auctionID are serialized here.
func (r *AuctionRegistry) WithAuction(auctionID string, fn func(*models.Auction) error) error {
	r.mu.RLock()
	rec, ok := r.auctions[auctionID]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("registry: auction %s: %w", auctionID, markerrors.ErrAuctionNotFound)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return fn(&rec.a)
}

// ClearActive drops the token -> active auction mapping after settlement.
func (r *AuctionRegistry) ClearActive(tokenID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.activeByToken, tokenID)
}

// Auction returns a snapshot of the auction record.
func (r *AuctionRegistry) Auction(auctionID string) (models.Auction, error) {
	r.mu.RLock()
	rec, ok := r.auctions[auctionID]
	r.mu.RUnlock()
	if !ok {
		return models.Auction{}, fmt.Errorf("registry: auction %s: %w", auctionID, markerrors.ErrAuctionNotFound)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.a, nil
}

// TimeLeft returns the remaining auction duration, clamped at zero.
func (r *AuctionRegistry) TimeLeft(auctionID string) (time.Duration, error) {
	a, err := r.Auction(auctionID)
	if err != nil {
		return 0, err
	}
	left := a.EndTime.Sub(r.clock.Now())
	if left < 0 || a.Ended {
		return 0, nil
	}
	return left, nil
}

// ActiveAuctions returns snapshots of all unsettled auctions, ordered by
// auctionID for stable output.
func (r *AuctionRegistry) ActiveAuctions() []models.Auction {
	r.mu.RLock()
	recs := make([]*auctionRecord, 0, len(r.activeByToken))
	for _, id := range r.activeByToken {
		if rec, ok := r.auctions[id]; ok {
			recs = append(recs, rec)
		}
	}
	r.mu.RUnlock()

	out := make([]models.Auction, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		out = append(out, rec.a)
		rec.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AuctionID < out[j].AuctionID })
	return out
}

// AllNFTs returns snapshots of every minted token, ordered by tokenID.
func (r *AuctionRegistry) AllNFTs() []models.NFT {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.NFT, 0, len(r.nfts))
	for _, nft := range r.nfts {
		out = append(out, nft)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TokenID < out[j].TokenID })
	return out
}
