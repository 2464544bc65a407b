package lifecycle

import (
	"fmt"
	"time"

	"nft-auction-house/internal/clock"
	"nft-auction-house/internal/events"
	"nft-auction-house/internal/ledger"
	"nft-auction-house/internal/markerrors"
	"nft-auction-house/internal/models"
	"nft-auction-house/internal/registry"
	"nft-auction-house/utils"

	"github.com/shopspring/decimal"
)

// AuctionLifecycle validates and executes every state transition in the
// marketplace: mint, list, buy, and the auction operations create, bid,
// settle, withdraw. All auction mutation is funneled through the
// registry's per-auction lock, so competing bids and competing settlement
// calls on one auction are applied in a total order. Accepted transitions
// emit their event to the feed before the lock is released, keeping the
// per-auction event order consistent with the applied order.
type AuctionLifecycle struct {
	reg    *registry.AuctionRegistry
	ledger *ledger.BidLedger
	clock  clock.TimeSource
	feed   *events.Feed
}

// NewAuctionLifecycle wires the lifecycle over its collaborators.
func NewAuctionLifecycle(reg *registry.AuctionRegistry, lgr *ledger.BidLedger, ts clock.TimeSource, feed *events.Feed) *AuctionLifecycle {
	return &AuctionLifecycle{reg: reg, ledger: lgr, clock: ts, feed: feed}
}

// MintNFT creates a new token owned by owner and emits NFTMinted.
func (s *AuctionLifecycle) MintNFT(owner models.Address, tokenURI string) (models.NFT, error) {
	if owner.IsZero() {
		return models.NFT{}, fmt.Errorf("lifecycle: mint to zero address: %w", markerrors.ErrBadAddress)
	}

	nft := s.reg.MintNFT(owner, tokenURI)
	s.feed.Publish(events.NFTMinted{TokenID: nft.TokenID, Owner: nft.Owner})
	utils.Info("nft minted", map[string]any{"token_id": nft.TokenID, "owner": string(nft.Owner)})
	return nft, nil
}

// ListNFTForSale puts a token up for fixed-price sale. A token with an
// unsettled auction cannot be listed.
func (s *AuctionLifecycle) ListNFTForSale(tokenID uint64, seller models.Address, price decimal.Decimal) (models.NFT, error) {
	if !price.IsPositive() {
		return models.NFT{}, fmt.Errorf("lifecycle: list price must be positive: %w", markerrors.ErrInvalidAmount)
	}

	listed, err := s.reg.ListForSale(tokenID, seller, price)
	if err != nil {
		return models.NFT{}, err
	}

	s.feed.Publish(events.NFTListed{TokenID: tokenID, Seller: seller, Price: price})
	utils.Info("nft listed", map[string]any{"token_id": tokenID, "seller": string(seller), "price": price.String()})
	return listed, nil
}

// BuyNFT completes a fixed-price sale, transferring ownership to buyer.
func (s *AuctionLifecycle) BuyNFT(tokenID uint64, buyer models.Address) (models.NFT, error) {
	if buyer.IsZero() {
		return models.NFT{}, fmt.Errorf("lifecycle: buy with zero address: %w", markerrors.ErrBadAddress)
	}

	sold, err := s.reg.Buy(tokenID, buyer)
	if err != nil {
		return models.NFT{}, err
	}

	s.feed.Publish(events.NFTSold{TokenID: tokenID, Buyer: buyer, Price: sold.Price})
	utils.Info("nft sold", map[string]any{"token_id": tokenID, "buyer": string(buyer), "price": sold.Price.String()})
	return sold, nil
}

// CreateAuction opens a new auction on a token the seller owns. The
// deadline is fixed at creation and the token is locked from ordinary
// sale until settlement.
func (s *AuctionLifecycle) CreateAuction(tokenID uint64, seller models.Address, startingPrice decimal.Decimal, duration time.Duration) (models.Auction, error) {
	if seller.IsZero() {
		return models.Auction{}, fmt.Errorf("lifecycle: create auction with zero address: %w", markerrors.ErrBadAddress)
	}
	if !startingPrice.IsPositive() {
		return models.Auction{}, fmt.Errorf("lifecycle: starting price must be positive: %w", markerrors.ErrInvalidAmount)
	}
	if duration <= 0 {
		return models.Auction{}, fmt.Errorf("lifecycle: duration must be positive: %w", markerrors.ErrInvalidDuration)
	}

	a, err := s.reg.CreateAuction(utils.GenerateID(), tokenID, seller, startingPrice, duration)
	if err != nil {
		return models.Auction{}, err
	}

	s.feed.Publish(events.AuctionCreated{
		AuctionID:     a.AuctionID,
		TokenID:       a.TokenID,
		Seller:        a.Seller,
		StartingPrice: a.StartingPrice,
		EndTime:       a.EndTime,
	})
	utils.Info("auction created", map[string]any{
		"auction_id": a.AuctionID,
		"token_id":   a.TokenID,
		"seller":     string(a.Seller),
		"end_time":   a.EndTime,
	})
	return a, nil
}

// PlaceBid applies a bid against the auction's current state. Competing
// bids on the same auction are serialized; the loser of a race is
// validated against the already-updated highest bid and sees ErrBidTooLow
// rather than a silently dropped bid.
func (s *AuctionLifecycle) PlaceBid(auctionID string, bidder models.Address, amount decimal.Decimal) (models.Auction, error) {
	if bidder.IsZero() {
		return models.Auction{}, fmt.Errorf("lifecycle: bid from zero address: %w", markerrors.ErrBadAddress)
	}
	if !amount.IsPositive() {
		return models.Auction{}, fmt.Errorf("lifecycle: bid amount must be positive: %w", markerrors.ErrInvalidAmount)
	}

	var snap models.Auction
	err := s.reg.WithAuction(auctionID, func(a *models.Auction) error {
		if a.Ended || !s.clock.Now().Before(a.EndTime) {
			return fmt.Errorf("lifecycle: auction %s: %w", auctionID, markerrors.ErrNotActive)
		}
		if bidder == a.Seller {
			return fmt.Errorf("lifecycle: auction %s: %w", auctionID, markerrors.ErrSelfBid)
		}
		if a.HasBids() {
			if amount.Cmp(a.HighestBid) <= 0 {
				return fmt.Errorf("lifecycle: auction %s: bid %s <= highest %s: %w",
					auctionID, amount, a.HighestBid, markerrors.ErrBidTooLow)
			}
		} else if amount.Cmp(a.StartingPrice) < 0 {
			return fmt.Errorf("lifecycle: auction %s: bid %s < starting price %s: %w",
				auctionID, amount, a.StartingPrice, markerrors.ErrBidTooLow)
		}

		s.ledger.RecordBid(auctionID, bidder, amount)
		a.HighestBid = amount
		a.HighestBidder = bidder
		snap = *a

		s.feed.Publish(events.BidPlaced{AuctionID: auctionID, Bidder: bidder, Amount: amount})
		return nil
	})
	if err != nil {
		return models.Auction{}, err
	}

	utils.Info("bid placed", map[string]any{
		"auction_id": auctionID,
		"bidder":     string(bidder),
		"amount":     amount.String(),
	})
	return snap, nil
}

// EndAuction settles an expired auction. Callable by anyone; the first
// caller to win the per-auction lock performs the transfer, all later
// callers get ErrAlreadySettled regardless of how many race.
func (s *AuctionLifecycle) EndAuction(auctionID string, caller models.Address) (models.Auction, error) {
	return s.settle(auctionID, caller, false)
}

// EndAuctionEarly lets the seller accept the current high bid before the
// deadline. Settlement semantics are identical to EndAuction.
func (s *AuctionLifecycle) EndAuctionEarly(auctionID string, caller models.Address) (models.Auction, error) {
	return s.settle(auctionID, caller, true)
}

func (s *AuctionLifecycle) settle(auctionID string, caller models.Address, early bool) (models.Auction, error) {
	if caller.IsZero() {
		return models.Auction{}, fmt.Errorf("lifecycle: settle with zero address: %w", markerrors.ErrBadAddress)
	}

	var snap models.Auction
	err := s.reg.WithAuction(auctionID, func(a *models.Auction) error {
		if a.Ended {
			return fmt.Errorf("lifecycle: auction %s: %w", auctionID, markerrors.ErrAlreadySettled)
		}
		if early {
			if caller != a.Seller {
				return fmt.Errorf("lifecycle: auction %s: only seller may end early: %w", auctionID, markerrors.ErrNotOwner)
			}
		} else if s.clock.Now().Before(a.EndTime) {
			return fmt.Errorf("lifecycle: auction %s: %w", auctionID, markerrors.ErrNotExpired)
		}

		amount, winner := s.ledger.Settle(auctionID)
		if !winner.IsZero() {
			if err := s.reg.UpdateNFT(a.TokenID, func(nft *models.NFT) error {
				nft.Owner = winner
				nft.ForSale = false
				return nil
			}); err != nil {
				return err
			}
		}
		// no bids: token stays with the seller, no funds move

		a.Ended = true
		snap = *a
		s.reg.ClearActive(a.TokenID)

		s.feed.Publish(events.AuctionEnded{
			AuctionID: auctionID,
			TokenID:   a.TokenID,
			Winner:    winner,
			Amount:    amount,
		})
		utils.Info("auction settled", map[string]any{
			"auction_id": auctionID,
			"winner":     string(winner),
			"amount":     amount.String(),
			"early":      early,
		})
		return nil
	})
	if err != nil {
		return models.Auction{}, err
	}
	return snap, nil
}

// Withdraw pays out the caller's full pending return for the auction and
// zeroes the entry. A repeat call is a clean ErrNothingToWithdraw; two
// concurrent calls cannot both drain the same balance.
func (s *AuctionLifecycle) Withdraw(auctionID string, caller models.Address) (decimal.Decimal, error) {
	if caller.IsZero() {
		return decimal.Zero, fmt.Errorf("lifecycle: withdraw with zero address: %w", markerrors.ErrBadAddress)
	}
	if _, err := s.reg.Auction(auctionID); err != nil {
		return decimal.Zero, err
	}

	amount, err := s.ledger.TakePending(auctionID, caller)
	if err != nil {
		return decimal.Zero, err
	}

	utils.Info("pending return withdrawn", map[string]any{
		"auction_id": auctionID,
		"bidder":     string(caller),
		"amount":     amount.String(),
	})
	return amount, nil
}

// ActiveAuctions returns the authoritative unsettled auction snapshots.
func (s *AuctionLifecycle) ActiveAuctions() []models.Auction {
	return s.reg.ActiveAuctions()
}

// AllNFTs returns the authoritative token records.
func (s *AuctionLifecycle) AllNFTs() []models.NFT {
	return s.reg.AllNFTs()
}

// TimeLeft returns whole seconds remaining before the deadline, zero at
// or past it.
func (s *AuctionLifecycle) TimeLeft(auctionID string) (int64, error) {
	left, err := s.reg.TimeLeft(auctionID)
	if err != nil {
		return 0, err
	}
	return int64(left / time.Second), nil
}

// PendingReturn returns the withdrawable balance for bidder on the
// auction.
func (s *AuctionLifecycle) PendingReturn(auctionID string, bidder models.Address) (decimal.Decimal, error) {
	if _, err := s.reg.Auction(auctionID); err != nil {
		return decimal.Zero, err
	}
	return s.ledger.PendingOf(auctionID, bidder), nil
}
