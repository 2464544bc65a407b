package ledger

import (
	"fmt"
	"sync"

	"nft-auction-house/internal/markerrors"
	"nft-auction-house/internal/models"

	"github.com/shopspring/decimal"
)

// BidLedger is the pure accounting record for auction funds: the current
// highest (amount, bidder) per auction and the refundable balance per
// (auction, bidder). It has no notion of time; the lifecycle decides when
// a mutation is allowed, the ledger only keeps the books straight.
//
// Funds model: an accepted bid replaces the bidder's total commitment to
// the auction. Any pending balance the bidder holds, plus their locked
// amount if they are already the highest bidder, is folded into the new
// bid instead of being escrowed twice. A pending balance therefore only
// grows by being outbid and only shrinks by that bidder's own withdrawal.
type BidLedger struct {
	mu    sync.Mutex
	funds map[string]*auctionFunds // key: auctionID
}

type auctionFunds struct {
	highestAmt    decimal.Decimal
	highestBidder models.Address
	pending       map[models.Address]decimal.Decimal
	deposited     decimal.Decimal // net funds ever taken in for this auction
	paidOut       decimal.Decimal // amount released to the seller at settlement
}

// NewBidLedger creates an empty ledger.
func NewBidLedger() *BidLedger {
	return &BidLedger{funds: make(map[string]*auctionFunds)}
}

func (l *BidLedger) auction(auctionID string) *auctionFunds {
	f, ok := l.funds[auctionID]
	if !ok {
		f = &auctionFunds{pending: make(map[models.Address]decimal.Decimal)}
		l.funds[auctionID] = f
	}
	return f
}

// RecordBid installs bidder as the new highest at amount. The previous
// highest bidder's locked amount moves into their pending balance
// (additive across repeated outbids). Returns the net new deposit the
// bid brought in after folding the bidder's prior commitment.
//
// The caller is responsible for ordering and validation; RecordBid does
// not check amount against the current highest.
func (l *BidLedger) RecordBid(auctionID string, bidder models.Address, amount decimal.Decimal) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	f := l.auction(auctionID)

	consumed := decimal.Zero
	if prior, ok := f.pending[bidder]; ok {
		consumed = consumed.Add(prior)
		delete(f.pending, bidder)
	}
	if f.highestBidder == bidder {
		// raising own highest bid: locked funds roll into the new bid
		consumed = consumed.Add(f.highestAmt)
	} else if !f.highestBidder.IsZero() {
		f.pending[f.highestBidder] = f.pending[f.highestBidder].Add(f.highestAmt)
	}

	f.highestAmt = amount
	f.highestBidder = bidder

	net := amount.Sub(consumed)
	f.deposited = f.deposited.Add(net)
	return net
}

// CurrentHighest returns the current highest amount and bidder for the
// auction. A never-bid auction reports zero and the zero address.
func (l *BidLedger) CurrentHighest(auctionID string) (decimal.Decimal, models.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, ok := l.funds[auctionID]
	if !ok {
		return decimal.Zero, models.ZeroAddress
	}
	return f.highestAmt, f.highestBidder
}

// PendingOf returns the refundable balance of bidder for the auction.
func (l *BidLedger) PendingOf(auctionID string, bidder models.Address) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, ok := l.funds[auctionID]
	if !ok {
		return decimal.Zero
	}
	return f.pending[bidder]
}

// TakePending atomically reads and zeroes bidder's pending balance,
// returning the amount to pay out. Concurrent calls from the same bidder
// cannot both succeed against the same balance: the second caller sees a
// zero entry and gets ErrNothingToWithdraw.
func (l *BidLedger) TakePending(auctionID string, bidder models.Address) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, ok := l.funds[auctionID]
	if !ok {
		return decimal.Zero, fmt.Errorf("ledger: auction %s bidder %s: %w", auctionID, bidder, markerrors.ErrNothingToWithdraw)
	}
	amt, ok := f.pending[bidder]
	if !ok || amt.IsZero() {
		return decimal.Zero, fmt.Errorf("ledger: auction %s bidder %s: %w", auctionID, bidder, markerrors.ErrNothingToWithdraw)
	}
	delete(f.pending, bidder)
	f.deposited = f.deposited.Sub(amt)
	return amt, nil
}

// Settle releases the highest bid to the seller side and returns the paid
// amount and the winning bidder. A never-bid auction settles at zero.
// Exactly-once is enforced by the lifecycle; Settle records the payout.
func (l *BidLedger) Settle(auctionID string) (decimal.Decimal, models.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, ok := l.funds[auctionID]
	if !ok {
		return decimal.Zero, models.ZeroAddress
	}
	amt, winner := f.highestAmt, f.highestBidder
	f.paidOut = f.paidOut.Add(amt)
	f.highestAmt = decimal.Zero
	f.highestBidder = models.ZeroAddress
	return amt, winner
}

// DepositedTotal returns the net funds currently attributable to the
// auction. Before settlement it equals the sum of pending balances plus
// the locked highest bid; after settlement, pending balances plus the
// amount paid out.
func (l *BidLedger) DepositedTotal(auctionID string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, ok := l.funds[auctionID]
	if !ok {
		return decimal.Zero
	}
	return f.deposited
}

// PendingSum returns the sum of all pending balances for the auction.
func (l *BidLedger) PendingSum(auctionID string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, ok := l.funds[auctionID]
	if !ok {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, amt := range f.pending {
		sum = sum.Add(amt)
	}
	return sum
}

// PaidOut returns the amount released at settlement, zero before it.
func (l *BidLedger) PaidOut(auctionID string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, ok := l.funds[auctionID]
	if !ok {
		return decimal.Zero
	}
	return f.paidOut
}
