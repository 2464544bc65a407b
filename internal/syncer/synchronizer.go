package syncer

import (
	"context"
	"time"

	"nft-auction-house/internal/events"
	"nft-auction-house/internal/models"
	"nft-auction-house/utils"
)

// Source is the authoritative query side the synchronizer reloads from.
type Source interface {
	ActiveAuctions() []models.Auction
	AllNFTs() []models.NFT
}

// EventSynchronizer keeps a ClientView consistent with authoritative
// state. Two independent refresh triggers converge on the same reload
// routine: a full reload on every (re)connect of the push feed, and a
// fixed-interval reload that runs regardless of event delivery, because
// push delivery is best-effort and may drop events. Feed loss is never a
// fatal error; the view is marked stale and the synchronizer reconnects
// after a fixed backoff.
type EventSynchronizer struct {
	feed    *events.Feed
	source  Source
	view    *ClientView
	resync  time.Duration
	backoff time.Duration
}

// NewEventSynchronizer wires a synchronizer over the feed, the
// authoritative source, and the view it maintains.
func NewEventSynchronizer(feed *events.Feed, source Source, view *ClientView, resync, backoff time.Duration) *EventSynchronizer {
	if resync <= 0 {
		resync = 30 * time.Second
	}
	if backoff <= 0 {
		backoff = 3 * time.Second
	}
	return &EventSynchronizer{
		feed:    feed,
		source:  source,
		view:    view,
		resync:  resync,
		backoff: backoff,
	}
}

// Run subscribes, reloads, and applies events until ctx is cancelled.
// Exactly one subscription is live at a time; a lost feed is replaced by
// a fresh subscription after the backoff, never stacked on the old one.
func (s *EventSynchronizer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.resync)
	defer ticker.Stop()

	for {
		sub := s.feed.Subscribe()
		s.reload()
		utils.Info("event feed connected", map[string]any{"resync_interval": s.resync.String()})

		if !s.consume(ctx, sub, ticker.C) {
			sub.Close()
			return
		}

		// feed lost: flag the cache, back off, resubscribe
		s.view.MarkStale()
		utils.Warn("event feed lost, reconnecting", map[string]any{"backoff": s.backoff.String()})

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.backoff):
		}
	}
}

// consume applies events until the subscription closes (returns true) or
// ctx is cancelled (returns false).
func (s *EventSynchronizer) consume(ctx context.Context, sub *events.Subscription, resync <-chan time.Time) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-sub.C:
			if !ok {
				return true
			}
			s.view.Apply(ev)
		case <-resync:
			// correctness backstop against missed events
			s.reload()
		}
	}
}

func (s *EventSynchronizer) reload() {
	s.view.Replace(s.source.ActiveAuctions(), s.source.AllNFTs())
}
