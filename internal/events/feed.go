package events

import (
	"sync"

	"nft-auction-house/utils"
)

// Feed is the in-process append-only event broker. Delivery is
// best-effort: Publish never blocks, and an event that does not fit in a
// subscriber's buffer is dropped for that subscriber. Consumers that need
// guaranteed consistency must pair the feed with authoritative reloads.
type Feed struct {
	mu     sync.Mutex
	subs   map[uint64]*Subscription
	nextID uint64
	buffer int
}

// Subscription is one consumer's attachment to the feed. Receive on C
// until it is closed, then resubscribe.
type Subscription struct {
	C <-chan Event

	id     uint64
	ch     chan Event
	feed   *Feed
	closed bool
}

// NewFeed creates a feed whose subscribers buffer up to buffer events.
func NewFeed(buffer int) *Feed {
	if buffer <= 0 {
		buffer = 64
	}
	return &Feed{
		subs:   make(map[uint64]*Subscription),
		buffer: buffer,
	}
}

// Subscribe attaches a new consumer to the feed.
func (f *Feed) Subscribe() *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	ch := make(chan Event, f.buffer)
	sub := &Subscription{C: ch, id: f.nextID, ch: ch, feed: f}
	f.subs[sub.id] = sub
	return sub
}

// Publish fans ev out to every subscriber without blocking. Full
// subscribers lose the event; the drop is logged, not surfaced.
func (f *Feed) Publish(ev Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, sub := range f.subs {
		select {
		case sub.ch <- ev:
		default:
			utils.Warn("event dropped for slow subscriber", map[string]any{
				"kind":       ev.Kind(),
				"subscriber": sub.id,
			})
		}
	}
}

// SubscriberCount reports the number of live subscriptions.
func (f *Feed) SubscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// Close detaches the subscription and closes its channel. Safe to call
// more than once.
func (s *Subscription) Close() {
	s.feed.mu.Lock()
	defer s.feed.mu.Unlock()
	s.closeLocked()
}

func (s *Subscription) closeLocked() {
	if s.closed {
		return
	}
	s.closed = true
	delete(s.feed.subs, s.id)
	close(s.ch)
}

// DropSubscribers force-closes every live subscription, simulating loss
// of the push feed. Consumers see their channel close and reconnect.
func (f *Feed) DropSubscribers() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, sub := range f.subs {
		sub.closeLocked()
	}
}
