package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nft-auction-house/internal/events"
	"nft-auction-house/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// closeNotifyRecorder adds the http.CloseNotifier method gin's Stream
// requires on entry; httptest.ResponseRecorder does not implement it.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool { return r.closed }

// startEventStream serves GET /events in the background and returns the
// recorder plus a channel closed when the handler returns.
func startEventStream(t *testing.T, feed *events.Feed, req *http.Request) (*httptest.ResponseRecorder, chan struct{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/events", EventStreamHandler(feed))
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		router.ServeHTTP(&closeNotifyRecorder{ResponseRecorder: w, closed: make(chan bool)}, req)
	}()

	// wait for the handler's subscription before the test proceeds
	require.Eventually(t, func() bool {
		return feed.SubscriberCount() == 1
	}, time.Second, 5*time.Millisecond)
	return w, done
}

func TestEventStreamHandler_WritesPublishedEvents(t *testing.T) {
	feed := events.NewFeed(8)
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	w, done := startEventStream(t, feed, req)

	feed.Publish(events.NFTMinted{
		TokenID: 1,
		Owner:   models.Address("0x1111111111111111111111111111111111111111"),
	})

	// buffered events are drained before the close is observed, so the
	// handler writes the event and then stops
	feed.DropSubscribers()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not stop when the feed closed its channel")
	}

	body := w.Body.String()
	require.Contains(t, body, "event:"+events.KindNFTMinted)
	require.Contains(t, body, `"token_id":1`)
}

func TestEventStreamHandler_UnsubscribesOnClientDisconnect(t *testing.T) {
	feed := events.NewFeed(8)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	_, done := startEventStream(t, feed, req)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not stop on client disconnect")
	}
	require.Equal(t, 0, feed.SubscriberCount(), "subscription must not leak after disconnect")
}
