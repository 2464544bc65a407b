package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"nft-auction-house/internal/clock"
	"nft-auction-house/internal/events"
	"nft-auction-house/internal/ledger"
	"nft-auction-house/internal/lifecycle"
	"nft-auction-house/internal/registry"
	"nft-auction-house/internal/server"
	"nft-auction-house/internal/syncer"
	handler "nft-auction-house/services/market/handler"

	"github.com/gin-gonic/gin"
)

// TestApp is the fully wired marketplace stack over an in-memory
// registry, a controllable clock, and a running event synchronizer.
type TestApp struct {
	Router *gin.Engine
	Clock  *clock.FakeClock
	Feed   *events.Feed
	View   *syncer.ClientView
}

// SetupTestApp wires the full stack for integration testing. The
// synchronizer runs until the test ends.
func SetupTestApp(t *testing.T) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	feed := events.NewFeed(256)
	reg := registry.NewAuctionRegistry(ts)
	lgr := ledger.NewBidLedger()
	market := lifecycle.NewAuctionLifecycle(reg, lgr, ts, feed)

	view := syncer.NewClientView()
	es := syncer.NewEventSynchronizer(feed, market, view, 25*time.Millisecond, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		es.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	marketHandler := handler.NewMarketHandler(market, view)
	return &TestApp{
		Router: server.SetupRouter(marketHandler, feed),
		Clock:  ts,
		Feed:   feed,
		View:   view,
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	case nil:
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data extracts the "data" envelope from a parsed response.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
