package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nft-auction-house/internal/clock"
	"nft-auction-house/internal/config"
	"nft-auction-house/internal/events"
	"nft-auction-house/internal/ledger"
	"nft-auction-house/internal/lifecycle"
	"nft-auction-house/internal/registry"
	"nft-auction-house/internal/server"
	"nft-auction-house/internal/syncer"
	handler "nft-auction-house/services/market/handler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ts := clock.SystemClock{}
	feed := events.NewFeed(cfg.FeedBuffer)
	reg := registry.NewAuctionRegistry(ts)
	lgr := ledger.NewBidLedger()
	market := lifecycle.NewAuctionLifecycle(reg, lgr, ts, feed)

	view := syncer.NewClientView()
	synchronizer := syncer.NewEventSynchronizer(feed, market, view, cfg.ResyncInterval, cfg.ReconnectBackoff)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go synchronizer.Run(ctx)

	marketHandler := handler.NewMarketHandler(market, view)
	router := server.SetupRouter(marketHandler, feed)

	fmt.Printf("Starting marketplace server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
