package server

import (
	"io"

	"nft-auction-house/internal/events"
	handler "nft-auction-house/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketHandler *handler.MarketHandler, feed *events.Feed) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	nfts := router.Group("/nfts")
	{
		nfts.POST("", marketHandler.MintNFTHandler)
		nfts.GET("", marketHandler.GetAllNFTsHandler)
		nfts.POST("/:token_id/list", marketHandler.ListNFTHandler)
		nfts.POST("/:token_id/buy", marketHandler.BuyNFTHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("", marketHandler.CreateAuctionHandler)
		auctions.GET("", marketHandler.GetActiveAuctionsHandler)
		auctions.POST("/:auction_id/bids", marketHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/end", marketHandler.EndAuctionHandler)
		auctions.POST("/:auction_id/end-early", marketHandler.EndAuctionEarlyHandler)
		auctions.POST("/:auction_id/withdraw", marketHandler.WithdrawHandler)
		auctions.GET("/:auction_id/time-left", marketHandler.GetTimeLeftHandler)
		auctions.GET("/:auction_id/returns/:address", marketHandler.GetPendingReturnHandler)
	}

	router.GET("/events", EventStreamHandler(feed))
	router.GET("/healthz", marketHandler.HealthHandler)

	return router
}

// EventStreamHandler pushes marketplace events to the client as
// server-sent events until the client disconnects.
func EventStreamHandler(feed *events.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub := feed.Subscribe()
		defer sub.Close()

		c.Stream(func(w io.Writer) bool {
			select {
			case ev, ok := <-sub.C:
				if !ok {
					return false
				}
				c.SSEvent(ev.Kind(), ev)
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}
