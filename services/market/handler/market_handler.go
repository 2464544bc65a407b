package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	model "nft-auction-house/internal/models"
	"nft-auction-house/services/market/helpers"
	"nft-auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MarketServiceInterface is the command/authoritative-query surface the
// handlers drive. Implemented by lifecycle.AuctionLifecycle.
type MarketServiceInterface interface {
	MintNFT(owner model.Address, tokenURI string) (model.NFT, error)
	ListNFTForSale(tokenID uint64, seller model.Address, price decimal.Decimal) (model.NFT, error)
	BuyNFT(tokenID uint64, buyer model.Address) (model.NFT, error)
	CreateAuction(tokenID uint64, seller model.Address, startingPrice decimal.Decimal, duration time.Duration) (model.Auction, error)
	PlaceBid(auctionID string, bidder model.Address, amount decimal.Decimal) (model.Auction, error)
	EndAuction(auctionID string, caller model.Address) (model.Auction, error)
	EndAuctionEarly(auctionID string, caller model.Address) (model.Auction, error)
	Withdraw(auctionID string, caller model.Address) (decimal.Decimal, error)
	TimeLeft(auctionID string) (int64, error)
	PendingReturn(auctionID string, bidder model.Address) (decimal.Decimal, error)
}

// ViewReader is the read-cache surface serving the list queries.
type ViewReader interface {
	ActiveAuctions() []model.Auction
	AllNFTs() []model.NFT
	Stale() bool
}

type MarketHandler struct {
	service MarketServiceInterface
	view    ViewReader
}

func NewMarketHandler(service MarketServiceInterface, view ViewReader) *MarketHandler {
	return &MarketHandler{service: service, view: view}
}

func (h *MarketHandler) fail(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": request failed", ctx)
}

// MintNFTHandler handles POST /nfts
func (h *MarketHandler) MintNFTHandler(c *gin.Context) {
	var req helpers.MintNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "MintNFTHandler", err)
		return
	}

	owner, err := helpers.ParseAddressParam(req.Owner)
	if err != nil {
		h.fail(c, "MintNFTHandler", err, map[string]any{"owner": req.Owner})
		return
	}

	nft, err := h.service.MintNFT(owner, req.TokenURI)
	if err != nil {
		h.fail(c, "MintNFTHandler", err, map[string]any{"owner": req.Owner})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NFTToResponse(nft), "nft minted successfully")
	helpers.LogSuccess("MintNFTHandler", "nft minted successfully", map[string]any{
		"token_id": nft.TokenID,
		"owner":    string(nft.Owner),
	})
}

// ListNFTHandler handles POST /nfts/:token_id/list
func (h *MarketHandler) ListNFTHandler(c *gin.Context) {
	tokenID, ok := h.tokenIDParam(c, "ListNFTHandler")
	if !ok {
		return
	}

	var req helpers.ListNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ListNFTHandler", err)
		return
	}

	seller, err := helpers.ParseAddressParam(req.Seller)
	if err != nil {
		h.fail(c, "ListNFTHandler", err, map[string]any{"token_id": tokenID})
		return
	}
	price, err := helpers.ParseDisplayAmount(req.Price)
	if err != nil {
		h.fail(c, "ListNFTHandler", err, map[string]any{"token_id": tokenID})
		return
	}

	nft, err := h.service.ListNFTForSale(tokenID, seller, price)
	if err != nil {
		h.fail(c, "ListNFTHandler", err, map[string]any{"token_id": tokenID, "seller": req.Seller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NFTToResponse(nft), "nft listed for sale")
	helpers.LogSuccess("ListNFTHandler", "nft listed for sale", map[string]any{
		"token_id": tokenID,
		"seller":   string(seller),
		"price":    req.Price,
	})
}

// BuyNFTHandler handles POST /nfts/:token_id/buy
func (h *MarketHandler) BuyNFTHandler(c *gin.Context) {
	tokenID, ok := h.tokenIDParam(c, "BuyNFTHandler")
	if !ok {
		return
	}

	var req helpers.BuyNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuyNFTHandler", err)
		return
	}

	buyer, err := helpers.ParseAddressParam(req.Buyer)
	if err != nil {
		h.fail(c, "BuyNFTHandler", err, map[string]any{"token_id": tokenID})
		return
	}

	nft, err := h.service.BuyNFT(tokenID, buyer)
	if err != nil {
		h.fail(c, "BuyNFTHandler", err, map[string]any{"token_id": tokenID, "buyer": req.Buyer})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NFTToResponse(nft), "nft purchased successfully")
	helpers.LogSuccess("BuyNFTHandler", "nft purchased successfully", map[string]any{
		"token_id": tokenID,
		"buyer":    string(buyer),
	})
}

// GetAllNFTsHandler handles GET /nfts, served from the read cache.
func (h *MarketHandler) GetAllNFTsHandler(c *gin.Context) {
	nfts := h.view.AllNFTs()
	out := make([]helpers.NFTResponse, 0, len(nfts))
	for _, nft := range nfts {
		out = append(out, helpers.NFTToResponse(nft))
	}
	utils.JSONResponse(c, http.StatusOK, out, "nfts retrieved successfully")
}

// CreateAuctionHandler handles POST /auctions
func (h *MarketHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	seller, err := helpers.ParseAddressParam(req.Seller)
	if err != nil {
		h.fail(c, "CreateAuctionHandler", err, map[string]any{"token_id": req.TokenID})
		return
	}
	startingPrice, err := helpers.ParseDisplayAmount(req.StartingPrice)
	if err != nil {
		h.fail(c, "CreateAuctionHandler", err, map[string]any{"token_id": req.TokenID})
		return
	}

	a, err := h.service.CreateAuction(req.TokenID, seller, startingPrice, time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		h.fail(c, "CreateAuctionHandler", err, map[string]any{"token_id": req.TokenID, "seller": req.Seller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.AuctionToResponse(a), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": a.AuctionID,
		"token_id":   a.TokenID,
		"seller":     string(a.Seller),
	})
}

// GetActiveAuctionsHandler handles GET /auctions, served from the read cache.
func (h *MarketHandler) GetActiveAuctionsHandler(c *gin.Context) {
	auctions := h.view.ActiveAuctions()
	out := make([]helpers.AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, helpers.AuctionToResponse(a))
	}
	utils.JSONResponse(c, http.StatusOK, out, "active auctions retrieved successfully")
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bidder, err := helpers.ParseAddressParam(req.Bidder)
	if err != nil {
		h.fail(c, "PlaceBidHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	amount, err := helpers.ParseDisplayAmount(req.Amount)
	if err != nil {
		h.fail(c, "PlaceBidHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	a, err := h.service.PlaceBid(auctionID, bidder, amount)
	if err != nil {
		h.fail(c, "PlaceBidHandler", err, map[string]any{"auction_id": auctionID, "bidder": req.Bidder})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.AuctionToResponse(a), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id": auctionID,
		"bidder":     string(bidder),
		"amount":     req.Amount,
	})
}

// EndAuctionHandler handles POST /auctions/:auction_id/end
func (h *MarketHandler) EndAuctionHandler(c *gin.Context) {
	h.settle(c, "EndAuctionHandler", h.service.EndAuction)
}

// EndAuctionEarlyHandler handles POST /auctions/:auction_id/end-early
func (h *MarketHandler) EndAuctionEarlyHandler(c *gin.Context) {
	h.settle(c, "EndAuctionEarlyHandler", h.service.EndAuctionEarly)
}

func (h *MarketHandler) settle(c *gin.Context, handlerName string, op func(string, model.Address) (model.Auction, error)) {
	auctionID := c.Param("auction_id")

	var req helpers.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	caller, err := helpers.ParseAddressParam(req.Caller)
	if err != nil {
		h.fail(c, handlerName, err, map[string]any{"auction_id": auctionID})
		return
	}

	a, err := op(auctionID, caller)
	if err != nil {
		h.fail(c, handlerName, err, map[string]any{"auction_id": auctionID, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AuctionToResponse(a), "auction settled successfully")
	helpers.LogSuccess(handlerName, "auction settled successfully", map[string]any{
		"auction_id": auctionID,
		"winner":     string(a.HighestBidder),
	})
}

// WithdrawHandler handles POST /auctions/:auction_id/withdraw
func (h *MarketHandler) WithdrawHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WithdrawHandler", err)
		return
	}

	caller, err := helpers.ParseAddressParam(req.Caller)
	if err != nil {
		h.fail(c, "WithdrawHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	amount, err := h.service.Withdraw(auctionID, caller)
	if err != nil {
		h.fail(c, "WithdrawHandler", err, map[string]any{"auction_id": auctionID, "caller": req.Caller})
		return
	}

	resp := helpers.WithdrawResponse{
		AuctionID: auctionID,
		Caller:    string(caller),
		Amount:    helpers.FormatDisplayAmount(amount),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "pending return withdrawn successfully")
	helpers.LogSuccess("WithdrawHandler", "pending return withdrawn successfully", map[string]any{
		"auction_id": auctionID,
		"caller":     string(caller),
		"amount":     resp.Amount,
	})
}

// GetTimeLeftHandler handles GET /auctions/:auction_id/time-left
func (h *MarketHandler) GetTimeLeftHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	seconds, err := h.service.TimeLeft(auctionID)
	if err != nil {
		h.fail(c, "GetTimeLeftHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := helpers.TimeLeftResponse{AuctionID: auctionID, Seconds: seconds}
	utils.JSONResponse(c, http.StatusOK, resp, "time left retrieved successfully")
}

// GetPendingReturnHandler handles GET /auctions/:auction_id/returns/:address
func (h *MarketHandler) GetPendingReturnHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bidder, err := helpers.ParseAddressParam(c.Param("address"))
	if err != nil {
		h.fail(c, "GetPendingReturnHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	amount, err := h.service.PendingReturn(auctionID, bidder)
	if err != nil {
		h.fail(c, "GetPendingReturnHandler", err, map[string]any{"auction_id": auctionID, "bidder": string(bidder)})
		return
	}

	resp := helpers.PendingReturnResponse{
		AuctionID: auctionID,
		Bidder:    string(bidder),
		Amount:    helpers.FormatDisplayAmount(amount),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "pending return retrieved successfully")
}

// HealthHandler handles GET /healthz and reports cache freshness.
func (h *MarketHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      http.StatusOK,
		"cache_stale": h.view.Stale(),
	})
}

func (h *MarketHandler) tokenIDParam(c *gin.Context, handlerName string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("token_id"), 10, 64)
	if err != nil || id == 0 {
		helpers.HandleBindError(c, handlerName, fmt.Errorf("invalid token id %q", c.Param("token_id")))
		return 0, false
	}
	return id, true
}
