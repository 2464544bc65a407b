package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nft-auction-house/internal/markerrors"
	model "nft-auction-house/internal/models"
	"nft-auction-house/internal/syncer"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	sellerAddr = "0x1111111111111111111111111111111111111111"
	aliceAddr  = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s).Shift(18)
}

// perform runs a JSON request against a single-route router built for
// the handler under test.
func perform(t *testing.T, register func(*gin.Engine), method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	register(router)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketService(ctrl)
	h := NewMarketHandler(mockService, syncer.NewClientView())
	register := func(r *gin.Engine) { r.POST("/auctions/:auction_id/bids", h.PlaceBidHandler) }

	tests := []struct {
		name           string
		body           any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "valid_bid",
			body: map[string]any{"bidder": aliceAddr, "amount": "2.5"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("auc-1", model.Address(aliceAddr), amt("2.5")).
					Return(model.Auction{
						AuctionID:     "auc-1",
						HighestBid:    amt("2.5"),
						HighestBidder: model.Address(aliceAddr),
					}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing_fields",
			body:           map[string]any{"bidder": aliceAddr},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad_address",
			body:           map[string]any{"bidder": "not-an-address", "amount": "2.5"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad_amount",
			body:           map[string]any{"bidder": aliceAddr, "amount": "two"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bid_too_low",
			body: map[string]any{"bidder": aliceAddr, "amount": "0.5"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("auc-1", model.Address(aliceAddr), amt("0.5")).
					Return(model.Auction{}, markerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "auction_not_active",
			body: map[string]any{"bidder": aliceAddr, "amount": "2.5"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("auc-1", model.Address(aliceAddr), amt("2.5")).
					Return(model.Auction{}, markerrors.ErrNotActive)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unknown_auction",
			body: map[string]any{"bidder": aliceAddr, "amount": "2.5"},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("auc-1", model.Address(aliceAddr), amt("2.5")).
					Return(model.Auction{}, markerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			w := perform(t, register, http.MethodPost, "/auctions/auc-1/bids", tc.body)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestCreateAuctionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketService(ctrl)
	h := NewMarketHandler(mockService, syncer.NewClientView())
	register := func(r *gin.Engine) { r.POST("/auctions", h.CreateAuctionHandler) }

	t.Run("valid", func(t *testing.T) {
		mockService.EXPECT().
			CreateAuction(uint64(1), model.Address(sellerAddr), amt("1"), time.Hour).
			Return(model.Auction{AuctionID: "auc-1", TokenID: 1, Seller: model.Address(sellerAddr)}, nil)

		w := perform(t, register, http.MethodPost, "/auctions", map[string]any{
			"token_id":         1,
			"seller":           sellerAddr,
			"starting_price":   "1",
			"duration_seconds": 3600,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "auc-1", data["auction_id"])
	})

	t.Run("zero_duration_rejected_by_binding", func(t *testing.T) {
		w := perform(t, register, http.MethodPost, "/auctions", map[string]any{
			"token_id":         1,
			"seller":           sellerAddr,
			"starting_price":   "1",
			"duration_seconds": 0,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("token_busy", func(t *testing.T) {
		mockService.EXPECT().
			CreateAuction(uint64(1), model.Address(sellerAddr), amt("1"), time.Hour).
			Return(model.Auction{}, markerrors.ErrAlreadyOnAuction)

		w := perform(t, register, http.MethodPost, "/auctions", map[string]any{
			"token_id":         1,
			"seller":           sellerAddr,
			"starting_price":   "1",
			"duration_seconds": 3600,
		})
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("not_owner", func(t *testing.T) {
		mockService.EXPECT().
			CreateAuction(uint64(1), model.Address(aliceAddr), amt("1"), time.Hour).
			Return(model.Auction{}, markerrors.ErrNotOwner)

		w := perform(t, register, http.MethodPost, "/auctions", map[string]any{
			"token_id":         1,
			"seller":           aliceAddr,
			"starting_price":   "1",
			"duration_seconds": 3600,
		})
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestEndAuctionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketService(ctrl)
	h := NewMarketHandler(mockService, syncer.NewClientView())
	register := func(r *gin.Engine) {
		r.POST("/auctions/:auction_id/end", h.EndAuctionHandler)
		r.POST("/auctions/:auction_id/end-early", h.EndAuctionEarlyHandler)
	}
	body := map[string]any{"caller": aliceAddr}

	t.Run("settles", func(t *testing.T) {
		mockService.EXPECT().
			EndAuction("auc-1", model.Address(aliceAddr)).
			Return(model.Auction{AuctionID: "auc-1", Ended: true, HighestBidder: model.Address(aliceAddr)}, nil)

		w := perform(t, register, http.MethodPost, "/auctions/auc-1/end", body)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("already_settled", func(t *testing.T) {
		mockService.EXPECT().
			EndAuction("auc-1", model.Address(aliceAddr)).
			Return(model.Auction{}, markerrors.ErrAlreadySettled)

		w := perform(t, register, http.MethodPost, "/auctions/auc-1/end", body)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("not_expired", func(t *testing.T) {
		mockService.EXPECT().
			EndAuction("auc-1", model.Address(aliceAddr)).
			Return(model.Auction{}, markerrors.ErrNotExpired)

		w := perform(t, register, http.MethodPost, "/auctions/auc-1/end", body)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("early_settles", func(t *testing.T) {
		mockService.EXPECT().
			EndAuctionEarly("auc-1", model.Address(aliceAddr)).
			Return(model.Auction{AuctionID: "auc-1", Ended: true}, nil)

		w := perform(t, register, http.MethodPost, "/auctions/auc-1/end-early", body)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestWithdrawHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketService(ctrl)
	h := NewMarketHandler(mockService, syncer.NewClientView())
	register := func(r *gin.Engine) { r.POST("/auctions/:auction_id/withdraw", h.WithdrawHandler) }
	body := map[string]any{"caller": aliceAddr}

	t.Run("pays_out", func(t *testing.T) {
		mockService.EXPECT().
			Withdraw("auc-1", model.Address(aliceAddr)).
			Return(amt("1.5"), nil)

		w := perform(t, register, http.MethodPost, "/auctions/auc-1/withdraw", body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "1.5", data["amount"], "amount returned in display units")
	})

	t.Run("nothing_to_withdraw", func(t *testing.T) {
		mockService.EXPECT().
			Withdraw("auc-1", model.Address(aliceAddr)).
			Return(decimal.Zero, markerrors.ErrNothingToWithdraw)

		w := perform(t, register, http.MethodPost, "/auctions/auc-1/withdraw", body)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGetActiveAuctionsHandler_ServedFromView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	view := syncer.NewClientView()
	view.Replace([]model.Auction{{
		AuctionID:     "auc-1",
		TokenID:       1,
		Seller:        model.Address(sellerAddr),
		StartingPrice: amt("1"),
		HighestBid:    amt("2"),
		HighestBidder: model.Address(aliceAddr),
		EndTime:       time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
	}}, nil)

	// the list endpoints never touch the service
	h := NewMarketHandler(NewMockMarketService(ctrl), view)
	register := func(r *gin.Engine) { r.GET("/auctions", h.GetActiveAuctionsHandler) }

	w := perform(t, register, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]any)
	require.Len(t, data, 1)
	auction := data[0].(map[string]any)
	require.Equal(t, "auc-1", auction["auction_id"])
	require.Equal(t, "2", auction["highest_bid"], "amounts serialized in display units")
}

func TestGetPendingReturnHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketService(ctrl)
	h := NewMarketHandler(mockService, syncer.NewClientView())
	register := func(r *gin.Engine) {
		r.GET("/auctions/:auction_id/returns/:address", h.GetPendingReturnHandler)
	}

	t.Run("returns_balance", func(t *testing.T) {
		mockService.EXPECT().
			PendingReturn("auc-1", model.Address(aliceAddr)).
			Return(amt("2"), nil)

		w := perform(t, register, http.MethodGet, "/auctions/auc-1/returns/"+aliceAddr, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad_address", func(t *testing.T) {
		w := perform(t, register, http.MethodGet, "/auctions/auc-1/returns/oops", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthHandler_ReportsCacheStaleness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	view := syncer.NewClientView() // stale until first load
	h := NewMarketHandler(NewMockMarketService(ctrl), view)
	register := func(r *gin.Engine) { r.GET("/healthz", h.HealthHandler) }

	w := perform(t, register, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, true, resp["cache_stale"])

	view.Replace(nil, nil)
	w = perform(t, register, http.MethodGet, "/healthz", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, false, resp["cache_stale"])
}

func TestMintNFTHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockMarketService(ctrl)
	h := NewMarketHandler(mockService, syncer.NewClientView())
	register := func(r *gin.Engine) { r.POST("/nfts", h.MintNFTHandler) }

	t.Run("mints", func(t *testing.T) {
		mockService.EXPECT().
			MintNFT(model.Address(sellerAddr), "ipfs://meta").
			Return(model.NFT{TokenID: 1, Owner: model.Address(sellerAddr), TokenURI: "ipfs://meta"}, nil)

		w := perform(t, register, http.MethodPost, "/nfts", map[string]any{
			"owner":     sellerAddr,
			"token_uri": "ipfs://meta",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("mixed_case_owner_canonicalized", func(t *testing.T) {
		mockService.EXPECT().
			MintNFT(model.Address(aliceAddr), "").
			Return(model.NFT{TokenID: 2, Owner: model.Address(aliceAddr)}, nil)

		w := perform(t, register, http.MethodPost, "/nfts", map[string]any{
			"owner": "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing_owner", func(t *testing.T) {
		w := perform(t, register, http.MethodPost, "/nfts", map[string]any{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
