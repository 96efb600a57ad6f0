package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loja_xpto/internal/adapter/http/handlers/mocks"
	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newShippingRouter(h *ShippingHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/shipping/quote", h.Quote)
	r.PUT("/v1/shipping/selection", h.Select)
	return r
}

func TestShippingHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockISessionManager(ctrl)
		session := mocks.NewMockICheckoutSession(ctrl)
		r := newShippingRouter(NewShippingHandler(mgr))

		mgr.EXPECT().Enter(gomock.Any(), "tok-1").Return(session)
		session.EXPECT().QuoteShipping(gomock.Any(), "01001-000").Return([]entities.ShippingOption{
			{ID: 1, Carrier: "Correios", Price: 24.3, DeliveryDays: 7},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipping/quote", bytes.NewBufferString(`{"destination_zip":"01001-000"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Options []map[string]any `json:"options"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body.Options) != 1 || body.Options[0]["carrier"] != "Correios" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("empty body uses the profile zip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockISessionManager(ctrl)
		session := mocks.NewMockICheckoutSession(ctrl)
		r := newShippingRouter(NewShippingHandler(mgr))

		mgr.EXPECT().Enter(gomock.Any(), "tok-1").Return(session)
		session.EXPECT().QuoteShipping(gomock.Any(), "").Return(nil, usecase.ErrMissingDestinationZip)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipping/quote", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestShippingHandler_Select(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockISessionManager(ctrl)
		session := mocks.NewMockICheckoutSession(ctrl)
		r := newShippingRouter(NewShippingHandler(mgr))

		mgr.EXPECT().Enter(gomock.Any(), "tok-1").Return(session)

		req := httptest.NewRequest(http.MethodPut, "/v1/shipping/selection", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown option maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockISessionManager(ctrl)
		session := mocks.NewMockICheckoutSession(ctrl)
		r := newShippingRouter(NewShippingHandler(mgr))

		mgr.EXPECT().Enter(gomock.Any(), "tok-1").Return(session)
		session.EXPECT().SelectShipping(99).Return(usecase.ErrUnknownShippingOption)

		req := httptest.NewRequest(http.MethodPut, "/v1/shipping/selection", bytes.NewBufferString(`{"option_id":99}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockISessionManager(ctrl)
		session := mocks.NewMockICheckoutSession(ctrl)
		r := newShippingRouter(NewShippingHandler(mgr))

		mgr.EXPECT().Enter(gomock.Any(), "tok-1").Return(session)
		session.EXPECT().SelectShipping(1).Return(nil)
		session.EXPECT().Status().Return(usecase.SessionStatus{
			State:         usecase.StateIdle,
			Subtotal:      25,
			ShippingPrice: 24.3,
			GrandTotal:    49.3,
		})

		req := httptest.NewRequest(http.MethodPut, "/v1/shipping/selection", bytes.NewBufferString(`{"option_id":1}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["grand_total"] != 49.3 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
