package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loja_xpto/internal/adapter/http/handlers/mocks"
	"loja_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCheckoutRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/checkout", h.GetStatus)
	r.POST("/v1/checkout", h.Checkout)
	r.POST("/v1/checkout/regenerate", h.Regenerate)
	r.DELETE("/v1/checkout/pending", h.DiscardPending)
	r.DELETE("/v1/checkout/session", h.CloseSession)
	return r
}

func TestCheckoutHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockISessionManager(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(mgr))

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockISessionManager(ctrl)
		session := mocks.NewMockICheckoutSession(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(mgr))

		mgr.EXPECT().Enter(gomock.Any(), "tok-1").Return(session)
		session.EXPECT().Status().Return(usecase.SessionStatus{
			State:          usecase.StatePolling,
			WaitingPayment: true,
			OrderID:        "o1",
			Subtotal:       25,
			GrandTotal:     32.5,
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout", nil)
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
		if body["state"] != "polling" || body["waiting_payment"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockISessionManager(ctrl)
		session := mocks.NewMockICheckoutSession(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(mgr))

		mgr.EXPECT().Enter(gomock.Any(), "tok-1").Return(session)
		session.EXPECT().Checkout(gomock.Any()).Return(usecase.CheckoutResult{
			OrderID:      "o1",
			Total:        32.5,
			PreferenceID: "pref-1",
			InitPoint:    "https://mp/init",
			OpenedNewTab: false,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", nil)
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
		if body["order_id"] != "o1" || body["init_point"] != "https://mp/init" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("empty cart maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockISessionManager(ctrl)
		session := mocks.NewMockICheckoutSession(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(mgr))

		mgr.EXPECT().Enter(gomock.Any(), "tok-1").Return(session)
		session.EXPECT().Checkout(gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrEmptyCart)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("in-flight checkout maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockISessionManager(ctrl)
		session := mocks.NewMockICheckoutSession(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(mgr))

		mgr.EXPECT().Enter(gomock.Any(), "tok-1").Return(session)
		session.EXPECT().Checkout(gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrCheckoutInFlight)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_Regenerate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no pending order maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mgr := mocks.NewMockISessionManager(ctrl)
		session := mocks.NewMockICheckoutSession(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(mgr))

		mgr.EXPECT().Enter(gomock.Any(), "tok-1").Return(session)
		session.EXPECT().Regenerate(gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrNoPendingOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/regenerate", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_DiscardPending(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mgr := mocks.NewMockISessionManager(ctrl)
	session := mocks.NewMockICheckoutSession(ctrl)
	r := newCheckoutRouter(NewCheckoutHandler(mgr))

	mgr.EXPECT().Enter(gomock.Any(), "tok-1").Return(session)
	session.EXPECT().DiscardPending(gomock.Any())

	req := httptest.NewRequest(http.MethodDelete, "/v1/checkout/pending", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestCheckoutHandler_CloseSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mgr := mocks.NewMockISessionManager(ctrl)
	r := newCheckoutRouter(NewCheckoutHandler(mgr))

	mgr.EXPECT().Exit("tok-1")

	req := httptest.NewRequest(http.MethodDelete, "/v1/checkout/session", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
