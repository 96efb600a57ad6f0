package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler drives the checkout flow of the session bound to the
// caller's bearer token.

type CheckoutHandler struct {
	sessions usecase.ISessionManager
}

func NewCheckoutHandler(sessions usecase.ISessionManager) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions}
}

// GetStatus returns the full checkout snapshot for the current session.
func (h *CheckoutHandler) GetStatus(c *gin.Context) {
	session, ok := enterSession(c, h.sessions)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromSessionStatus(session.Status()))
}

// Checkout places the order and creates the payment preference.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	session, ok := enterSession(c, h.sessions)
	if !ok {
		return
	}

	log.Printf("[checkout][handler] checkout start")
	result, err := session.Checkout(c.Request.Context())
	if err != nil {
		log.Printf("[checkout][handler] checkout failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] checkout success order_id=%s preference_id=%s", result.OrderID, result.PreferenceID)

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

// Regenerate creates a fresh payment link for the pending order without
// placing a new one.
func (h *CheckoutHandler) Regenerate(c *gin.Context) {
	session, ok := enterSession(c, h.sessions)
	if !ok {
		return
	}

	log.Printf("[checkout][handler] regenerate start")
	result, err := session.Regenerate(c.Request.Context())
	if err != nil {
		log.Printf("[checkout][handler] regenerate failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] regenerate success order_id=%s preference_id=%s", result.OrderID, result.PreferenceID)

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

// DiscardPending drops the local pending-order record. The order itself is
// untouched on the store side.
func (h *CheckoutHandler) DiscardPending(c *gin.Context) {
	session, ok := enterSession(c, h.sessions)
	if !ok {
		return
	}

	session.DiscardPending(c.Request.Context())
	log.Printf("[checkout][handler] pending record discarded")
	c.Status(http.StatusNoContent)
}

// CloseSession is the view-exit hook: tears down the session and cancels
// any confirmation poller still running.
func (h *CheckoutHandler) CloseSession(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		unauthorized(c)
		return
	}
	h.sessions.Exit(token)
	c.Status(http.StatusNoContent)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		token := strings.TrimSpace(parts[1])
		return token, token != ""
	}
	return header, true
}

func unauthorized(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func enterSession(c *gin.Context, sessions usecase.ISessionManager) (usecase.ICheckoutSession, bool) {
	token, ok := bearerToken(c)
	if !ok {
		unauthorized(c)
		return nil, false
	}
	return sessions.Enter(c.Request.Context(), token), true
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShippingNotSelected):
		return pkg.NewDomainErrorSimple("SHIPPING_NOT_SELECTED", "Select a shipping option before finishing the purchase", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutInFlight):
		return pkg.NewDomainErrorSimple("CHECKOUT_IN_FLIGHT", "A checkout is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrDecrementInFlight):
		return pkg.NewDomainErrorSimple("ITEM_UPDATE_IN_FLIGHT", "This item is already being updated", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPendingOrder):
		return pkg.NewDomainErrorSimple("NO_PENDING_ORDER", "No pending order to resume", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingDestinationZip):
		return pkg.NewDomainErrorSimple("MISSING_DESTINATION_ZIP", "Destination zip code not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownShippingOption):
		return pkg.NewDomainErrorSimple("UNKNOWN_SHIPPING_OPTION", "Unknown shipping option", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
