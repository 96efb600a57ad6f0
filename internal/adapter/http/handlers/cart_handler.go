package handlers

import (
	"log"
	"net/http"

	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the cart view state backing the checkout page.

type CartHandler struct {
	sessions usecase.ISessionManager
}

func NewCartHandler(sessions usecase.ISessionManager) *CartHandler {
	return &CartHandler{sessions: sessions}
}

// GetCart refreshes the cart from the store and returns the view state.
func (h *CartHandler) GetCart(c *gin.Context) {
	session, ok := enterSession(c, h.sessions)
	if !ok {
		return
	}

	items, err := session.LoadCart(c.Request.Context())
	if err != nil {
		log.Printf("[cart][handler] cart load failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(items))
}

// DecrementItem lowers the quantity of one cart line by one and returns the
// refreshed view state.
func (h *CartHandler) DecrementItem(c *gin.Context) {
	session, ok := enterSession(c, h.sessions)
	if !ok {
		return
	}

	productID := c.Param("product_id")
	log.Printf("[cart][handler] decrement start product_id=%s", productID)
	if err := session.DecrementItem(c.Request.Context(), productID); err != nil {
		log.Printf("[cart][handler] decrement failed product_id=%s err=%v", productID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[cart][handler] decrement success product_id=%s", productID)

	c.JSON(http.StatusOK, response.FromCart(session.Status().Items))
}
