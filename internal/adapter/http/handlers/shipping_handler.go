package handlers

import (
	"log"
	"net/http"

	request "loja_xpto/internal/adapter/http/dto/request"
	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// ShippingHandler quotes carrier options and records the user's selection.

type ShippingHandler struct {
	sessions usecase.ISessionManager
}

func NewShippingHandler(sessions usecase.ISessionManager) *ShippingHandler {
	return &ShippingHandler{sessions: sessions}
}

// Quote returns the valid carrier options for the current cart. Options the
// calculator flags with an error never reach the response.
func (h *ShippingHandler) Quote(c *gin.Context) {
	session, ok := enterSession(c, h.sessions)
	if !ok {
		return
	}

	var req request.ShippingQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		log.Printf("[shipping][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[shipping][handler] quote start destination_zip=%s", req.DestinationZip)
	options, err := session.QuoteShipping(c.Request.Context(), req.DestinationZip)
	if err != nil {
		log.Printf("[shipping][handler] quote failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[shipping][handler] quote success options=%d", len(options))

	c.JSON(http.StatusOK, response.ShippingQuoteResponse{Options: response.FromShippingOptions(options)})
}

// Select records one of the quoted options as the shipping choice.
func (h *ShippingHandler) Select(c *gin.Context) {
	session, ok := enterSession(c, h.sessions)
	if !ok {
		return
	}

	var req request.ShippingSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[shipping][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := session.SelectShipping(req.OptionID); err != nil {
		log.Printf("[shipping][handler] selection failed option_id=%d err=%v", req.OptionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[shipping][handler] selection success option_id=%d", req.OptionID)

	c.JSON(http.StatusOK, response.FromSessionStatus(session.Status()))
}
