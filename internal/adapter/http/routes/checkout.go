package routes

import (
	"loja_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathCart     = "/cart"
	PathShipping = "/shipping"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, cartHandler *handlers.CartHandler, shippingHandler *handlers.ShippingHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.GET("", checkoutHandler.GetStatus)
		checkout.POST("", checkoutHandler.Checkout)
		checkout.POST("/regenerate", checkoutHandler.Regenerate)
		checkout.DELETE("/pending", checkoutHandler.DiscardPending)
		checkout.DELETE("/session", checkoutHandler.CloseSession)
	}

	cart := rg.Group(PathCart)
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("/items/:product_id", cartHandler.DecrementItem)
	}

	shipping := rg.Group(PathShipping)
	{
		shipping.POST("/quote", shippingHandler.Quote)
		shipping.PUT("/selection", shippingHandler.Select)
	}
}
