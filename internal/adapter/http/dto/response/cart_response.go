package response

import (
	"loja_xpto/internal/domain/entities"
)

type CartItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Color     string  `json:"color,omitempty"`
	Model     string  `json:"model,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  float64            `json:"subtotal"`
}

func FromCartItems(items []entities.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Product.Name,
			Image:     it.Product.Image,
			Color:     it.Product.Color,
			Model:     it.Product.Model,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal(),
		})
	}
	return out
}

func FromCart(items []entities.CartItem) CartResponse {
	return CartResponse{
		Items:     FromCartItems(items),
		ItemCount: entities.ItemCount(items),
		Subtotal:  entities.Subtotal(items),
	}
}
