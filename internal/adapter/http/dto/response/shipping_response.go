package response

import (
	"loja_xpto/internal/domain/entities"
)

type ShippingOptionResponse struct {
	ID           int     `json:"id"`
	Carrier      string  `json:"carrier"`
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"delivery_days"`
}

type ShippingQuoteResponse struct {
	Options []ShippingOptionResponse `json:"options"`
}

func FromShippingOptions(options []entities.ShippingOption) []ShippingOptionResponse {
	if len(options) == 0 {
		return nil
	}
	out := make([]ShippingOptionResponse, 0, len(options))
	for _, o := range options {
		out = append(out, ShippingOptionResponse{
			ID:           o.ID,
			Carrier:      o.Carrier,
			Price:        o.Price,
			DeliveryDays: o.DeliveryDays,
		})
	}
	return out
}
