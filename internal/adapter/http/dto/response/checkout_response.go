package response

import (
	"loja_xpto/internal/usecase"
)

type CheckoutResponse struct {
	OrderID      string  `json:"order_id"`
	Total        float64 `json:"total"`
	PreferenceID string  `json:"preference_id"`
	InitPoint    string  `json:"init_point"`
	OpenedNewTab bool    `json:"opened_new_tab"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		OrderID:      r.OrderID,
		Total:        r.Total,
		PreferenceID: r.PreferenceID,
		InitPoint:    r.InitPoint,
		OpenedNewTab: r.OpenedNewTab,
	}
}
