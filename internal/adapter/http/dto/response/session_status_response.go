package response

import (
	"loja_xpto/internal/usecase"
)

// SessionStatusResponse is the full checkout snapshot the frontend renders
// from: cart totals, shipping selection and where the payment flow stands.

type SessionStatusResponse struct {
	State           string                  `json:"state"`
	Message         string                  `json:"message,omitempty"`
	PollError       string                  `json:"poll_error,omitempty"`
	WaitingPayment  bool                    `json:"waiting_payment"`
	OrderID         string                  `json:"order_id,omitempty"`
	ApprovedOrderID string                  `json:"approved_order_id,omitempty"`
	ResumePending   *PendingOrderResponse   `json:"resume_pending,omitempty"`
	Items           []CartItemResponse      `json:"items"`
	ItemCount       int                     `json:"item_count"`
	Subtotal        float64                 `json:"subtotal"`
	ShippingPrice   float64                 `json:"shipping_price"`
	GrandTotal      float64                 `json:"grand_total"`
	ShippingOptions []ShippingOptionResponse `json:"shipping_options,omitempty"`
}

type PendingOrderResponse struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}

func FromSessionStatus(st usecase.SessionStatus) SessionStatusResponse {
	resp := SessionStatusResponse{
		State:           string(st.State),
		Message:         st.Message,
		PollError:       st.PollError,
		WaitingPayment:  st.WaitingPayment,
		OrderID:         st.OrderID,
		ApprovedOrderID: st.ApprovedOrderID,
		Items:           FromCartItems(st.Items),
		ItemCount:       st.ItemCount,
		Subtotal:        st.Subtotal,
		ShippingPrice:   st.ShippingPrice,
		GrandTotal:      st.GrandTotal,
		ShippingOptions: FromShippingOptions(st.ShippingOptions),
	}
	if st.ResumePending != nil {
		resp.ResumePending = &PendingOrderResponse{
			OrderID: st.ResumePending.ID,
			Total:   st.ResumePending.Total,
		}
	}
	return resp
}
