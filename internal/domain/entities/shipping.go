package entities

// ShippingOption is one candidate returned by the rate calculator.
// Options carrying a provider-side error are filtered out before display.
// Selections are session-scoped and never persisted.

type ShippingOption struct {
	ID           int     `json:"id"`
	Carrier      string  `json:"carrier"`
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"delivery_days"`
	Error        string  `json:"error,omitempty"`
}

func (s ShippingOption) HasError() bool {
	return s.Error != ""
}

// FilterValidOptions drops error-flagged options, preserving order.
func FilterValidOptions(options []ShippingOption) []ShippingOption {
	ok := make([]ShippingOption, 0, len(options))
	for _, o := range options {
		if !o.HasError() {
			ok = append(ok, o)
		}
	}
	return ok
}
