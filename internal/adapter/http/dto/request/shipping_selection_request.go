package request

// ShippingSelectionRequest picks one of the previously quoted options.

type ShippingSelectionRequest struct {
	OptionID int `json:"option_id"`
}
