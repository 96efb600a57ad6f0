package request

// ShippingQuoteRequest asks for carrier options to a destination zip. When
// the zip is omitted the registered address of the logged-in user is used.

type ShippingQuoteRequest struct {
	DestinationZip string `json:"destination_zip"`
}
