package entities

// CartItem is one line of the user's cart as served by the store API.
//
// The product snapshot is denormalized and refreshed on every cart fetch;
// it is never authoritative. Quantity defaults to 1 and the unit price
// falls back to the snapshot price; adapters apply those defaults while
// decoding so the rest of the code can trust the fields.

type CartItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice float64         `json:"unit_price"`
	Product   ProductSnapshot `json:"product"`
}

type ProductSnapshot struct {
	Name   string  `json:"name"`
	Image  string  `json:"image,omitempty"`
	Color  string  `json:"color,omitempty"`
	Model  string  `json:"model,omitempty"`
	Price  float64 `json:"price"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Weight float64 `json:"weight"`
}

// ParcelDimensions models the single stacked package quoted for shipping:
// heights and weights add up across items, the footprint is bounded by the
// largest item.

type ParcelDimensions struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Weight float64 `json:"weight"`
}

func (it CartItem) LineTotal() float64 {
	qty := it.Quantity
	if qty <= 0 {
		qty = 1
	}
	price := it.UnitPrice
	if price <= 0 {
		price = it.Product.Price
	}
	if price < 0 {
		price = 0
	}
	return price * float64(qty)
}

func Subtotal(items []CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

func ItemCount(items []CartItem) int {
	count := 0
	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		count += qty
	}
	return count
}

func ParcelFor(items []CartItem) ParcelDimensions {
	var dims ParcelDimensions
	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		dims.Height += it.Product.Height * float64(qty)
		dims.Weight += it.Product.Weight * float64(qty)
		if it.Product.Width > dims.Width {
			dims.Width = it.Product.Width
		}
		if it.Product.Length > dims.Length {
			dims.Length = it.Product.Length
		}
	}
	return dims
}
