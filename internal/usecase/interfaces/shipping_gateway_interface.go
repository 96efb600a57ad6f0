package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IShippingGateway abstracts the third-party rate calculator. Returned
// options may carry per-option errors; callers filter before display.
type IShippingGateway interface {
	Quote(ctx context.Context, destZip string, parcel entities.ParcelDimensions) ([]entities.ShippingOption, error)
}
