package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IPreferenceGateway abstracts the external payment provider (Mercado
// Pago). The total already includes shipping when a rate was selected.
type IPreferenceGateway interface {
	CreatePreference(ctx context.Context, orderID string, total float64) (entities.PaymentPreference, error)
}
