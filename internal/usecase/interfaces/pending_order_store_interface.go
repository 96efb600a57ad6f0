package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IPendingOrderStore persists the single in-flight order pointer per user.
//
// Contract: one slot per user, last write wins. Operations never fail from
// the caller's point of view: storage trouble and corrupt slots are
// swallowed (logged by implementations) and read back as absent.
type IPendingOrderStore interface {
	Save(ctx context.Context, userID string, rec entities.PendingOrder)
	Read(ctx context.Context, userID string) (entities.PendingOrder, bool)
	Clear(ctx context.Context, userID string)
}
