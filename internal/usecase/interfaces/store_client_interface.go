package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IStoreClient abstracts the legacy store API for one authenticated user.
//
// The checkout session needs:
//   - order creation (the store clears the server-side cart as a side effect)
//   - the order list, both for status polling and for discovering the
//     latest pending order
//   - cart reads and line decrements
//   - the profile, whose CEP is the default shipping destination

type IStoreClient interface {
	CreateOrder(ctx context.Context) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	FetchCart(ctx context.Context) ([]entities.CartItem, error)
	DecrementItem(ctx context.Context, productID string) error
	GetUser(ctx context.Context) (entities.User, error)
}

// IStoreClientFactory binds a client to the caller's bearer token.
type IStoreClientFactory interface {
	WithToken(token string) IStoreClient
}
