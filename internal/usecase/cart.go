package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"loja_xpto/internal/domain/entities"
)

// LoadCart refreshes the session's cart view from the store API. The
// fetched snapshot replaces the local one; the store is authoritative for
// everything except the optimistic clear right after order creation.
func (s *CheckoutSession) LoadCart(ctx context.Context) ([]entities.CartItem, error) {
	items, err := s.store.FetchCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	log.Printf("[cart][usecase] cart loaded session=%s lines=%d", s.id, len(items))
	return items, nil
}

// DecrementItem lowers one cart line by one and reloads the cart. While a
// decrement for a line is in flight, further decrements on that same line
// are rejected so a rapid double-click cannot fire twice.
func (s *CheckoutSession) DecrementItem(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ErrInvalidProductID
	}

	s.mu.Lock()
	if s.busy[productID] {
		s.mu.Unlock()
		return ErrDecrementInFlight
	}
	s.busy[productID] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.busy, productID)
		s.mu.Unlock()
	}()

	log.Printf("[cart][usecase] decrement start session=%s product_id=%s", s.id, productID)
	if err := s.store.DecrementItem(ctx, productID); err != nil {
		log.Printf("[cart][usecase] decrement failed session=%s product_id=%s err=%v", s.id, productID, err)
		return fmt.Errorf("decrement item: %w", err)
	}

	if _, err := s.LoadCart(ctx); err != nil {
		// The decrement itself went through; the stale view corrects on
		// the next fetch.
		log.Printf("[cart][usecase] cart reload after decrement failed session=%s err=%v", s.id, err)
	}
	return nil
}
