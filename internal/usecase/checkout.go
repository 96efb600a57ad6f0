package usecase

import (
	"context"
	"fmt"
	"log"

	"loja_xpto/internal/domain/entities"
)

// CheckoutResult is what a successful checkout or regenerate hands back to
// the caller: the payment link plus how it was delivered.

type CheckoutResult struct {
	OrderID      string  `json:"order_id"`
	Total        float64 `json:"total"`
	PreferenceID string  `json:"preference_id"`
	InitPoint    string  `json:"init_point"`
	OpenedNewTab bool    `json:"opened_new_tab"`
}

// Checkout runs the full flow: create the order, persist the pending
// pointer, create the payment preference for subtotal plus shipping,
// launch the link and start the confirmation poller.
//
// The pending pointer is saved right after order creation, before any call
// that can still fail, so a reload (or a preference failure) always leaves
// a resumable record behind.
func (s *CheckoutSession) Checkout(ctx context.Context) (CheckoutResult, error) {
	s.mu.Lock()
	switch s.state {
	case StateOrderCreating, StatePreferenceCreating:
		s.mu.Unlock()
		return CheckoutResult{}, ErrCheckoutInFlight
	}
	if len(s.items) == 0 {
		s.mu.Unlock()
		return CheckoutResult{}, ErrEmptyCart
	}
	if s.cfg.RequireShipping && s.selectedOption == nil {
		s.mu.Unlock()
		return CheckoutResult{}, ErrShippingNotSelected
	}
	subtotal := entities.Subtotal(s.items)
	shippingPrice := s.shippingPrice
	s.state = StateOrderCreating
	s.message = ""
	s.pollErr = ""
	s.mu.Unlock()

	log.Printf("[checkout][usecase] checkout start session=%s subtotal=%.2f shipping=%.2f", s.id, subtotal, shippingPrice)

	order, err := s.store.CreateOrder(ctx)
	if err != nil {
		log.Printf("[checkout][usecase] order creation failed session=%s err=%v", s.id, err)
		s.setFailure(StateIdle, "could not start the payment")
		return CheckoutResult{}, fmt.Errorf("create order: %w", err)
	}

	rec := entities.PendingOrder{ID: order.ID, Total: order.Total}
	if rec.Total <= 0 {
		rec.Total = subtotal
	}

	// Order creation empties the server-side cart; mirror that locally
	// instead of waiting for the next fetch.
	s.mu.Lock()
	s.orderID = order.ID
	s.items = nil
	s.state = StatePreferenceCreating
	s.mu.Unlock()

	s.pending.Save(ctx, s.userKey, rec)
	log.Printf("[checkout][usecase] order created session=%s order_id=%s total=%.2f", s.id, order.ID, rec.Total)

	grandTotal := subtotal + shippingPrice
	pref, err := s.prefs.CreatePreference(ctx, order.ID, grandTotal)
	if err != nil {
		log.Printf("[checkout][usecase] preference creation failed session=%s order_id=%s err=%v", s.id, order.ID, err)
		// The order exists and the record is saved; the user retries via
		// Regenerate without creating a second order.
		s.mu.Lock()
		s.state = StateIdle
		s.message = "could not generate the payment link; try generating it again"
		s.resume = &entities.PendingOrder{ID: rec.ID, Total: rec.Total}
		s.mu.Unlock()
		return CheckoutResult{}, fmt.Errorf("create preference: %w", err)
	}

	opened := s.launcher.Open(pref.InitPoint)
	s.startPolling(order.ID)

	log.Printf("[checkout][usecase] checkout success session=%s order_id=%s preference_id=%s opened_new_tab=%t", s.id, order.ID, pref.PreferenceID, opened)
	return CheckoutResult{
		OrderID:      order.ID,
		Total:        grandTotal,
		PreferenceID: pref.PreferenceID,
		InitPoint:    pref.InitPoint,
		OpenedNewTab: opened,
	}, nil
}

// Regenerate re-enters the flow for an order that already exists, never
// creating a new one. Resolution order for "which order": the in-memory
// resume pointer, then the persisted record, then the most recently
// created pending order in the store.
func (s *CheckoutSession) Regenerate(ctx context.Context) (CheckoutResult, error) {
	log.Printf("[checkout][usecase] regenerate start session=%s", s.id)

	s.mu.Lock()
	var rec entities.PendingOrder
	if s.resume != nil {
		rec = *s.resume
	}
	s.mu.Unlock()

	if rec.IsZero() {
		if saved, ok := s.pending.Read(ctx, s.userKey); ok {
			rec = saved
		}
	}
	if rec.IsZero() {
		orders, err := s.store.ListOrders(ctx)
		if err != nil {
			log.Printf("[checkout][usecase] regenerate order list failed session=%s err=%v", s.id, err)
			orders = nil
		}
		if last, ok := entities.LatestPending(orders); ok {
			rec = entities.PendingOrder{ID: last.ID, Total: last.Total}
		}
	}
	if rec.IsZero() {
		log.Printf("[checkout][usecase] regenerate no pending order session=%s", s.id)
		s.setFailure(StateIdle, "no pending order to resume")
		return CheckoutResult{}, ErrNoPendingOrder
	}

	// Prefer the authoritative total; fall back to the known one when the
	// lookup fails.
	if orders, err := s.store.ListOrders(ctx); err != nil {
		log.Printf("[checkout][usecase] regenerate total refresh failed session=%s order_id=%s err=%v", s.id, rec.ID, err)
	} else if found, ok := entities.FindOrder(orders, rec.ID); ok && found.Total > 0 {
		rec.Total = found.Total
	}

	pref, err := s.prefs.CreatePreference(ctx, rec.ID, rec.Total)
	if err != nil {
		log.Printf("[checkout][usecase] regenerate preference failed session=%s order_id=%s err=%v", s.id, rec.ID, err)
		s.setFailure(StateIdle, "could not generate the payment link again")
		return CheckoutResult{}, fmt.Errorf("create preference: %w", err)
	}

	opened := s.launcher.Open(pref.InitPoint)
	s.pending.Save(ctx, s.userKey, rec)

	s.mu.Lock()
	s.orderID = rec.ID
	s.resume = &entities.PendingOrder{ID: rec.ID, Total: rec.Total}
	s.mu.Unlock()

	s.startPolling(rec.ID)

	log.Printf("[checkout][usecase] regenerate success session=%s order_id=%s total=%.2f", s.id, rec.ID, rec.Total)
	return CheckoutResult{
		OrderID:      rec.ID,
		Total:        rec.Total,
		PreferenceID: pref.PreferenceID,
		InitPoint:    pref.InitPoint,
		OpenedNewTab: opened,
	}, nil
}

// DiscardPending forgets the client's interest in the pending order: it
// clears the persisted record and resets polling state. The order itself
// is never touched server-side.
func (s *CheckoutSession) DiscardPending(ctx context.Context) {
	log.Printf("[checkout][usecase] discard pending session=%s", s.id)
	s.stopPolling()
	s.pending.Clear(ctx, s.userKey)
	s.mu.Lock()
	s.resume = nil
	s.orderID = ""
	s.approvedOrderID = ""
	s.state = StateIdle
	s.message = ""
	s.pollErr = ""
	s.mu.Unlock()
}

func (s *CheckoutSession) setFailure(state SessionState, message string) {
	s.mu.Lock()
	s.state = state
	s.message = message
	s.mu.Unlock()
}
