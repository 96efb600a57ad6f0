package usecase

import (
	"context"
	"errors"
	"log"

	"loja_xpto/internal/domain/entities"

	"github.com/sethvargo/go-retry"
)

// errNotConfirmed drives the retry loop: every tick that does not observe
// an approved order reports it and waits for the next slot.
var errNotConfirmed = errors.New("payment not confirmed yet")

// pollRun identifies one poller instance so a superseded or torn-down run
// can recognize itself and discard its late outcome.
type pollRun struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// startPolling begins the bounded confirmation watch for orderID. At most
// one run is active per session: starting a new one cancels the previous.
// Ticks are rescheduled after each check completes, so a slow order-list
// fetch can never overlap with the next tick.
func (s *CheckoutSession) startPolling(orderID string) *pollRun {
	s.mu.Lock()
	if s.poll != nil {
		s.poll.cancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	run := &pollRun{cancel: cancel, done: make(chan struct{})}
	s.poll = run
	s.state = StatePolling
	s.message = msgWaitingPayment
	s.pollErr = ""
	s.mu.Unlock()

	log.Printf("[poller][usecase] start session=%s order_id=%s interval=%s max_attempts=%d", s.id, orderID, s.cfg.PollInterval, s.cfg.PollMaxAttempts)
	go s.pollUntilApproved(ctx, run, orderID)
	return run
}

func (s *CheckoutSession) stopPolling() {
	s.mu.Lock()
	if s.poll != nil {
		s.poll.cancel()
		s.poll = nil
	}
	s.mu.Unlock()
}

func (s *CheckoutSession) pollUntilApproved(ctx context.Context, run *pollRun, orderID string) {
	defer close(run.done)

	attempt := 0
	backoff := retry.WithMaxRetries(s.cfg.PollMaxAttempts-1, retry.NewConstant(s.cfg.PollInterval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		orders, err := s.store.ListOrders(ctx)
		if err != nil {
			// Transient tick failures neither stop the poller nor count as
			// a terminal outcome.
			log.Printf("[poller][usecase] tick failed session=%s order_id=%s attempt=%d err=%v", s.id, orderID, attempt, err)
			return retry.RetryableError(errNotConfirmed)
		}
		if found, ok := entities.FindOrder(orders, orderID); ok && found.IsApproved() {
			return nil
		}
		log.Printf("[poller][usecase] tick not approved session=%s order_id=%s attempt=%d", s.id, orderID, attempt)
		return retry.RetryableError(errNotConfirmed)
	})

	s.mu.Lock()
	if s.poll != run || ctx.Err() != nil {
		// Superseded by a newer run or the session was torn down.
		s.mu.Unlock()
		log.Printf("[poller][usecase] run discarded session=%s order_id=%s", s.id, orderID)
		return
	}
	s.poll = nil

	if err != nil {
		// Attempt budget exhausted. The pending record is deliberately
		// kept: the payment may have gone through with the confirmation
		// merely delayed, and a later session can still reconcile it.
		s.state = StateTimedOut
		s.pollErr = msgPollTimeout
		s.mu.Unlock()
		log.Printf("[poller][usecase] budget exhausted session=%s order_id=%s attempts=%d", s.id, orderID, attempt)
		return
	}

	s.state = StateApproved
	s.approvedOrderID = orderID
	s.message = msgApproved
	s.pollErr = ""
	s.resume = nil
	s.mu.Unlock()

	s.pending.Clear(s.ctx, s.userKey)
	log.Printf("[poller][usecase] payment approved session=%s order_id=%s attempts=%d", s.id, orderID, attempt)
}
