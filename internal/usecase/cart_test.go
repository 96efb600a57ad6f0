package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"loja_xpto/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestCheckoutSession_LoadCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s, m := newTestSession(ctrl, fastConfig())

	items := []entities.CartItem{{ProductID: "a", Quantity: 2, UnitPrice: 10}}
	m.store.EXPECT().FetchCart(gomock.Any()).Return(items, nil)

	got, err := s.LoadCart(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ProductID != "a" {
		t.Fatalf("unexpected items: %+v", got)
	}
	if s.Status().Subtotal != 20 {
		t.Fatalf("expected snapshot to replace the view state, got %+v", s.Status())
	}
}

func TestCheckoutSession_DecrementItem(t *testing.T) {
	ctx := context.Background()

	t.Run("blank product id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, _ := newTestSession(ctrl, fastConfig())

		if err := s.DecrementItem(ctx, "  "); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("decrement reloads the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newTestSession(ctrl, fastConfig())

		gomock.InOrder(
			m.store.EXPECT().DecrementItem(gomock.Any(), "p1").Return(nil),
			m.store.EXPECT().FetchCart(gomock.Any()).Return([]entities.CartItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}}, nil),
		)

		if err := s.DecrementItem(ctx, "p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := s.Status().ItemCount; got != 1 {
			t.Fatalf("expected refreshed count 1, got %d", got)
		}
	})

	t.Run("reload failure does not fail the decrement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newTestSession(ctrl, fastConfig())

		gomock.InOrder(
			m.store.EXPECT().DecrementItem(gomock.Any(), "p1").Return(nil),
			m.store.EXPECT().FetchCart(gomock.Any()).Return(nil, errors.New("store down")),
		)

		if err := s.DecrementItem(ctx, "p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("second decrement on a busy line is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, m := newTestSession(ctrl, fastConfig())

		inFlight := make(chan struct{})
		release := make(chan struct{})
		m.store.EXPECT().DecrementItem(gomock.Any(), "p1").DoAndReturn(func(context.Context, string) error {
			close(inFlight)
			<-release
			return nil
		})
		m.store.EXPECT().FetchCart(gomock.Any()).Return(nil, nil)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.DecrementItem(ctx, "p1"); err != nil {
				t.Errorf("first decrement failed: %v", err)
			}
		}()

		<-inFlight
		if err := s.DecrementItem(ctx, "p1"); !errors.Is(err, ErrDecrementInFlight) {
			t.Fatalf("expected ErrDecrementInFlight, got %v", err)
		}
		close(release)
		wg.Wait()
	})
}
