package usecase

import (
	"errors"
	"testing"

	"loja_xpto/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestPoller_ApprovalStopsAndClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s, m := newTestSession(ctrl, fastConfig())

	// A transient failure and a not-yet tick must both be absorbed before
	// the approval lands.
	gomock.InOrder(
		m.store.EXPECT().ListOrders(gomock.Any()).Return(nil, errors.New("store down")),
		m.store.EXPECT().ListOrders(gomock.Any()).Return([]entities.Order{{ID: "o1", Status: entities.OrderStatusPendente}}, nil),
		m.store.EXPECT().ListOrders(gomock.Any()).Return([]entities.Order{{ID: "o1", Status: entities.OrderStatusAprovado}}, nil),
	)
	m.pending.EXPECT().Clear(gomock.Any(), "user-1").Times(1)

	run := s.startPolling("o1")
	<-run.done

	st := s.Status()
	if st.State != StateApproved {
		t.Fatalf("expected approved state, got %s", st.State)
	}
	if st.ApprovedOrderID != "o1" {
		t.Fatalf("expected approved order o1, got %q", st.ApprovedOrderID)
	}
	if st.ResumePending != nil {
		t.Fatal("expected resume pointer to be dropped on approval")
	}

	s.mu.Lock()
	active := s.poll
	s.mu.Unlock()
	if active != nil {
		t.Fatal("expected no active poller after approval")
	}
}

func TestPoller_BudgetExhaustedKeepsRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cfg := fastConfig()
	cfg.PollMaxAttempts = 3
	s, m := newTestSession(ctrl, cfg)

	// No Clear expectation: clearing the record on timeout would fail the
	// test. A delayed confirmation must stay reconcilable later.
	m.store.EXPECT().ListOrders(gomock.Any()).Return([]entities.Order{{ID: "o1", Status: entities.OrderStatusPendente}}, nil).Times(3)

	run := s.startPolling("o1")
	<-run.done

	st := s.Status()
	if st.State != StateTimedOut {
		t.Fatalf("expected timed out state, got %s", st.State)
	}
	if st.PollError == "" {
		t.Fatal("expected a timeout message")
	}
}

func TestPoller_SupersededRunDiscardsItsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s, m := newTestSession(ctrl, fastConfig())

	m.store.EXPECT().ListOrders(gomock.Any()).Return([]entities.Order{{ID: "o1", Status: entities.OrderStatusPendente}}, nil).AnyTimes()

	run1 := s.startPolling("o1")
	run2 := s.startPolling("o1")
	if run1 == run2 {
		t.Fatal("expected a fresh run")
	}

	// run1 was cancelled by run2; its exit must not touch the state.
	<-run1.done
	if got := s.Status().State; got != StatePolling {
		t.Fatalf("expected polling state to survive the superseded run, got %s", got)
	}

	s.stopPolling()
	<-run2.done
	st := s.Status()
	if st.State != StatePolling || st.PollError != "" {
		t.Fatalf("expected the stopped run to leave no outcome, got %+v", st)
	}
}

func TestPoller_SessionCloseStopsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s, m := newTestSession(ctrl, fastConfig())

	m.store.EXPECT().ListOrders(gomock.Any()).Return([]entities.Order{{ID: "o1", Status: entities.OrderStatusPendente}}, nil).AnyTimes()

	run := s.startPolling("o1")
	s.Close()
	<-run.done

	if got := s.Status().State; got == StateTimedOut || got == StateApproved {
		t.Fatalf("closed session must not record a poll outcome, got %s", got)
	}
}
