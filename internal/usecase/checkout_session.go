package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrShippingNotSelected   = errors.New("select a shipping option before finishing the purchase")
	ErrCheckoutInFlight      = errors.New("a checkout is already in progress")
	ErrNoPendingOrder        = errors.New("no pending order to resume")
	ErrInvalidProductID      = errors.New("invalid product id")
	ErrDecrementInFlight     = errors.New("this item is already being updated")
	ErrMissingDestinationZip = errors.New("destination zip code not found")
	ErrUnknownShippingOption = errors.New("unknown shipping option")
)

// SessionState is the checkout flow position within one cart-page session.

type SessionState string

const (
	StateIdle               SessionState = "idle"
	StateOrderCreating      SessionState = "order_creating"
	StatePreferenceCreating SessionState = "preference_creating"
	StatePolling            SessionState = "polling"
	StateApproved           SessionState = "approved"
	StateTimedOut           SessionState = "timed_out"
	StateResumingPending    SessionState = "resuming_pending"
)

const (
	msgWaitingPayment = "Payment page opened. Finish the payment and come back; we are watching for the confirmation."
	msgApproved       = "Payment approved!"
	msgPollTimeout    = "We could not confirm your payment yet. If you already paid, give it a moment or check your orders."
)

// SessionConfig carries the tunables of one checkout session.
type SessionConfig struct {
	PollInterval    time.Duration
	PollMaxAttempts uint64
	RequireShipping bool
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		PollInterval:    5 * time.Second,
		PollMaxAttempts: 36,
	}
}

// ICheckoutSession is the surface the HTTP layer drives.

type ICheckoutSession interface {
	Reconcile(ctx context.Context) error
	Status() SessionStatus
	LoadCart(ctx context.Context) ([]entities.CartItem, error)
	DecrementItem(ctx context.Context, productID string) error
	QuoteShipping(ctx context.Context, destZip string) ([]entities.ShippingOption, error)
	SelectShipping(optionID int) error
	Checkout(ctx context.Context) (CheckoutResult, error)
	Regenerate(ctx context.Context) (CheckoutResult, error)
	DiscardPending(ctx context.Context)
	Close()
}

// CheckoutSession owns the checkout state machine for one user's cart-page
// session: cart view state, shipping selection, the pending-order pointer
// and the confirmation poller. It is constructed on view enter and closed
// on view exit, which cancels any active poller.
//
// All mutable state is guarded by mu; external calls are made with the
// lock released.

type CheckoutSession struct {
	id       string
	userKey  string
	store    interfaces.IStoreClient
	prefs    interfaces.IPreferenceGateway
	shipping interfaces.IShippingGateway
	pending  interfaces.IPendingOrderStore
	launcher interfaces.ILinkLauncher
	cfg      SessionConfig

	ctx    context.Context
	cancel context.CancelFunc

	reconcileOnce sync.Once

	mu              sync.Mutex
	user            entities.User
	items           []entities.CartItem
	busy            map[string]bool
	state           SessionState
	message         string
	pollErr         string
	orderID         string
	approvedOrderID string
	resume          *entities.PendingOrder
	shippingOptions []entities.ShippingOption
	selectedOption  *entities.ShippingOption
	shippingPrice   float64
	poll            *pollRun
}

var _ ICheckoutSession = (*CheckoutSession)(nil)

func NewCheckoutSession(
	userKey string,
	store interfaces.IStoreClient,
	prefs interfaces.IPreferenceGateway,
	shipping interfaces.IShippingGateway,
	pending interfaces.IPendingOrderStore,
	launcher interfaces.ILinkLauncher,
	cfg SessionConfig,
) *CheckoutSession {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultSessionConfig().PollInterval
	}
	if cfg.PollMaxAttempts == 0 {
		cfg.PollMaxAttempts = DefaultSessionConfig().PollMaxAttempts
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &CheckoutSession{
		id:       uuid.NewString(),
		userKey:  userKey,
		store:    store,
		prefs:    prefs,
		shipping: shipping,
		pending:  pending,
		launcher: launcher,
		cfg:      cfg,
		ctx:      ctx,
		cancel:   cancel,
		busy:     make(map[string]bool),
		state:    StateIdle,
	}
}

// Reconcile is the view-enter hook: refresh the profile and cart, then
// settle the persisted pending-order pointer against the store's order
// list. Fixed policy: approved → clear and signal success; still pending →
// offer resume; missing or any other terminal status → forget the record.
func (s *CheckoutSession) Reconcile(ctx context.Context) error {
	log.Printf("[checkout][usecase] reconcile start session=%s", s.id)

	if u, err := s.store.GetUser(ctx); err != nil {
		log.Printf("[checkout][usecase] profile fetch failed session=%s err=%v", s.id, err)
	} else {
		s.mu.Lock()
		s.user = u
		s.mu.Unlock()
	}

	if _, err := s.LoadCart(ctx); err != nil {
		log.Printf("[checkout][usecase] cart load failed session=%s err=%v", s.id, err)
	}

	saved, ok := s.pending.Read(ctx, s.userKey)
	if !ok {
		log.Printf("[checkout][usecase] reconcile done session=%s no pending record", s.id)
		return nil
	}

	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		// Same outcome as "order not found": the record is dropped and the
		// user falls back to the order list.
		log.Printf("[checkout][usecase] reconcile order list failed session=%s err=%v", s.id, err)
		orders = nil
	}

	found, ok := entities.FindOrder(orders, saved.ID)
	switch {
	case !ok:
		log.Printf("[checkout][usecase] reconcile pending order not found session=%s order_id=%s", s.id, saved.ID)
		s.pending.Clear(ctx, s.userKey)
	case found.IsApproved():
		log.Printf("[checkout][usecase] reconcile pending order approved session=%s order_id=%s", s.id, saved.ID)
		s.pending.Clear(ctx, s.userKey)
		s.mu.Lock()
		s.state = StateApproved
		s.approvedOrderID = saved.ID
		s.message = msgApproved
		s.mu.Unlock()
	case found.IsPending():
		log.Printf("[checkout][usecase] reconcile pending order still pending session=%s order_id=%s", s.id, saved.ID)
		rec := entities.PendingOrder{ID: saved.ID, Total: found.Total}
		if rec.Total <= 0 {
			rec.Total = saved.Total
		}
		s.mu.Lock()
		s.state = StateResumingPending
		s.resume = &rec
		s.orderID = rec.ID
		s.mu.Unlock()
	default:
		log.Printf("[checkout][usecase] reconcile pending order terminal session=%s order_id=%s status=%s", s.id, saved.ID, found.Status)
		s.pending.Clear(ctx, s.userKey)
	}
	return nil
}

// Close is the view-exit hook. It cancels the session context, which stops
// the active poller; late poll results are discarded, never applied.
func (s *CheckoutSession) Close() {
	log.Printf("[checkout][usecase] session close session=%s", s.id)
	s.cancel()
}

// SessionStatus is the snapshot served to the frontend on every poll of
// the session state.

type SessionStatus struct {
	State           SessionState             `json:"state"`
	Message         string                   `json:"message,omitempty"`
	PollError       string                   `json:"poll_error,omitempty"`
	WaitingPayment  bool                     `json:"waiting_payment"`
	OrderID         string                   `json:"order_id,omitempty"`
	ApprovedOrderID string                   `json:"approved_order_id,omitempty"`
	ResumePending   *entities.PendingOrder   `json:"resume_pending,omitempty"`
	Items           []entities.CartItem      `json:"items"`
	ItemCount       int                      `json:"item_count"`
	Subtotal        float64                  `json:"subtotal"`
	ShippingPrice   float64                  `json:"shipping_price"`
	GrandTotal      float64                  `json:"grand_total"`
	ShippingOptions []entities.ShippingOption `json:"shipping_options,omitempty"`
}

func (s *CheckoutSession) Status() SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *CheckoutSession) statusLocked() SessionStatus {
	subtotal := entities.Subtotal(s.items)
	st := SessionStatus{
		State:           s.state,
		Message:         s.message,
		PollError:       s.pollErr,
		WaitingPayment:  s.state == StatePolling,
		OrderID:         s.orderID,
		ApprovedOrderID: s.approvedOrderID,
		Items:           s.items,
		ItemCount:       entities.ItemCount(s.items),
		Subtotal:        subtotal,
		ShippingPrice:   s.shippingPrice,
		GrandTotal:      subtotal + s.shippingPrice,
		ShippingOptions: s.shippingOptions,
	}
	if s.resume != nil {
		rec := *s.resume
		st.ResumePending = &rec
	}
	return st
}
