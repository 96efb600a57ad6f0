package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"sync"

	"loja_xpto/internal/usecase/interfaces"
)

// ISessionManager hands out the checkout session bound to a bearer token.

type ISessionManager interface {
	Enter(ctx context.Context, token string) ICheckoutSession
	Exit(token string)
}

// SessionManager keeps one CheckoutSession per authenticated token. Enter
// creates the session on first use and runs the enter-hook reconciliation
// exactly once; Exit tears the session down, cancelling its poller.

type SessionManager struct {
	factory  interfaces.IStoreClientFactory
	prefs    interfaces.IPreferenceGateway
	shipping interfaces.IShippingGateway
	pending  interfaces.IPendingOrderStore
	launcher interfaces.ILinkLauncher
	cfg      SessionConfig

	mu       sync.Mutex
	sessions map[string]*CheckoutSession
}

var _ ISessionManager = (*SessionManager)(nil)

func NewSessionManager(
	factory interfaces.IStoreClientFactory,
	prefs interfaces.IPreferenceGateway,
	shipping interfaces.IShippingGateway,
	pending interfaces.IPendingOrderStore,
	launcher interfaces.ILinkLauncher,
	cfg SessionConfig,
) *SessionManager {
	return &SessionManager{
		factory:  factory,
		prefs:    prefs,
		shipping: shipping,
		pending:  pending,
		launcher: launcher,
		cfg:      cfg,
		sessions: make(map[string]*CheckoutSession),
	}
}

func (m *SessionManager) Enter(ctx context.Context, token string) ICheckoutSession {
	key := sessionKey(token)

	m.mu.Lock()
	s, ok := m.sessions[key]
	if !ok {
		s = NewCheckoutSession(key, m.factory.WithToken(token), m.prefs, m.shipping, m.pending, m.launcher, m.cfg)
		m.sessions[key] = s
		log.Printf("[session][usecase] session created session=%s user_key=%s", s.id, key)
	}
	m.mu.Unlock()

	s.reconcileOnce.Do(func() {
		if err := s.Reconcile(ctx); err != nil {
			log.Printf("[session][usecase] reconcile failed session=%s err=%v", s.id, err)
		}
	})
	return s
}

func (m *SessionManager) Exit(token string) {
	key := sessionKey(token)

	m.mu.Lock()
	s, ok := m.sessions[key]
	if ok {
		delete(m.sessions, key)
	}
	m.mu.Unlock()

	if ok {
		s.Close()
		log.Printf("[session][usecase] session closed user_key=%s", key)
	}
}

// sessionKey derives the pending-store slot key from the bearer token, so
// the persisted record follows the login the same way the original
// browser-local slot followed the browser profile.
func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
