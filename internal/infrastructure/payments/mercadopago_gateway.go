package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidPreferenceInput = errors.New("invalid preference input")

// MercadoPagoPreferenceGateway creates checkout preferences: one per
// (order, amount) pair, returning the init point the buyer must open.

type MercadoPagoPreferenceGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPreferenceGateway = (*MercadoPagoPreferenceGateway)(nil)

func NewMercadoPagoPreferenceGateway(accessToken string) (*MercadoPagoPreferenceGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoPreferenceGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoPreferenceGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoPreferenceGateway) CreatePreference(ctx context.Context, orderID string, total float64) (entities.PaymentPreference, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" || total <= 0 {
		log.Printf("[payment][gateway] invalid preference input order_id=%q total=%.2f", orderID, total)
		return entities.PaymentPreference{}, ErrInvalidPreferenceInput
	}

	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock create success preference_id=%s order_id=%s total=%.2f", id, orderID, total)
		return entities.PaymentPreference{
			PreferenceID: id,
			InitPoint:    fmt.Sprintf("https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=%s", id),
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentPreference{}, ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[payment][gateway] create start order_id=%s total=%.2f", orderID, total)
	req := preference.Request{
		ExternalReference: orderID,
		Items: []preference.ItemRequest{
			{
				ID:         orderID,
				Title:      fmt.Sprintf("Pedido %s", orderID),
				Quantity:   1,
				CurrencyID: "BRL",
				UnitPrice:  total,
			},
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed order_id=%s err=%v", orderID, err)
		return entities.PaymentPreference{}, err
	}

	initPoint := resp.InitPoint
	if useSandboxInitPoint() && resp.SandboxInitPoint != "" {
		initPoint = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] create success preference_id=%s order_id=%s", resp.ID, orderID)

	return entities.PaymentPreference{PreferenceID: resp.ID, InitPoint: initPoint}, nil
}

func useSandboxInitPoint() bool {
	return strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-")
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
