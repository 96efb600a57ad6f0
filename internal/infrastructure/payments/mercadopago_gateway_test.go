package payments

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewMercadoPagoPreferenceGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		_, err := NewMercadoPagoPreferenceGateway("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

		g, err := NewMercadoPagoPreferenceGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatal("expected mock mode")
		}
	})
}

func TestMercadoPagoPreferenceGateway_CreatePreference(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
		g, err := NewMercadoPagoPreferenceGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := g.CreatePreference(context.Background(), " ", 10); !errors.Is(err, ErrInvalidPreferenceInput) {
			t.Fatalf("expected ErrInvalidPreferenceInput, got %v", err)
		}
		if _, err := g.CreatePreference(context.Background(), "o1", 0); !errors.Is(err, ErrInvalidPreferenceInput) {
			t.Fatalf("expected ErrInvalidPreferenceInput, got %v", err)
		}
	})

	t.Run("mock mode returns a sandbox init point", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
		g, err := NewMercadoPagoPreferenceGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		pref, err := g.CreatePreference(context.Background(), "o1", 32.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pref.PreferenceID == "" {
			t.Fatal("expected a preference id")
		}
		if !strings.Contains(pref.InitPoint, pref.PreferenceID) {
			t.Fatalf("expected the init point to carry the preference id, got %s", pref.InitPoint)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		var g *MercadoPagoPreferenceGateway
		if _, err := g.CreatePreference(context.Background(), "o1", 10); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}
