package response

import (
	"testing"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSessionStatus(t *testing.T) {
	st := usecase.SessionStatus{
		State:           usecase.StateResumingPending,
		Message:         "resume?",
		WaitingPayment:  false,
		OrderID:         "o1",
		ResumePending:   &entities.PendingOrder{ID: "o1", Total: 30},
		Items:           []entities.CartItem{{ProductID: "p1", Quantity: 2, UnitPrice: 10, Product: entities.ProductSnapshot{Name: "Capacete"}}},
		ItemCount:       2,
		Subtotal:        20,
		ShippingPrice:   5,
		GrandTotal:      25,
		ShippingOptions: []entities.ShippingOption{{ID: 1, Carrier: "Correios", Price: 5, DeliveryDays: 7}},
	}

	got := FromSessionStatus(st)

	assert.Equal(t, "resuming_pending", got.State)
	require.NotNil(t, got.ResumePending)
	assert.Equal(t, "o1", got.ResumePending.OrderID)
	assert.Equal(t, 30.0, got.ResumePending.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Capacete", got.Items[0].Name)
	assert.Equal(t, 20.0, got.Items[0].LineTotal)
	require.Len(t, got.ShippingOptions, 1)
	assert.Equal(t, "Correios", got.ShippingOptions[0].Carrier)
	assert.Equal(t, 25.0, got.GrandTotal)
}

func TestFromSessionStatusWithoutResume(t *testing.T) {
	got := FromSessionStatus(usecase.SessionStatus{State: usecase.StateIdle})
	assert.Nil(t, got.ResumePending)
	assert.Empty(t, got.Items)
}

func TestFromCart(t *testing.T) {
	got := FromCart([]entities.CartItem{
		{ProductID: "p1", Quantity: 2, UnitPrice: 10},
		{ProductID: "p2", Quantity: 0, Product: entities.ProductSnapshot{Price: 5}},
	})

	assert.Equal(t, 3, got.ItemCount)
	assert.Equal(t, 25.0, got.Subtotal)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 5.0, got.Items[1].LineTotal)
}
