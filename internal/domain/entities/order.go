package entities

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// OrderStatus is the order lifecycle as reported by the store API.
//
// The store owns the status; this service only observes it while polling.
// Only "pendente" and "aprovado" carry meaning here; any other value is a
// terminal, non-approved outcome.

type OrderStatus string

const (
	OrderStatusPendente OrderStatus = "pendente"
	OrderStatusAprovado OrderStatus = "aprovado"
)

// Order is a placed order awaiting or past payment confirmation.
//
// The id is assigned by the store API on creation and is immutable. The
// store API serves ids in several shapes (plain string, number, `{"_id"}`
// or `{"$oid"}` wrappers), so adapters must run every incoming id through
// NormalizeID so the rest of the code only ever sees the canonical string.

type Order struct {
	ID        string      `json:"id"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	Items     []OrderItem `json:"items,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (o Order) IsApproved() bool {
	return strings.EqualFold(strings.TrimSpace(string(o.Status)), string(OrderStatusAprovado))
}

func (o Order) IsPending() bool {
	return strings.EqualFold(strings.TrimSpace(string(o.Status)), string(OrderStatusPendente))
}

// NormalizeID flattens the id representations produced by the store API
// into one canonical string. Unknown shapes fall back to fmt formatting so
// comparisons stay deterministic.
func NormalizeID(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// JSON numbers decode as float64; integral ids must not grow a ".0".
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case map[string]any:
		if inner, ok := v["_id"]; ok {
			return NormalizeID(inner)
		}
		if oid, ok := v["$oid"]; ok {
			return NormalizeID(oid)
		}
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FindOrder resolves an order by normalized-id equality. Pure; equivalent
// id representations on either side yield the same result.
func FindOrder(orders []Order, id any) (Order, bool) {
	want := NormalizeID(id)
	if want == "" {
		return Order{}, false
	}
	for _, o := range orders {
		if o.ID == want {
			return o, true
		}
	}
	return Order{}, false
}

// LatestPending returns the most recently created order still pending,
// used when the session lost track of which order to resume.
func LatestPending(orders []Order) (Order, bool) {
	pending := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.IsPending() {
			pending = append(pending, o)
		}
	}
	if len(pending) == 0 {
		return Order{}, false
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.After(pending[j].CreatedAt)
	})
	return pending[0], true
}
