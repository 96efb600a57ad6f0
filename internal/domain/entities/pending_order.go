package entities

// PendingOrder is the durable pointer to the single in-flight order of a
// user: created right after order creation succeeds, removed on confirmed
// approval, on reconciliation against a missing/terminal order, or on
// explicit discard. Last write wins; there is one slot per user.

type PendingOrder struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}

func (p PendingOrder) IsZero() bool {
	return p.ID == ""
}
