package entities

import "testing"

func TestFilterValidOptions(t *testing.T) {
	options := []ShippingOption{
		{ID: 1, Carrier: "PAC", Price: 24.9},
		{ID: 2, Carrier: "SEDEX", Error: "area not served"},
		{ID: 3, Carrier: "Jadlog", Price: 19.9},
	}

	got := FilterValidOptions(options)
	if len(got) != 2 {
		t.Fatalf("expected 2 options, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("expected order preserved, got %+v", got)
	}

	if got := FilterValidOptions(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
