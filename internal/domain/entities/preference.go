package entities

// PaymentPreference is the provider-issued authorization for one payment
// session: an id plus the init point URL the buyer must visit.

type PaymentPreference struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}
