package entities

// User is the authenticated storefront profile. CEP is the destination
// postal code used as the default for shipping quotes.

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CEP   string `json:"cep"`
}
