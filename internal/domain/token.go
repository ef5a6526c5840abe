package domain

// TokenPair is the credential blob produced atomically by the login
// exchange. Access is short-lived, refresh is long-lived. The pair is
// overwritten wholesale on login and erased wholesale on logout; there
// are no partial updates.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
