package models

// Session holds the credentials persisted between app runs. The access token is
// replaceable in place on refresh; the whole session is cleared on sign-out.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	VendorID     string `json:"vendorId"`
}

// Authenticated reports whether the session carries a usable access token.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}
