package models

// SignUpRequest is the sign-up form payload.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest is the sign-in form payload.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by /auth/signup and /auth/signin.
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
	VendorID     FlexID `json:"vendorId"`
	Message      string `json:"message,omitempty"`
}

// RefreshRequest carries the refresh token to /auth/refresh-token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse is the refresh endpoint's success shape.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// MessageResponse is the generic {message} envelope.
type MessageResponse struct {
	Message string `json:"message"`
}
