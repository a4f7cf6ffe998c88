package auth

import (
	"context"

	"utsavia/client"
	"utsavia/models"
	"utsavia/session"
)

// AuthService exchanges credentials for tokens and owns the stored session.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error)
	SignIn(ctx context.Context, req models.SignInRequest) (*models.AuthResponse, error)
	SignOut(ctx context.Context) error
}

// DefaultAuthService is the standard implementation backed by the API client.
type DefaultAuthService struct {
	API   *client.Client
	Store session.Store
}
