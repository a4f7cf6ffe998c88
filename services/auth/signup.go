package auth

import (
	"context"
	"net/http"
	"strings"

	"utsavia/models"
	"utsavia/utils"

	"go.uber.org/zap"
)

// SignUp registers a new vendor account. On success the returned token and
// vendor id are persisted before the call resolves, so the caller can proceed
// straight to profile completion.
func (s *DefaultAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error) {
	if err := validateSignUp(req); err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := s.API.DoJSON(ctx, http.MethodPost, "/auth/signup", req, false, &resp); err != nil {
		utils.GetLogger().Warn("sign-up failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	if err := s.persist(resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func validateSignUp(req models.SignUpRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return utils.ValidationError{Message: "please fill in all fields"}
	}
	if !strings.Contains(req.Email, "@") {
		return utils.ValidationError{Field: "email", Message: "please enter a valid email address"}
	}
	if len(req.Password) < 6 {
		return utils.ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}
