package auth

import (
	"context"
	"net/http"

	"utsavia/models"
	"utsavia/session"
	"utsavia/utils"

	"go.uber.org/zap"
)

// SignIn authenticates an existing vendor and persists the issued tokens.
func (s *DefaultAuthService) SignIn(ctx context.Context, req models.SignInRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, utils.ValidationError{Message: "please fill in all fields"}
	}

	var resp models.AuthResponse
	if err := s.API.DoJSON(ctx, http.MethodPost, "/auth/signin", req, false, &resp); err != nil {
		utils.GetLogger().Warn("sign-in failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	if err := s.persist(resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// persist stores the token and vendor id in one write when both are present.
// Responses without them (e.g. a message-only reply) leave the store untouched.
func (s *DefaultAuthService) persist(resp models.AuthResponse) error {
	if resp.Token == "" || resp.VendorID.String() == "" {
		return nil
	}
	sess := models.Session{
		AccessToken:  resp.Token,
		RefreshToken: resp.RefreshToken,
		VendorID:     resp.VendorID.String(),
	}
	return session.Save(s.Store, sess)
}
