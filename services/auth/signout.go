package auth

import (
	"context"

	"utsavia/utils"
)

// SignOut clears the stored session. It is purely local; the backend keeps no
// server-side session to revoke.
func (s *DefaultAuthService) SignOut(ctx context.Context) error {
	if err := s.Store.Clear(); err != nil {
		return err
	}
	utils.GetLogger().Info("signed out, session cleared")
	return nil
}
