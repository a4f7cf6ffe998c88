// Package session persists the vendor's credentials between runs. Storage is a
// flat key/value namespace; expiry is never checked locally, the backend's 401
// responses drive re-authentication.
package session

import "utsavia/models"

// Keys under which credentials are persisted.
const (
	KeyToken        = "token"
	KeyRefreshToken = "refreshToken"
	KeyVendorID     = "vendorId"
)

// Store is the persistence contract for session values.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	SetMany(values map[string]string) error
	Clear() error
}

// Load assembles the current session from a store. Absent keys come back as
// empty strings; callers check Session.Authenticated.
func Load(s Store) (models.Session, error) {
	var sess models.Session
	token, _, err := s.Get(KeyToken)
	if err != nil {
		return sess, err
	}
	refresh, _, err := s.Get(KeyRefreshToken)
	if err != nil {
		return sess, err
	}
	vendorID, _, err := s.Get(KeyVendorID)
	if err != nil {
		return sess, err
	}
	sess.AccessToken = token
	sess.RefreshToken = refresh
	sess.VendorID = vendorID
	return sess, nil
}

// Save persists every populated field of the session in one write.
func Save(s Store, sess models.Session) error {
	values := map[string]string{
		KeyToken:    sess.AccessToken,
		KeyVendorID: sess.VendorID,
	}
	if sess.RefreshToken != "" {
		values[KeyRefreshToken] = sess.RefreshToken
	}
	return s.SetMany(values)
}
