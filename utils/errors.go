package utils

import (
	"errors"
	"fmt"
)

// ValidationError signals a client-side required-field or format check failure.
// It never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AuthError signals missing or expired credentials with no usable refresh path.
// The caller should redirect to sign-in.
type AuthError struct {
	Message string
}

func (e AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed, please sign in again"
	}
	return e.Message
}

// APIError carries a non-2xx status with the server-supplied message.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// NetworkError signals that no response was received at all.
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e NetworkError) Unwrap() error { return e.Err }

// UploadError signals a failure from the image host.
type UploadError struct {
	Message string
}

func (e UploadError) Error() string {
	return "upload failed: " + e.Message
}

// IsAuthError reports whether err is an AuthError anywhere in its chain.
func IsAuthError(err error) bool {
	var ae AuthError
	return errors.As(err, &ae)
}

// IsValidationError reports whether err is a ValidationError anywhere in its chain.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
