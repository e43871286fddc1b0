package credentials

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a presented password does not match the
// stored credential.
var ErrMismatch = errors.New("credentials do not match")

// Verifier compares a stored credential against a presented password.
// Swapping the scheme is a configuration change; callers never see how the
// credential is encoded.
type Verifier interface {
	Verify(stored, presented string) error
}

// PlainVerifier compares credentials byte for byte. This matches the data
// currently in the store, where passwords are persisted as plaintext.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, presented string) error {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) != 1 {
		return ErrMismatch
	}
	return nil
}

// BcryptVerifier treats the stored credential as a bcrypt hash. It is the
// drop-in replacement for PlainVerifier once stored passwords are hashed.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, presented string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)); err != nil {
		return ErrMismatch
	}
	return nil
}

// ForScheme returns the verifier for a configured password scheme.
func ForScheme(scheme string) Verifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}
