package service

// SecretGenerator produces unguessable one-time secrets.
type SecretGenerator interface {
	// NewOTP returns a numeric one-time password of the given length.
	NewOTP(length int) (string, error)

	// NewToken returns a URL-safe random token.
	NewToken() (string, error)
}
