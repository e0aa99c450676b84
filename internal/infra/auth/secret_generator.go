package auth

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"

	"apparel/internal/domain/service"
	"apparel/internal/errors"
)

const tokenBytes = 32

type randomSecretGenerator struct{}

// NewSecretGenerator returns a generator backed by crypto/rand.
func NewSecretGenerator() service.SecretGenerator {
	return randomSecretGenerator{}
}

func (randomSecretGenerator) NewOTP(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("otp length must be positive")
	}

	ten := big.NewInt(10)
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "read random digit")
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}

func (randomSecretGenerator) NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
