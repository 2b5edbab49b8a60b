package probe

import (
	"crypto/rand"
	"crypto/rsa"
	"os"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// SignToken builds the probe claim set and signs it with RS256.
// The claim set carries sub, iat, nbf and exp, with nbf equal to iat and
// exp equal to iat plus validity. A negative validity produces an
// already-expired token.
func SignToken(key *rsa.PrivateKey, subject string, validity time.Duration) (string, error) {
	if key == nil {
		return "", errors.New("no signing key")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(validity).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "unable to sign token")
	}
	return signed, nil
}

// LoadSigningKey reads a PEM-encoded RSA private key from path.
func LoadSigningKey(path string) (*rsa.PrivateKey, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read signing key")
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse signing key")
	}
	return key, nil
}

// GenerateUntrustedKey returns a freshly generated RSA key. Tokens signed
// with it carry a signature no verifier configured with another key will
// accept, without embedding static key material in the source.
func GenerateUntrustedKey() (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate key")
	}
	return key, nil
}
