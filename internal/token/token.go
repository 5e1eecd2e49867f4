package token

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the access token lifetime used when no override is configured.
const DefaultTTL = 30 * time.Minute

// ErrInvalidToken covers every verification failure: bad signature, wrong
// signing method, unparsable claims, expiry, missing subject. Callers get no
// more detail than that.
var ErrInvalidToken = errors.New("invalid token")

// Verifier checks a bearer token and returns the subject it was issued for.
type Verifier interface {
	Verify(raw string) (uuid.UUID, error)
}

// Service issues and verifies signed identity tokens. Tokens are
// self-contained: verification recomputes the HMAC signature and checks
// expiry without any store lookup, so revocation before natural expiry is
// not possible.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the subject and now+ttl expiry.
func (s *Service) Issue(subject uuid.UUID) (string, error) {
	return s.IssueWithTTL(subject, s.ttl)
}

// IssueWithTTL is Issue with an explicit lifetime.
func (s *Service) IssueWithTTL(subject uuid.UUID, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject.String(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates the signature and expiry and returns the embedded
// subject identifier.
func (s *Service) Verify(raw string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	subject, err := uuid.FromString(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return subject, nil
}
