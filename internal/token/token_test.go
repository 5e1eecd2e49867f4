package token

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", DefaultTTL)
	subject := uuid.Must(uuid.NewV4())

	raw, err := svc.Issue(subject)
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)

	parsed, err := svc.Verify(raw)
	assert.NoError(t, err)
	assert.Equal(t, subject, parsed)
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService("test-secret", DefaultTTL)
	subject := uuid.Must(uuid.NewV4())

	raw, err := svc.IssueWithTTL(subject, -time.Minute)
	assert.NoError(t, err)

	parsed, err := svc.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewService("secret-one", DefaultTTL)
	verifier := NewService("secret-two", DefaultTTL)

	raw, err := issuer.Issue(uuid.Must(uuid.NewV4()))
	assert.NoError(t, err)

	parsed, err := verifier.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, uuid.Nil, parsed)
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewService("test-secret", DefaultTTL)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		parsed, err := svc.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Equal(t, uuid.Nil, parsed)
	}
}
