package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	issuer := NewIssuer()

	code, err := issuer.Generate("jane@example.com")
	require.NoError(t, err)
	require.Len(t, code, CodeLength)

	require.NoError(t, issuer.Verify("jane@example.com", code))

	// A code is single-use.
	assert.ErrorIs(t, issuer.Verify("jane@example.com", code), ErrNoCode)
}

func TestVerifyWrongCodeThenCorrect(t *testing.T) {
	issuer := NewIssuer()

	code, err := issuer.Generate("jane@example.com")
	require.NoError(t, err)

	assert.ErrorIs(t, issuer.Verify("jane@example.com", "000000"), ErrCodeInvalid)
	assert.NoError(t, issuer.Verify("jane@example.com", code))
}

func TestVerifyNoCodeIssued(t *testing.T) {
	issuer := NewIssuer()
	assert.ErrorIs(t, issuer.Verify("nobody@example.com", "123456"), ErrNoCode)
}

func TestGenerateReplacesOutstandingCode(t *testing.T) {
	issuer := NewIssuer()

	first, err := issuer.Generate("jane@example.com")
	require.NoError(t, err)
	second, err := issuer.Generate("jane@example.com")
	require.NoError(t, err)

	if first != second {
		assert.ErrorIs(t, issuer.Verify("jane@example.com", first), ErrCodeInvalid)
	}
	// Attempts were burned above only if the codes differed; reissue to be sure.
	second, err = issuer.Generate("jane@example.com")
	require.NoError(t, err)
	assert.NoError(t, issuer.Verify("jane@example.com", second))
}

func TestExpiry(t *testing.T) {
	issuer := NewIssuer()
	now := time.Now()
	issuer.now = func() time.Time { return now }

	code, err := issuer.Generate("jane@example.com")
	require.NoError(t, err)

	issuer.now = func() time.Time { return now.Add(Expiry + time.Second) }
	assert.ErrorIs(t, issuer.Verify("jane@example.com", code), ErrCodeExpired)
}

func TestMaxAttempts(t *testing.T) {
	issuer := NewIssuer()

	code, err := issuer.Generate("jane@example.com")
	require.NoError(t, err)

	for i := 0; i < MaxAttempts; i++ {
		assert.ErrorIs(t, issuer.Verify("jane@example.com", "999999"), ErrCodeInvalid)
	}

	// Even the right code is dead after the attempt budget is spent.
	assert.ErrorIs(t, issuer.Verify("jane@example.com", code), ErrMaxAttemptsExceeded)
}
