// Package otp issues and verifies the six-digit codes used by the
// password reset flow. Codes live in memory only; restarting the server
// invalidates anything outstanding, which matches how the app treats them.
package otp

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sync"
	"time"
)

const (
	// CodeLength is the number of digits in a reset code.
	CodeLength = 6

	// Expiry is how long a code stays valid.
	Expiry = 5 * time.Minute

	// MaxAttempts is the number of verification attempts per code.
	MaxAttempts = 3
)

var (
	ErrNoCode              = errors.New("no reset code issued for this email")
	ErrCodeExpired         = errors.New("reset code has expired")
	ErrCodeInvalid         = errors.New("invalid reset code")
	ErrMaxAttemptsExceeded = errors.New("maximum verification attempts exceeded")
)

type entry struct {
	code      string
	expiresAt time.Time
	attempts  int
}

// Issuer generates and verifies reset codes, one live code per email.
type Issuer struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// NewIssuer creates an Issuer.
func NewIssuer() *Issuer {
	return &Issuer{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Generate issues a new code for the email, replacing any outstanding one.
func (i *Issuer) Generate(email string) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", err
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.entries[email] = &entry{
		code:      code,
		expiresAt: i.now().Add(Expiry),
	}
	return code, nil
}

// Verify checks a code. A successful verification consumes the code; a
// failed one burns an attempt. Once MaxAttempts failures accumulate the
// code is dead regardless of its expiry.
func (i *Issuer) Verify(email, code string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	e, ok := i.entries[email]
	if !ok {
		return ErrNoCode
	}
	if i.now().After(e.expiresAt) {
		delete(i.entries, email)
		return ErrCodeExpired
	}
	if e.attempts >= MaxAttempts {
		delete(i.entries, email)
		return ErrMaxAttemptsExceeded
	}

	e.attempts++
	if e.code != code {
		return ErrCodeInvalid
	}

	delete(i.entries, email)
	return nil
}

func randomCode() (string, error) {
	const digits = "0123456789"
	buf := make([]byte, CodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		buf[i] = digits[n.Int64()]
	}
	return string(buf), nil
}
