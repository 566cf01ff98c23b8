package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errors.New("password hashing failed")
	ErrInvalidPassword = errors.New("invalid password")
	ErrPasswordTooLong = errors.New("password too long")
	ErrPepperTooLong   = errors.New("pepper leaves no room for a password within bcrypt's 72-byte input")
)

// bcrypt only reads the first 72 bytes of its input.
const maxInputBytes = 72

// Cost is the bcrypt work factor for every stored hash.
const Cost = 12

// Hasher hashes passwords with bcrypt after appending a server-side pepper.
// The pepper is never stored next to the hash.
type Hasher struct {
	pepper string
	cost   int
}

func NewHasher(pepper string) (*Hasher, error) {
	if len(pepper) >= maxInputBytes {
		return nil, ErrPepperTooLong
	}
	return &Hasher{
		pepper: pepper,
		cost:   Cost,
	}, nil
}

func (h *Hasher) Hash(raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidPassword
	}
	if len(raw)+len(h.pepper) > maxInputBytes {
		return "", ErrPasswordTooLong
	}

	hashedBytes, err := bcrypt.GenerateFromPassword(h.peppered(raw), h.cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// Verify reports whether raw matches hashed. A malformed or empty hash never matches.
func (h *Hasher) Verify(raw, hashed string) bool {
	if raw == "" || hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), h.peppered(raw)) == nil
}

func (h *Hasher) peppered(raw string) []byte {
	return []byte(raw + h.pepper)
}
