// Package credential models the single-use tokens that let a user set a
// password from an emailed link.
package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"laundry-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errs.New("invalid or expired token")
	ErrInvalidPurpose = errs.New("invalid token purpose")
	ErrTokenRequired  = errs.New("token is required")
)

type Purpose string

const (
	PurposeInvite Purpose = "INVITE"
	PurposeReset  Purpose = "RESET"
)

func (p Purpose) IsValid() bool {
	return p == PurposeInvite || p == PurposeReset
}

// TTL is how long a link of this purpose stays usable.
func (p Purpose) TTL() time.Duration {
	if p == PurposeInvite {
		return 24 * time.Hour
	}
	return 2 * time.Hour
}

func ParsePurpose(s string) (Purpose, error) {
	p := Purpose(s)
	if !p.IsValid() {
		return "", ErrInvalidPurpose
	}
	return p, nil
}

const rawTokenBytes = 32

// Token is the stored half of a password link. The opaque value handed to the
// user is never persisted; only its SHA-256 digest is.
type Token struct {
	id        uuid.UUID
	userID    uuid.UUID
	purpose   Purpose
	hash      []byte
	createdAt time.Time
	expiresAt time.Time
	usedAt    *time.Time
}

// Issue creates a token for userID and returns it with the opaque value to deliver.
func Issue(userID uuid.UUID, purpose Purpose, now time.Time) (*Token, string, error) {
	if !purpose.IsValid() {
		return nil, "", ErrInvalidPurpose
	}

	b := make([]byte, rawTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, "", errs.Wrap(err, "failed to generate password token")
	}
	raw := base64.RawURLEncoding.EncodeToString(b)

	return &Token{
		id:        uuid.New(),
		userID:    userID,
		purpose:   purpose,
		hash:      Digest(raw),
		createdAt: now,
		expiresAt: now.Add(purpose.TTL()),
	}, raw, nil
}

// Digest is the lookup key for an opaque token value.
func Digest(raw string) []byte {
	sum := sha256.Sum256([]byte(raw))
	return sum[:]
}

type ReconstructParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Purpose   Purpose
	Hash      []byte
	CreatedAt time.Time
	ExpiresAt time.Time
	UsedAt    *time.Time
}

func Reconstruct(p ReconstructParams) *Token {
	return &Token{
		id:        p.ID,
		userID:    p.UserID,
		purpose:   p.Purpose,
		hash:      p.Hash,
		createdAt: p.CreatedAt,
		expiresAt: p.ExpiresAt,
		usedAt:    p.UsedAt,
	}
}

// Usable reports whether the token can still be redeemed at now.
func (t *Token) Usable(now time.Time) bool {
	return t.usedAt == nil && now.Before(t.expiresAt)
}

// Consume marks the token used. A used or expired token fails with ErrInvalidToken.
func (t *Token) Consume(now time.Time) error {
	if !t.Usable(now) {
		return ErrInvalidToken
	}
	t.usedAt = &now
	return nil
}

func (t *Token) ID() uuid.UUID        { return t.id }
func (t *Token) UserID() uuid.UUID    { return t.userID }
func (t *Token) Purpose() Purpose     { return t.purpose }
func (t *Token) Hash() []byte         { return t.hash }
func (t *Token) CreatedAt() time.Time { return t.createdAt }
func (t *Token) ExpiresAt() time.Time { return t.expiresAt }
func (t *Token) UsedAt() *time.Time   { return t.usedAt }
