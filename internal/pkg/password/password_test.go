//go:build unit

package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fastHasher keeps the suite quick; the production cost is asserted separately.
func fastHasher(t *testing.T, pepper string) *Hasher {
	t.Helper()
	h, err := NewHasher(pepper)
	require.NoError(t, err)
	h.cost = bcrypt.MinCost
	return h
}

func TestHasher_Cost(t *testing.T) {
	h, err := NewHasher("")
	require.NoError(t, err)
	hashed, err := h.Hash("s3cret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)
}

func TestHasher_HashAndVerify(t *testing.T) {
	h := fastHasher(t, "pepper")

	t.Run("round trip", func(t *testing.T) {
		for _, p := range []string{"s3cret", "a", "пароль-unicode", strings.Repeat("x", 60)} {
			hashed, err := h.Hash(p)
			require.NoError(t, err)
			assert.True(t, h.Verify(p, hashed), "password %q", p)
		}
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		first, err := h.Hash("s3cret")
		require.NoError(t, err)
		second, err := h.Hash("s3cret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, h.Verify("s3cret", first))
		assert.True(t, h.Verify("s3cret", second))
	})

	t.Run("different password does not verify", func(t *testing.T) {
		hashed, err := h.Hash("s3cret")
		require.NoError(t, err)
		assert.False(t, h.Verify("s3cret2", hashed))
		assert.False(t, h.Verify("S3cret", hashed))
	})

	t.Run("hash never contains the plaintext", func(t *testing.T) {
		hashed, err := h.Hash("plaintext-marker")
		require.NoError(t, err)
		assert.NotContains(t, hashed, "plaintext-marker")
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		_, err := h.Hash("")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("password plus pepper beyond bcrypt input limit is rejected", func(t *testing.T) {
		_, err := h.Hash(strings.Repeat("x", 70))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})
}

func TestHasher_Pepper(t *testing.T) {
	withPepper := fastHasher(t, "pepper-a")
	otherPepper := fastHasher(t, "pepper-b")
	noPepper := fastHasher(t, "")

	hashed, err := withPepper.Hash("s3cret")
	require.NoError(t, err)

	assert.True(t, withPepper.Verify("s3cret", hashed))
	assert.False(t, otherPepper.Verify("s3cret", hashed))
	assert.False(t, noPepper.Verify("s3cret", hashed))
	assert.True(t, noPepper.Verify("s3cretpepper-a", hashed))
}

func TestHasher_VerifyMalformedHash(t *testing.T) {
	h := fastHasher(t, "")

	for _, hashed := range []string{
		"",
		"not-a-hash",
		"$2a$12$short",
		"$2a$99$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A.",
	} {
		assert.NotPanics(t, func() {
			assert.False(t, h.Verify("s3cret", hashed), "hash %q", hashed)
		})
	}
}

func TestNewHasher_PepperLength(t *testing.T) {
	t.Run("pepper filling the bcrypt input is rejected", func(t *testing.T) {
		for _, n := range []int{maxInputBytes, maxInputBytes + 10} {
			h, err := NewHasher(strings.Repeat("p", n))
			assert.ErrorIs(t, err, ErrPepperTooLong, "len %d", n)
			assert.Nil(t, h)
		}
	})

	t.Run("longest usable pepper still hashes a one-byte password", func(t *testing.T) {
		h := fastHasher(t, strings.Repeat("p", maxInputBytes-1))
		hashed, err := h.Hash("x")
		require.NoError(t, err)
		assert.True(t, h.Verify("x", hashed))
	})
}
