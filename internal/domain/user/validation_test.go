package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "qatest-api/pkg/errors"
)

func TestValidateName(t *testing.T) {
	t.Run("absent is valid and produces absent", func(t *testing.T) {
		name, err := ValidateName(nil)
		require.NoError(t, err)
		assert.Nil(t, name)
	})

	t.Run("valid name is trimmed", func(t *testing.T) {
		name, err := ValidateName("  Test User  ")
		require.NoError(t, err)
		require.NotNil(t, name)
		assert.Equal(t, "Test User", *name)
	})

	t.Run("empty after trim produces absent", func(t *testing.T) {
		name, err := ValidateName("   ")
		require.NoError(t, err)
		assert.Nil(t, name)
	})

	t.Run("non-string is rejected", func(t *testing.T) {
		_, err := ValidateName(float64(42))
		require.Error(t, err)
		assert.IsType(t, &apperrors.ValidationError{}, err)
		assert.Equal(t, "Name must be a string", err.Error())
	})

	t.Run("exactly 30 characters is valid", func(t *testing.T) {
		name, err := ValidateName(strings.Repeat("A", 30))
		require.NoError(t, err)
		require.NotNil(t, name)
		assert.Len(t, *name, 30)
	})

	t.Run("31 characters is rejected", func(t *testing.T) {
		_, err := ValidateName(strings.Repeat("A", 31))
		require.Error(t, err)
		assert.Equal(t, "Name must not exceed 30 characters", err.Error())
	})

	t.Run("surrounding whitespace does not count toward the limit", func(t *testing.T) {
		name, err := ValidateName("  " + strings.Repeat("A", 30) + "  ")
		require.NoError(t, err)
		require.NotNil(t, name)
		assert.Len(t, *name, 30)
	})
}

func TestValidateMSISDN(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		msisdn, err := ValidateMSISDN("79998887766")
		require.NoError(t, err)
		assert.Equal(t, "79998887766", msisdn)
	})

	t.Run("trimmed", func(t *testing.T) {
		msisdn, err := ValidateMSISDN(" 79998887766 ")
		require.NoError(t, err)
		assert.Equal(t, "79998887766", msisdn)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ValidateMSISDN(nil)
		require.Error(t, err)
		assert.Equal(t, "MSISDN is required and must be a string", err.Error())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ValidateMSISDN("  ")
		require.Error(t, err)
		assert.Equal(t, "MSISDN is required and must be a string", err.Error())
	})

	t.Run("non-string", func(t *testing.T) {
		_, err := ValidateMSISDN(float64(79998887766))
		require.Error(t, err)
		assert.Equal(t, "MSISDN is required and must be a string", err.Error())
	})

	t.Run("letters", func(t *testing.T) {
		_, err := ValidateMSISDN("7916abc4567")
		require.Error(t, err)
		assert.Equal(t, "MSISDN must contain only digits", err.Error())
	})

	t.Run("too short", func(t *testing.T) {
		_, err := ValidateMSISDN("1234567890")
		require.Error(t, err)
		assert.Equal(t, "MSISDN must be exactly 11 digits", err.Error())
	})

	t.Run("too long", func(t *testing.T) {
		_, err := ValidateMSISDN("123456789012")
		require.Error(t, err)
		assert.Equal(t, "MSISDN must be exactly 11 digits", err.Error())
	})

	t.Run("signs are not digits", func(t *testing.T) {
		_, err := ValidateMSISDN("+7916123400")
		require.Error(t, err)
		assert.Equal(t, "MSISDN must contain only digits", err.Error())
	})

	t.Run("digits check runs before length check", func(t *testing.T) {
		// Both violated: wrong length and non-digit content.
		_, err := ValidateMSISDN("abc")
		require.Error(t, err)
		assert.Equal(t, "MSISDN must contain only digits", err.Error())
	})
}

func TestIsUniqueMSISDN(t *testing.T) {
	seed := SeedUsers()

	assert.False(t, IsUniqueMSISDN("79161234001", seed))
	assert.True(t, IsUniqueMSISDN("79998887766", seed))
	assert.True(t, IsUniqueMSISDN("79161234001", nil))
}

func TestNextID(t *testing.T) {
	assert.Equal(t, int64(1), NextID(nil))
	assert.Equal(t, int64(11), NextID(SeedUsers()))

	// Holes in the sequence do not cause id reuse.
	users := []User{{ID: 1}, {ID: 7}, {ID: 3}}
	assert.Equal(t, int64(8), NextID(users))
}

func TestSeedUsers_Isolation(t *testing.T) {
	a := SeedUsers()
	b := SeedUsers()

	require.Len(t, a, 10)
	assert.Equal(t, a, b)

	// Mutating one copy never leaks into the seed or other copies.
	*a[0].Name = "Mutated"
	a[0].MSISDN = "00000000000"
	assert.Equal(t, "Alice Smith", *b[0].Name)
	assert.Equal(t, "79161234001", SeedUsers()[0].MSISDN)
}
