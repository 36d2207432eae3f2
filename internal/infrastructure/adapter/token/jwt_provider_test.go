package token

import (
	"testing"
	"time"

	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	timeprovider "github.com/mayowa-ojo/digibank/internal/infrastructure/adapter/time"
	coremocks "github.com/mayowa-ojo/digibank/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTProviderRoundTrip(t *testing.T) {
	provider := NewJWTProvider("test-secret", time.Hour, timeprovider.NewRealTimeProvider())

	signed, err := provider.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := provider.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
}

func TestJWTProviderExpiredToken(t *testing.T) {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Now().Add(-2 * time.Hour))

	provider := NewJWTProvider("test-secret", time.Hour, clock)

	signed, err := provider.Generate(42)
	require.NoError(t, err)

	_, err = provider.Parse(signed)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestJWTProviderWrongSecret(t *testing.T) {
	issuer := NewJWTProvider("issuer-secret", time.Hour, timeprovider.NewRealTimeProvider())
	verifier := NewJWTProvider("other-secret", time.Hour, timeprovider.NewRealTimeProvider())

	signed, err := issuer.Generate(42)
	require.NoError(t, err)

	_, err = verifier.Parse(signed)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestJWTProviderGarbageToken(t *testing.T) {
	provider := NewJWTProvider("test-secret", time.Hour, timeprovider.NewRealTimeProvider())

	for _, token := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		_, err := provider.Parse(token)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	}
}
