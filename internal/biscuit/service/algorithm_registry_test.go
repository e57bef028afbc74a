package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
)

func TestAlgorithmRegistry_Lookup(t *testing.T) {
	registry := NewAlgorithmRegistry()

	t.Run("built-in algorithms", func(t *testing.T) {
		alg, err := registry.Lookup(biscuitDomain.SecretBox)
		require.NoError(t, err)
		_, ok := alg.(*SecretBoxAlgorithm)
		assert.True(t, ok, "algorithm should be of type *SecretBoxAlgorithm")

		alg, err = registry.Lookup(biscuitDomain.AESGCM256)
		require.NoError(t, err)
		_, ok = alg.(*AESGCM256Algorithm)
		assert.True(t, ok, "algorithm should be of type *AESGCM256Algorithm")

		alg, err = registry.Lookup(biscuitDomain.None)
		require.NoError(t, err)
		_, ok = alg.(*PlainAlgorithm)
		assert.True(t, ok, "algorithm should be of type *PlainAlgorithm")
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := registry.Lookup("rot13")
		assert.ErrorIs(t, err, biscuitDomain.ErrUnknownAlgorithm)
		assert.Contains(t, err.Error(), `"rot13"`)
	})

	t.Run("identifiers are case-sensitive", func(t *testing.T) {
		_, err := registry.Lookup("AESGCM256")
		assert.ErrorIs(t, err, biscuitDomain.ErrUnknownAlgorithm)
	})

	t.Run("empty identifier", func(t *testing.T) {
		_, err := registry.Lookup("")
		assert.ErrorIs(t, err, biscuitDomain.ErrUnknownAlgorithm)
	})
}

func TestAlgorithmRegistry_Register(t *testing.T) {
	registry := NewAlgorithmRegistry().Register("plain2", NewPlain())

	alg, err := registry.Lookup("plain2")
	require.NoError(t, err)
	assert.False(t, alg.RequiresKey())
}

func TestKeyManagerRegistry(t *testing.T) {
	registry := NewKeyManagerRegistry()

	_, err := registry.Lookup(biscuitDomain.Testing)
	assert.ErrorIs(t, err, biscuitDomain.ErrUnknownKeyManager)

	fixed := NewFixedKeyManager()
	registry.Register(biscuitDomain.Testing, fixed).
		Register(biscuitDomain.KMS, NewKMSKeyManager(nil))

	km, err := registry.Lookup(biscuitDomain.Testing)
	require.NoError(t, err)
	assert.Same(t, fixed, km)

	assert.Equal(t, []biscuitDomain.KeyManagerID{biscuitDomain.KMS, biscuitDomain.Testing}, registry.IDs())
}
