package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
)

// sealAESGCM256 frames plaintext the way biscuit writes aesgcm256 entries.
func sealAESGCM256(t *testing.T, key, nonce, plaintext []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	aead, err := cipher.NewGCM(block)
	require.NoError(t, err)

	sealed := aead.Seal(nil, nonce, plaintext, nil)
	return append(sealed, nonce...)
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestAESGCM256Algorithm_RequiresKey(t *testing.T) {
	assert.True(t, NewAESGCM256().RequiresKey())
}

func TestAESGCM256Algorithm_Vectors(t *testing.T) {
	// McGrew and Viega GCM test cases 13 and 14 (AES-256, zero key and IV).
	vectors := []struct {
		name       string
		key        string
		nonce      string
		plaintext  string
		ciphertext string
		tag        string
	}{
		{
			name:      "empty plaintext",
			key:       "0000000000000000000000000000000000000000000000000000000000000000",
			nonce:     "000000000000000000000000",
			plaintext: "",
			tag:       "530f8afbc74536b9a963b4f1c4cb738b",
		},
		{
			name:       "one block",
			key:        "0000000000000000000000000000000000000000000000000000000000000000",
			nonce:      "000000000000000000000000",
			plaintext:  "00000000000000000000000000000000",
			ciphertext: "cea7403d4d606b6e074ec5d3baf39d18",
			tag:        "d0d1c8a7799996bf0265b98b5d48ab91",
		},
	}

	alg := NewAESGCM256()
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			blob := mustHex(t, v.ciphertext+v.tag+v.nonce)

			plaintext, err := alg.Decrypt(mustHex(t, v.key), blob)
			require.NoError(t, err)
			assert.Equal(t, mustHex(t, v.plaintext), plaintext)
		})
	}
}

func TestAESGCM256Algorithm_Decrypt(t *testing.T) {
	alg := NewAESGCM256()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	nonce := make([]byte, 12)
	_, err = rand.Read(nonce)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		for _, plaintext := range [][]byte{
			[]byte("hello"),
			{},
			make([]byte, 1024),
		} {
			blob := sealAESGCM256(t, key, nonce, plaintext)
			got, err := alg.Decrypt(key, blob)
			require.NoError(t, err)
			assert.Equal(t, len(plaintext), len(got))
			assert.Equal(t, string(plaintext), string(got))
		}
	})

	t.Run("nonce is the trailing 12 bytes", func(t *testing.T) {
		blob := sealAESGCM256(t, key, nonce, []byte("hello"))
		assert.Equal(t, nonce, blob[len(blob)-12:])
		assert.Len(t, blob, len("hello")+16+12)
	})

	t.Run("any flipped bit fails authentication", func(t *testing.T) {
		blob := sealAESGCM256(t, key, nonce, []byte("hello"))
		for i := range blob {
			for bit := 0; bit < 8; bit++ {
				tampered := append([]byte(nil), blob...)
				tampered[i] ^= 1 << bit

				_, err := alg.Decrypt(key, tampered)
				require.ErrorIs(t, err, biscuitDomain.ErrAuthenticationFailed, "byte %d bit %d", i, bit)
			}
		}
	})

	t.Run("wrong key fails authentication", func(t *testing.T) {
		blob := sealAESGCM256(t, key, nonce, []byte("hello"))
		other := make([]byte, 32)
		_, err := alg.Decrypt(other, blob)
		assert.ErrorIs(t, err, biscuitDomain.ErrAuthenticationFailed)
	})

	t.Run("invalid key size", func(t *testing.T) {
		blob := sealAESGCM256(t, key, nonce, []byte("hello"))
		for _, size := range []int{0, 16, 24, 31, 33} {
			_, err := alg.Decrypt(make([]byte, size), blob)
			assert.ErrorIs(t, err, biscuitDomain.ErrInvalidKeySize)
		}
	})

	t.Run("nil key", func(t *testing.T) {
		_, err := alg.Decrypt(nil, make([]byte, 64))
		assert.ErrorIs(t, err, biscuitDomain.ErrInvalidKeySize)
	})

	t.Run("blob shorter than tag and nonce", func(t *testing.T) {
		_, err := alg.Decrypt(key, make([]byte, 27))
		assert.ErrorIs(t, err, biscuitDomain.ErrMalformedCiphertext)
	})
}
