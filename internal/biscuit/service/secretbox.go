package service

import (
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
)

const secretBoxNonceSize = 24

// SecretBoxAlgorithm decrypts NaCl secretbox (XSalsa20-Poly1305) blobs whose
// first 24 bytes are the nonce, followed by the Poly1305 tag and the payload.
type SecretBoxAlgorithm struct{}

// NewSecretBox creates a SecretBoxAlgorithm.
func NewSecretBox() *SecretBoxAlgorithm {
	return &SecretBoxAlgorithm{}
}

// RequiresKey always returns true.
func (s *SecretBoxAlgorithm) RequiresKey() bool {
	return true
}

// Decrypt opens the box in ciphertext with key.
func (s *SecretBoxAlgorithm) Decrypt(key, ciphertext []byte) ([]byte, error) {
	if len(key) != biscuitDomain.KeySize {
		return nil, fmt.Errorf("secretbox: %w: got %d bytes", biscuitDomain.ErrInvalidKeySize, len(key))
	}
	if len(ciphertext) < secretBoxNonceSize+secretbox.Overhead {
		return nil, fmt.Errorf(
			"secretbox: %w: %d bytes is shorter than nonce and tag",
			biscuitDomain.ErrMalformedCiphertext,
			len(ciphertext),
		)
	}

	var (
		k     [biscuitDomain.KeySize]byte
		nonce [secretBoxNonceSize]byte
	)
	copy(k[:], key)
	copy(nonce[:], ciphertext[:secretBoxNonceSize])
	defer biscuitDomain.Zero(k[:])

	plaintext, ok := secretbox.Open(nil, ciphertext[secretBoxNonceSize:], &nonce, &k)
	if !ok {
		return nil, fmt.Errorf("secretbox: %w", biscuitDomain.ErrAuthenticationFailed)
	}
	return plaintext, nil
}
