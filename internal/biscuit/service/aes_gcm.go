package service

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
)

const (
	gcmNonceSize = 12
	gcmTagSize   = 16
)

// AESGCM256Algorithm decrypts AES-256-GCM blobs framed as
//
//	payload | tag (16 bytes) | nonce (12 bytes)
//
// The nonce is the last 12 bytes of the blob and the GCM tag the 16 bytes
// before it. No additional authenticated data is used.
type AESGCM256Algorithm struct{}

// NewAESGCM256 creates an AESGCM256Algorithm.
func NewAESGCM256() *AESGCM256Algorithm {
	return &AESGCM256Algorithm{}
}

// RequiresKey always returns true.
func (a *AESGCM256Algorithm) RequiresKey() bool {
	return true
}

// Decrypt splits ciphertext into payload, tag and nonce and opens it with key.
// Returns ErrInvalidKeySize if key is not 32 bytes, ErrMalformedCiphertext if
// the blob cannot hold a tag and nonce, and ErrAuthenticationFailed if the
// tag does not verify.
func (a *AESGCM256Algorithm) Decrypt(key, ciphertext []byte) ([]byte, error) {
	if len(key) != biscuitDomain.KeySize {
		return nil, fmt.Errorf("aesgcm256: %w: got %d bytes", biscuitDomain.ErrInvalidKeySize, len(key))
	}
	if len(ciphertext) < gcmTagSize+gcmNonceSize {
		return nil, fmt.Errorf(
			"aesgcm256: %w: %d bytes is shorter than tag and nonce",
			biscuitDomain.ErrMalformedCiphertext,
			len(ciphertext),
		)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	split := len(ciphertext) - gcmNonceSize
	sealed, nonce := ciphertext[:split], ciphertext[split:]

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("aesgcm256: %w", biscuitDomain.ErrAuthenticationFailed)
	}
	return plaintext, nil
}
