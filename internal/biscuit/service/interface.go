// Package service provides the pluggable pieces of the biscuit decryption
// engine: decryption algorithms (secretbox, AES-256-GCM, plaintext), key
// managers that produce the keys those algorithms need, and the registries
// mapping the identifiers found in a secrets document to implementations.
package service

import (
	"context"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
)

// Algorithm decrypts a ciphertext blob.
//
// Implementations hold no mutable state and are safe for concurrent use.
type Algorithm interface {
	// RequiresKey reports whether Decrypt needs key material. When false the
	// key argument of Decrypt is ignored and may be nil.
	RequiresKey() bool

	// Decrypt returns the plaintext of ciphertext. Forged or corrupted input
	// fails with domain.ErrAuthenticationFailed.
	Decrypt(key, ciphertext []byte) ([]byte, error)
}

// KeyManager produces the raw key material for an entry.
type KeyManager interface {
	// Resolve returns the key for entry of the named secret. The caller owns
	// the returned slice and may zero it. Failures wrap
	// domain.ErrKeyResolution and are never retried by the manager.
	Resolve(ctx context.Context, name string, entry biscuitDomain.Entry) ([]byte, error)
}

// KMSClient is the subset of a cloud key management service used to unwrap data keys.
type KMSClient interface {
	// Decrypt unwraps ciphertextBlob, checking it was bound to encryptionContext.
	// Implementations may cache and return the same slice on every call, so
	// callers must not modify it.
	Decrypt(ctx context.Context, ciphertextBlob []byte, encryptionContext map[string]string) ([]byte, error)
}

// KMSClientFactory returns a client for region. An empty region selects the
// client's default region. Construction and caching belong to the factory.
type KMSClientFactory func(ctx context.Context, region string) (KMSClient, error)

// Keeper unwraps key material through a gocloud.dev secrets keeper.
type Keeper interface {
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KeeperOpener opens a Keeper for a gocloud.dev secrets URL.
type KeeperOpener interface {
	OpenKeeper(ctx context.Context, keyURI string) (Keeper, error)
}
