// Package domain defines the entities and errors shared by the biscuit
// decryption engine: secret entries, algorithm and key manager identifiers,
// and the outcome of resolving a secret.
package domain

// Field names recognized in an entry record of a secrets document.
const (
	AlgorithmField     = "algorithm"
	KeyManagerField    = "key_manager"
	CiphertextField    = "ciphertext"
	KeyIDField         = "key_id"
	KeyCiphertextField = "key_ciphertext"
)

// AlgorithmID identifies the algorithm an entry was encrypted with.
type AlgorithmID string

const (
	// SecretBox is NaCl secretbox (XSalsa20-Poly1305) with the nonce prefixed to the box.
	SecretBox AlgorithmID = "secretbox"

	// AESGCM256 is AES-256-GCM framed as payload | tag | nonce.
	AESGCM256 AlgorithmID = "aesgcm256"

	// None stores the value in cleartext.
	None AlgorithmID = "none"
)

// KeyManagerID identifies how the key for an entry is obtained.
type KeyManagerID string

const (
	// KMS unwraps key_ciphertext with the cloud key management service
	// in the region named by the key_id ARN.
	KMS KeyManagerID = "kms"

	// GoCloud unwraps key_ciphertext with the gocloud.dev keeper URL in key_id.
	GoCloud KeyManagerID = "gocloud"

	// Testing returns a fixed key. It must never be registered in production.
	Testing KeyManagerID = "testing"
)

// SecretNameContextKey is the encryption context key bound to every data key.
const SecretNameContextKey = "SecretName"

// KeySize is the key length required by every keyed algorithm.
const KeySize = 32
