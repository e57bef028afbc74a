package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
)

// KMSKeyManager unwraps the data key stored in an entry's key_ciphertext
// with a cloud key management service.
//
// The region comes from the key_id ARN. Every decrypt call binds the secret
// name through the SecretName encryption context, so a data key cannot be
// replayed under another name.
type KMSKeyManager struct {
	factory KMSClientFactory
}

// NewKMSKeyManager creates a KMSKeyManager using factory to obtain region clients.
func NewKMSKeyManager(factory KMSClientFactory) *KMSKeyManager {
	return &KMSKeyManager{factory: factory}
}

// Resolve returns the plaintext data key for entry.
func (m *KMSKeyManager) Resolve(ctx context.Context, name string, entry biscuitDomain.Entry) ([]byte, error) {
	// An ARN without a region leaves the choice to the client's default configuration.
	region, _ := biscuitDomain.RegionFromARN(entry.KeyID)

	client, err := m.factory(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("%w: kms client for region %q: %v", biscuitDomain.ErrKeyResolution, region, err)
	}

	blob, err := base64.StdEncoding.DecodeString(entry.KeyCiphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: key_ciphertext: %v", biscuitDomain.ErrKeyResolution, err)
	}

	key, err := client.Decrypt(ctx, blob, map[string]string{
		biscuitDomain.SecretNameContextKey: name,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: kms decrypt: %v", biscuitDomain.ErrKeyResolution, err)
	}
	return bytes.Clone(key), nil
}
