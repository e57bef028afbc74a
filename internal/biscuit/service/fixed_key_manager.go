package service

import (
	"bytes"
	"context"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
)

// FixedKeyManager returns the same key for every entry. It exists to exercise
// the pipeline without a key service and must not be registered in production.
type FixedKeyManager struct {
	key []byte
}

// NewFixedKeyManager creates a FixedKeyManager whose key is 32 'x' bytes,
// the key used by biscuit's testing key manager.
func NewFixedKeyManager() *FixedKeyManager {
	return &FixedKeyManager{key: bytes.Repeat([]byte("x"), biscuitDomain.KeySize)}
}

// Resolve returns a copy of the fixed key.
func (m *FixedKeyManager) Resolve(_ context.Context, _ string, _ biscuitDomain.Entry) ([]byte, error) {
	return bytes.Clone(m.key), nil
}
