package service

import (
	"fmt"
	"sort"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
)

// KeyManagerRegistry maps key manager identifiers to implementations.
type KeyManagerRegistry struct {
	managers map[biscuitDomain.KeyManagerID]KeyManager
}

// NewKeyManagerRegistry creates an empty registry.
func NewKeyManagerRegistry() *KeyManagerRegistry {
	return &KeyManagerRegistry{managers: make(map[biscuitDomain.KeyManagerID]KeyManager)}
}

// Register adds or replaces the key manager for id.
func (r *KeyManagerRegistry) Register(id biscuitDomain.KeyManagerID, km KeyManager) *KeyManagerRegistry {
	r.managers[id] = km
	return r
}

// Lookup returns the key manager registered for id or ErrUnknownKeyManager.
func (r *KeyManagerRegistry) Lookup(id biscuitDomain.KeyManagerID) (KeyManager, error) {
	km, ok := r.managers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", biscuitDomain.ErrUnknownKeyManager, id)
	}
	return km, nil
}

// IDs returns the registered identifiers in lexical order.
func (r *KeyManagerRegistry) IDs() []biscuitDomain.KeyManagerID {
	ids := make([]biscuitDomain.KeyManagerID, 0, len(r.managers))
	for id := range r.managers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
