package service

import (
	"fmt"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
)

// AlgorithmRegistry maps algorithm identifiers to implementations.
//
// The registry is populated at startup and read-only afterwards.
type AlgorithmRegistry struct {
	algorithms map[biscuitDomain.AlgorithmID]Algorithm
}

// NewAlgorithmRegistry creates a registry holding the built-in algorithms:
// secretbox, aesgcm256 and none.
func NewAlgorithmRegistry() *AlgorithmRegistry {
	return &AlgorithmRegistry{
		algorithms: map[biscuitDomain.AlgorithmID]Algorithm{
			biscuitDomain.SecretBox: NewSecretBox(),
			biscuitDomain.AESGCM256: NewAESGCM256(),
			biscuitDomain.None:      NewPlain(),
		},
	}
}

// Register adds or replaces the algorithm for id.
func (r *AlgorithmRegistry) Register(id biscuitDomain.AlgorithmID, alg Algorithm) *AlgorithmRegistry {
	r.algorithms[id] = alg
	return r
}

// Lookup returns the algorithm registered for id or ErrUnknownAlgorithm.
func (r *AlgorithmRegistry) Lookup(id biscuitDomain.AlgorithmID) (Algorithm, error) {
	alg, ok := r.algorithms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", biscuitDomain.ErrUnknownAlgorithm, id)
	}
	return alg, nil
}
