// Package usecase implements the biscuit decryption engine, which resolves a
// secret by trying its candidate entries in order until one decrypts.
package usecase

import (
	"context"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
	biscuitService "github.com/allisson/biscuit/internal/biscuit/service"
)

// AlgorithmRegistry resolves algorithm identifiers.
type AlgorithmRegistry interface {
	Lookup(id biscuitDomain.AlgorithmID) (biscuitService.Algorithm, error)
}

// KeyManagerRegistry resolves key manager identifiers.
type KeyManagerRegistry interface {
	Lookup(id biscuitDomain.KeyManagerID) (biscuitService.KeyManager, error)
}

// SecretReader reads secrets from a table of encrypted entries.
//
// Implementations are not safe for Update concurrent with reads; load the
// table first and read afterwards.
type SecretReader interface {
	// Update merges entries into the table, replacing the candidates of any
	// name already present, and returns the reader for chaining.
	Update(entries biscuitDomain.Entries) SecretReader

	// Get returns the plaintext of the first candidate of name that decrypts.
	// The boolean is false, with a nil error, when every candidate failed.
	// Returns ErrUnknownSecret, ErrUnknownAlgorithm or ErrUnknownKeyManager
	// for lookups that can never succeed.
	Get(ctx context.Context, name string) ([]byte, bool, error)

	// Resolve is like Get but also reports why each skipped candidate failed.
	Resolve(ctx context.Context, name string) (*biscuitDomain.Resolution, error)

	// Names returns the secret names in the table in lexical order.
	Names() []string
}
