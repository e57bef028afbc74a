package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
)

// Biscuit is the decryption engine. It owns the algorithm and key manager
// registries and the table of secret entries.
//
// A secret may carry several candidate entries, for instance the same value
// encrypted under an old and a new key while the key rotates. Candidates are
// tried in stored order and the first one that decrypts wins. Per-candidate
// failures (bad base64, unreachable key service, authentication failure) are
// logged and skipped; exhausting every candidate is not an error.
type Biscuit struct {
	algorithms AlgorithmRegistry
	managers   KeyManagerRegistry
	entries    biscuitDomain.Entries
	logger     *slog.Logger
}

// NewBiscuit creates an engine with an empty entries table.
func NewBiscuit(algorithms AlgorithmRegistry, managers KeyManagerRegistry, logger *slog.Logger) *Biscuit {
	return &Biscuit{
		algorithms: algorithms,
		managers:   managers,
		entries:    make(biscuitDomain.Entries),
		logger:     logger,
	}
}

// Update merges entries into the table. No validation happens here; broken
// entries surface when their secret is read.
func (b *Biscuit) Update(entries biscuitDomain.Entries) SecretReader {
	b.entries.Merge(entries)
	return b
}

// Names returns the secret names in lexical order.
func (b *Biscuit) Names() []string {
	return b.entries.Names()
}

// Get returns the plaintext of name.
func (b *Biscuit) Get(ctx context.Context, name string) ([]byte, bool, error) {
	resolution, err := b.Resolve(ctx, name)
	if err != nil {
		return nil, false, err
	}
	return resolution.Plaintext, resolution.Found, nil
}

// Resolve tries the candidates of name in order and returns the first
// plaintext together with the failures of the candidates skipped before it.
func (b *Biscuit) Resolve(ctx context.Context, name string) (*biscuitDomain.Resolution, error) {
	candidates, ok := b.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", biscuitDomain.ErrUnknownSecret, name)
	}

	resolution := &biscuitDomain.Resolution{Name: name}
	for i, entry := range candidates {
		plaintext, err := b.decrypt(ctx, name, entry)
		if err == nil {
			resolution.Plaintext = plaintext
			resolution.Found = true
			return resolution, nil
		}
		if !biscuitDomain.IsCandidateFailure(err) {
			return nil, fmt.Errorf("secret %q candidate %d: %w", name, i, err)
		}

		b.logger.WarnContext(ctx, "failed to decrypt candidate",
			slog.String("secret", name),
			slog.Int("candidate", i),
			slog.String("algorithm", string(entry.Algorithm)),
			slog.String("key_manager", string(entry.KeyManager)),
			slog.Any("error", err),
		)
		resolution.Failures = append(resolution.Failures, biscuitDomain.CandidateFailure{
			Index:      i,
			Algorithm:  entry.Algorithm,
			KeyManager: entry.KeyManager,
			Err:        err,
		})
	}

	return resolution, nil
}

// decrypt runs a single candidate: key first, then ciphertext.
func (b *Biscuit) decrypt(ctx context.Context, name string, entry biscuitDomain.Entry) ([]byte, error) {
	alg, err := b.algorithms.Lookup(entry.Algorithm)
	if err != nil {
		return nil, err
	}

	var key []byte
	if alg.RequiresKey() {
		manager, err := b.managers.Lookup(entry.KeyManager)
		if err != nil {
			return nil, err
		}
		resolved, err := manager.Resolve(ctx, name, entry)
		if err != nil {
			return nil, err
		}
		// Only the engine's own copy is wiped; the manager may still hold resolved.
		key = bytes.Clone(resolved)
		defer biscuitDomain.Zero(key)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(entry.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", biscuitDomain.ErrCiphertextDecode, err)
	}

	return alg.Decrypt(key, ciphertext)
}
