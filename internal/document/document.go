// Package document loads biscuit secrets documents.
//
// A document is a YAML mapping from secret name to the list of candidate
// entries for that secret:
//
//	launch_codes:
//	  - key_id: arn:aws:kms:us-west-1:123456789012:key/37793df5-...
//	    key_manager: kms
//	    algorithm: aesgcm256
//	    key_ciphertext: AQEDAHi...
//	    ciphertext: 3nV9...
//
// Top-level names starting with an underscore (such as _keys) hold
// bookkeeping for the writer and are skipped.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
	apperrors "github.com/allisson/biscuit/internal/errors"
)

// ErrInvalidDocument indicates the document is not a mapping of names to entry lists.
var ErrInvalidDocument = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid secrets document")

const reservedPrefix = "_"

// Load parses a secrets document from r. Entry contents are not validated.
func Load(r io.Reader) (biscuitDomain.Entries, error) {
	var raw map[string][]biscuitDomain.Entry
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return biscuitDomain.Entries{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	entries := make(biscuitDomain.Entries, len(raw))
	for name, candidates := range raw {
		if strings.HasPrefix(name, reservedPrefix) {
			continue
		}
		entries[name] = candidates
	}
	return entries, nil
}

// LoadFile parses the secrets document at path.
func LoadFile(path string) (biscuitDomain.Entries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open secrets document: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	entries, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}
