package domain

import (
	"maps"
	"sort"
)

// Entry is one candidate ciphertext for a secret.
//
// Entries are treated as immutable once constructed. Extra carries any
// manager-specific fields the document provides beyond the well-known ones.
type Entry struct {
	Algorithm     AlgorithmID       `yaml:"algorithm"`
	KeyManager    KeyManagerID      `yaml:"key_manager,omitempty"`
	Ciphertext    string            `yaml:"ciphertext"`
	KeyID         string            `yaml:"key_id,omitempty"`
	KeyCiphertext string            `yaml:"key_ciphertext,omitempty"`
	Extra         map[string]string `yaml:",inline"`
}

// Field returns the value of a named field, looking at the well-known
// fields first and Extra afterwards.
func (e Entry) Field(name string) (string, bool) {
	switch name {
	case AlgorithmField:
		return string(e.Algorithm), e.Algorithm != ""
	case KeyManagerField:
		return string(e.KeyManager), e.KeyManager != ""
	case CiphertextField:
		return e.Ciphertext, e.Ciphertext != ""
	case KeyIDField:
		return e.KeyID, e.KeyID != ""
	case KeyCiphertextField:
		return e.KeyCiphertext, e.KeyCiphertext != ""
	}
	v, ok := e.Extra[name]
	return v, ok
}

// Entries maps a secret name to its candidates in the order they should be tried.
type Entries map[string][]Entry

// Merge copies every name of other into e, replacing existing candidate lists.
func (e Entries) Merge(other Entries) {
	maps.Copy(e, other)
}

// Names returns the secret names in lexical order.
func (e Entries) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
