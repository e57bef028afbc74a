package domain

import (
	"fmt"
	"strings"
)

// CandidateFailure records why one candidate entry of a secret was skipped.
type CandidateFailure struct {
	Index      int
	Algorithm  AlgorithmID
	KeyManager KeyManagerID
	Err        error
}

// Error implements error.
func (f CandidateFailure) Error() string {
	return fmt.Sprintf("candidate %d (%s): %v", f.Index, f.Algorithm, f.Err)
}

// Unwrap returns the underlying error.
func (f CandidateFailure) Unwrap() error {
	return f.Err
}

// Resolution is the outcome of resolving a secret by name.
//
// When Found is true Plaintext holds the value of the first candidate that
// decrypted, and Failures the candidates tried before it. When Found is
// false every candidate failed and Failures has one record per candidate.
type Resolution struct {
	Name      string
	Plaintext []byte
	Found     bool
	Failures  []CandidateFailure
}

// Err summarizes the failures as a single error, or returns nil when the
// secret was found or had no failures.
func (r *Resolution) Err() error {
	if r == nil || r.Found || len(r.Failures) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		msgs = append(msgs, f.Error())
	}
	return fmt.Errorf("secret %q: no candidate could be decrypted: %s", r.Name, strings.Join(msgs, "; "))
}
