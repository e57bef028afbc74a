package domain

import (
	"github.com/allisson/biscuit/internal/errors"
)

// Resolution errors.
//
// ErrUnknownSecret, ErrUnknownAlgorithm and ErrUnknownKeyManager describe a
// caller or configuration mistake and abort the lookup. The remaining errors
// are expected while keys rotate: the engine records them against the
// candidate that produced them and moves on to the next one.
var (
	// ErrUnknownSecret indicates the requested name is absent from the entries table.
	ErrUnknownSecret = errors.Wrap(errors.ErrNotFound, "unknown secret")

	// ErrUnknownAlgorithm indicates an entry names an algorithm that is not registered.
	ErrUnknownAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unknown algorithm")

	// ErrUnknownKeyManager indicates an entry names a key manager that is not registered.
	ErrUnknownKeyManager = errors.Wrap(errors.ErrInvalidInput, "unknown key manager")

	// ErrCiphertextDecode indicates a base64 field of the entry could not be decoded.
	ErrCiphertextDecode = errors.Wrap(errors.ErrInvalidInput, "ciphertext decode failed")

	// ErrMalformedCiphertext indicates the blob is too short for the algorithm framing.
	ErrMalformedCiphertext = errors.Wrap(errors.ErrInvalidInput, "malformed ciphertext")

	// ErrInvalidKeySize indicates the resolved key does not have KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrAuthenticationFailed indicates the AEAD tag or MAC did not verify.
	//
	// This is the normal outcome for a candidate encrypted under a rotated key.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrUnauthorized, "authentication failed")

	// ErrKeyResolution indicates a key manager could not produce key material.
	ErrKeyResolution = errors.Wrap(errors.ErrUnavailable, "key resolution failed")
)

// IsCandidateFailure reports whether err belongs to the categories the
// engine tolerates per candidate.
func IsCandidateFailure(err error) bool {
	for _, target := range []error{
		ErrCiphertextDecode,
		ErrMalformedCiphertext,
		ErrInvalidKeySize,
		ErrAuthenticationFailed,
		ErrKeyResolution,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// FailureReason returns a short label for a candidate failure, suitable for
// metrics, or "other" when err is not a candidate failure.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, ErrCiphertextDecode):
		return "decode"
	case errors.Is(err, ErrMalformedCiphertext):
		return "malformed"
	case errors.Is(err, ErrInvalidKeySize):
		return "key_size"
	case errors.Is(err, ErrAuthenticationFailed):
		return "authentication"
	case errors.Is(err, ErrKeyResolution):
		return "key_resolution"
	default:
		return "other"
	}
}
