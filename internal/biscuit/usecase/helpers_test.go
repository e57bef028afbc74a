package usecase

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/nacl/secretbox"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
	biscuitService "github.com/allisson/biscuit/internal/biscuit/service"
)

// testingKey is the key returned by the testing key manager.
var testingKey = []byte(strings.Repeat("x", 32))

func encryptAESGCM256(t *testing.T, key, plaintext []byte) string {
	t.Helper()
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	aead, err := cipher.NewGCM(block)
	require.NoError(t, err)
	nonce := make([]byte, aead.NonceSize())
	_, err = rand.Read(nonce)
	require.NoError(t, err)

	blob := append(aead.Seal(nil, nonce, plaintext, nil), nonce...)
	return base64.StdEncoding.EncodeToString(blob)
}

func encryptSecretBox(t *testing.T, key, plaintext []byte) string {
	t.Helper()
	var (
		k     [32]byte
		nonce [24]byte
	)
	copy(k[:], key)
	_, err := rand.Read(nonce[:])
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(secretbox.Seal(nonce[:], plaintext, &nonce, &k))
}

// helloEntries mirrors a document holding "hello" under each algorithm.
func helloEntries(t *testing.T) biscuitDomain.Entries {
	t.Helper()
	return biscuitDomain.Entries{
		"aes": {{
			Algorithm:  biscuitDomain.AESGCM256,
			KeyManager: biscuitDomain.Testing,
			Ciphertext: encryptAESGCM256(t, testingKey, []byte("hello")),
		}},
		"secretbox": {{
			Algorithm:  biscuitDomain.SecretBox,
			KeyManager: biscuitDomain.Testing,
			Ciphertext: encryptSecretBox(t, testingKey, []byte("hello")),
		}},
		"none": {{
			Algorithm:  biscuitDomain.None,
			Ciphertext: base64.StdEncoding.EncodeToString([]byte("hello")),
		}},
	}
}

// newTestBiscuit returns an engine with the testing key manager and a
// logger writing to the returned buffer.
func newTestBiscuit() (*Biscuit, *biscuitService.KeyManagerRegistry, *bytes.Buffer) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	managers := biscuitService.NewKeyManagerRegistry().
		Register(biscuitDomain.Testing, biscuitService.NewFixedKeyManager())
	return NewBiscuit(biscuitService.NewAlgorithmRegistry(), managers, logger), managers, &logs
}

// failingKeyManager always fails key resolution.
type failingKeyManager struct {
	calls int
}

func (f *failingKeyManager) Resolve(context.Context, string, biscuitDomain.Entry) ([]byte, error) {
	f.calls++
	return nil, errors.Join(biscuitDomain.ErrKeyResolution, errors.New("AccessDeniedException"))
}

// brokenAlgorithm fails with an error outside the tolerated categories.
type brokenAlgorithm struct{}

func (brokenAlgorithm) RequiresKey() bool { return false }

func (brokenAlgorithm) Decrypt(_, _ []byte) ([]byte, error) {
	return nil, errors.New("hardware fault")
}

func countWarnings(logs *bytes.Buffer) int {
	return strings.Count(logs.String(), "level=WARN")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// stubKMSClient returns a copy of key and records its inputs.
type stubKMSClient struct {
	key     []byte
	blob    []byte
	context map[string]string
}

func (s *stubKMSClient) Decrypt(_ context.Context, blob []byte, encryptionContext map[string]string) ([]byte, error) {
	s.blob = blob
	s.context = encryptionContext
	return bytes.Clone(s.key), nil
}

// cachingKMSClient hands out the same key slice on every Decrypt, like a
// client that memoizes unwrapped data keys.
type cachingKMSClient struct {
	key []byte
}

func (c *cachingKMSClient) Decrypt(context.Context, []byte, map[string]string) ([]byte, error) {
	return c.key, nil
}
