package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"gocloud.dev/secrets"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// keeperOpener implements KeeperOpener using gocloud.dev/secrets.
type keeperOpener struct{}

// NewKeeperOpener creates a KeeperOpener backed by gocloud.dev/secrets.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func NewKeeperOpener() KeeperOpener {
	return &keeperOpener{}
}

// OpenKeeper opens a *secrets.Keeper for keyURI.
func (k *keeperOpener) OpenKeeper(ctx context.Context, keyURI string) (Keeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// GoCloudKeyManager unwraps key_ciphertext with the keeper addressed by the
// entry's key_id URL. Keeper protocols carry no per-call encryption context,
// so unlike KMSKeyManager the secret name is not bound to the data key.
type GoCloudKeyManager struct {
	opener KeeperOpener
	logger *slog.Logger
}

// NewGoCloudKeyManager creates a GoCloudKeyManager.
func NewGoCloudKeyManager(opener KeeperOpener, logger *slog.Logger) *GoCloudKeyManager {
	return &GoCloudKeyManager{opener: opener, logger: logger}
}

// Resolve returns the plaintext data key for entry.
func (m *GoCloudKeyManager) Resolve(ctx context.Context, name string, entry biscuitDomain.Entry) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(entry.KeyCiphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: key_ciphertext: %v", biscuitDomain.ErrKeyResolution, err)
	}

	keeper, err := m.opener.OpenKeeper(ctx, entry.KeyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", biscuitDomain.ErrKeyResolution, err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			m.logger.Warn("failed to close KMS keeper", slog.String("secret", name), slog.Any("error", closeErr))
		}
	}()

	key, err := keeper.Decrypt(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("%w: keeper decrypt: %v", biscuitDomain.ErrKeyResolution, err)
	}
	return bytes.Clone(key), nil
}
