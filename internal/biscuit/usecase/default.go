package usecase

import (
	"log/slog"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
	biscuitService "github.com/allisson/biscuit/internal/biscuit/service"
)

// NewDefault creates an engine with the built-in algorithms and the kms key
// manager backed by factory. Additional key managers can be registered on
// the returned registry before entries are read.
func NewDefault(
	factory biscuitService.KMSClientFactory,
	logger *slog.Logger,
) (*Biscuit, *biscuitService.KeyManagerRegistry) {
	managers := biscuitService.NewKeyManagerRegistry().
		Register(biscuitDomain.KMS, biscuitService.NewKMSKeyManager(factory))
	return NewBiscuit(biscuitService.NewAlgorithmRegistry(), managers, logger), managers
}
