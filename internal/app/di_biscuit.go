package app

import (
	"fmt"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
	biscuitService "github.com/allisson/biscuit/internal/biscuit/service"
	biscuitUseCase "github.com/allisson/biscuit/internal/biscuit/usecase"
)

// AlgorithmRegistry returns the registry of built-in algorithms.
func (c *Container) AlgorithmRegistry() *biscuitService.AlgorithmRegistry {
	c.algorithmRegistryInit.Do(func() {
		c.algorithmRegistry = biscuitService.NewAlgorithmRegistry()
	})
	return c.algorithmRegistry
}

// KMSClientFactory returns the AWS KMS client factory shared by every kms entry.
func (c *Container) KMSClientFactory() *biscuitService.AWSKMSClientFactory {
	c.kmsClientFactoryInit.Do(func() {
		c.kmsClientFactory = biscuitService.NewAWSKMSClientFactory(biscuitService.AWSKMSOptions{
			DefaultRegion: c.config.AWSRegion,
			Endpoint:      c.config.AWSKMSEndpoint,
		})
	})
	return c.kmsClientFactory
}

// KeyManagerRegistry returns the key manager registry.
func (c *Container) KeyManagerRegistry() *biscuitService.KeyManagerRegistry {
	c.keyManagerRegistryInit.Do(func() {
		c.keyManagerRegistry = c.initKeyManagerRegistry()
	})
	return c.keyManagerRegistry
}

// SecretReader returns the decryption engine, wrapped with metrics when enabled.
func (c *Container) SecretReader() (biscuitUseCase.SecretReader, error) {
	var err error
	c.secretReaderInit.Do(func() {
		c.secretReader, err = c.initSecretReader()
		if err != nil {
			c.initErrors["secretReader"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["secretReader"]; exists {
		return nil, storedErr
	}
	return c.secretReader, nil
}

// initKeyManagerRegistry registers kms and gocloud, plus testing when enabled.
func (c *Container) initKeyManagerRegistry() *biscuitService.KeyManagerRegistry {
	logger := c.Logger()

	registry := biscuitService.NewKeyManagerRegistry().
		Register(biscuitDomain.KMS, biscuitService.NewKMSKeyManager(c.KMSClientFactory().Factory())).
		Register(biscuitDomain.GoCloud, biscuitService.NewGoCloudKeyManager(biscuitService.NewKeeperOpener(), logger))

	if c.config.TestingKeyManagerEnabled {
		logger.Warn("testing key manager enabled, entries using it are not protected")
		registry.Register(biscuitDomain.Testing, biscuitService.NewFixedKeyManager())
	}

	return registry
}

// initSecretReader creates the engine with all its dependencies.
func (c *Container) initSecretReader() (biscuitUseCase.SecretReader, error) {
	baseReader := biscuitUseCase.NewBiscuit(c.AlgorithmRegistry(), c.KeyManagerRegistry(), c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for secret reader: %w", err)
		}
		return biscuitUseCase.NewSecretReaderWithMetrics(baseReader, businessMetrics), nil
	}

	return baseReader, nil
}
