package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"golang.org/x/sync/singleflight"
)

// kmsAPI abstracts the AWS KMS operations for testability.
type kmsAPI interface {
	Decrypt(ctx context.Context, params *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}

// awsKMSClient adapts the AWS SDK to KMSClient.
type awsKMSClient struct {
	api kmsAPI
}

// Decrypt calls the AWS KMS Decrypt API. The key is identified by the blob itself.
func (c *awsKMSClient) Decrypt(
	ctx context.Context,
	ciphertextBlob []byte,
	encryptionContext map[string]string,
) ([]byte, error) {
	out, err := c.api.Decrypt(ctx, &kms.DecryptInput{
		CiphertextBlob:    ciphertextBlob,
		EncryptionContext: encryptionContext,
	})
	if err != nil {
		return nil, fmt.Errorf("aws-kms: decrypt failed: %w", err)
	}
	return out.Plaintext, nil
}

// AWSKMSOptions configures AWSKMSClientFactory.
type AWSKMSOptions struct {
	// DefaultRegion is used when the key ARN carries no region. When empty the
	// SDK default chain (AWS_REGION, shared config) decides.
	DefaultRegion string
	// Endpoint overrides the KMS endpoint, e.g. for localstack.
	Endpoint string
}

// AWSKMSClientFactory builds one AWS KMS client per region and reuses it.
type AWSKMSClientFactory struct {
	opts    AWSKMSOptions
	newAPI  func(ctx context.Context, region string) (kmsAPI, error)
	group   singleflight.Group
	mu      sync.Mutex
	clients map[string]KMSClient
}

// NewAWSKMSClientFactory creates an AWSKMSClientFactory.
func NewAWSKMSClientFactory(opts AWSKMSOptions) *AWSKMSClientFactory {
	f := &AWSKMSClientFactory{
		opts:    opts,
		clients: make(map[string]KMSClient),
	}
	f.newAPI = f.loadAPI
	return f
}

// Client returns the cached client for region, creating it on first use.
// Concurrent first calls for the same region share one construction.
func (f *AWSKMSClientFactory) Client(ctx context.Context, region string) (KMSClient, error) {
	if region == "" {
		region = f.opts.DefaultRegion
	}

	f.mu.Lock()
	client, ok := f.clients[region]
	f.mu.Unlock()
	if ok {
		return client, nil
	}

	v, err, _ := f.group.Do(region, func() (any, error) {
		api, err := f.newAPI(ctx, region)
		if err != nil {
			return nil, err
		}
		c := &awsKMSClient{api: api}

		f.mu.Lock()
		f.clients[region] = c
		f.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(KMSClient), nil
}

// Factory returns Client as a KMSClientFactory.
func (f *AWSKMSClientFactory) Factory() KMSClientFactory {
	return f.Client
}

func (f *AWSKMSClientFactory) loadAPI(ctx context.Context, region string) (kmsAPI, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws-kms: failed to load AWS config: %w", err)
	}

	return kms.NewFromConfig(awsCfg, func(o *kms.Options) {
		if f.opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(f.opts.Endpoint)
		}
	}), nil
}
