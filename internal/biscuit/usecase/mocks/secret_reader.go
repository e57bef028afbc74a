// Package mocks provides mock implementations for testing CLI commands.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	biscuitDomain "github.com/allisson/biscuit/internal/biscuit/domain"
	biscuitUseCase "github.com/allisson/biscuit/internal/biscuit/usecase"
)

// MockSecretReader is a mock implementation of SecretReader for testing.
type MockSecretReader struct {
	mock.Mock
}

// Update mocks the Update method of SecretReader.
func (m *MockSecretReader) Update(entries biscuitDomain.Entries) biscuitUseCase.SecretReader {
	m.Called(entries)
	return m
}

// Get mocks the Get method of SecretReader.
func (m *MockSecretReader) Get(ctx context.Context, name string) ([]byte, bool, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

// Resolve mocks the Resolve method of SecretReader.
func (m *MockSecretReader) Resolve(ctx context.Context, name string) (*biscuitDomain.Resolution, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*biscuitDomain.Resolution), args.Error(1)
}

// Names mocks the Names method of SecretReader.
func (m *MockSecretReader) Names() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
