package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"network-registry.backend/internal/domain/entities"
)

// Mock NetworkRepository
type MockNetworkRepository struct {
	mock.Mock
}

func (m *MockNetworkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Network, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Network), args.Error(1)
}

func (m *MockNetworkRepository) FindByChainID(ctx context.Context, chainID int64) (*entities.Network, error) {
	args := m.Called(ctx, chainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Network), args.Error(1)
}

func (m *MockNetworkRepository) FindAllActive(ctx context.Context) ([]*entities.Network, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Network), args.Error(1)
}

func (m *MockNetworkRepository) Create(ctx context.Context, data *entities.CreateNetworkData) (*entities.Network, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Network), args.Error(1)
}

func (m *MockNetworkRepository) Update(ctx context.Context, id uuid.UUID, data *entities.UpdateNetworkData) (*entities.Network, error) {
	args := m.Called(ctx, id, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Network), args.Error(1)
}

func (m *MockNetworkRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockNetworkRepository) ExistsByChainID(ctx context.Context, chainID int64, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, chainID, excludeID)
	return args.Bool(0), args.Error(1)
}

// Mock NetworkEventPublisher
type MockNetworkEventPublisher struct {
	mock.Mock
}

func (m *MockNetworkEventPublisher) Publish(ctx context.Context, event *entities.NetworkEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
