package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"network-registry.backend/internal/domain/entities"
	domainerrors "network-registry.backend/internal/domain/errors"
	"network-registry.backend/internal/domain/repositories"
	"network-registry.backend/internal/infrastructure/blockchain"
	"network-registry.backend/pkg/logger"
)

// NetworkUsecase orchestrates network registry operations: uniqueness
// enforcement, lifecycle transitions and event publication sit here,
// on top of a storage-agnostic repository.
type NetworkUsecase struct {
	networkRepo    repositories.NetworkRepository
	eventPublisher repositories.NetworkEventPublisher
	clientFactory  *blockchain.ClientFactory
}

func NewNetworkUsecase(
	networkRepo repositories.NetworkRepository,
	eventPublisher repositories.NetworkEventPublisher,
	clientFactory *blockchain.ClientFactory,
) *NetworkUsecase {
	return &NetworkUsecase{
		networkRepo:    networkRepo,
		eventPublisher: eventPublisher,
		clientFactory:  clientFactory,
	}
}

// CreateNetwork registers a new network. The chain id must not be in
// use by any existing network, active or not.
func (u *NetworkUsecase) CreateNetwork(ctx context.Context, data *entities.CreateNetworkData) (*entities.Network, error) {
	logger.Info(ctx, "Creating network",
		zap.Int64("chainId", data.ChainID),
		zap.String("name", data.Name))

	exists, err := u.networkRepo.ExistsByChainID(ctx, data.ChainID, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Warn(ctx, "Network creation rejected, chain id already registered",
			zap.Int64("chainId", data.ChainID))
		return nil, domainerrors.ChainIDConflict(data.ChainID)
	}

	network, err := u.networkRepo.Create(ctx, data)
	if err != nil {
		return nil, err
	}

	u.publishEvent(ctx, entities.NetworkEventCreated, network)
	return network, nil
}

// GetNetworkByID returns a network regardless of its active flag.
func (u *NetworkUsecase) GetNetworkByID(ctx context.Context, id uuid.UUID) (*entities.Network, error) {
	network, err := u.networkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if network == nil {
		return nil, domainerrors.NetworkNotFound(id.String())
	}
	return network, nil
}

// GetActiveNetworks lists active networks ordered by name.
func (u *NetworkUsecase) GetActiveNetworks(ctx context.Context) ([]*entities.Network, error) {
	return u.networkRepo.FindAllActive(ctx)
}

// UpdateNetwork replaces every mutable field of a network.
func (u *NetworkUsecase) UpdateNetwork(ctx context.Context, id uuid.UUID, data *entities.UpdateNetworkData) (*entities.Network, error) {
	logger.Info(ctx, "Updating network", zap.String("networkId", id.String()))
	return u.applyUpdate(ctx, id, data)
}

// PartialUpdateNetwork applies only the fields present in data. An
// empty patch is rejected before touching storage.
func (u *NetworkUsecase) PartialUpdateNetwork(ctx context.Context, id uuid.UUID, data *entities.UpdateNetworkData) (*entities.Network, error) {
	if data.IsEmpty() {
		return nil, domainerrors.BadRequest("No fields provided for update")
	}
	logger.Info(ctx, "Patching network", zap.String("networkId", id.String()))
	return u.applyUpdate(ctx, id, data)
}

func (u *NetworkUsecase) applyUpdate(ctx context.Context, id uuid.UUID, data *entities.UpdateNetworkData) (*entities.Network, error) {
	existing, err := u.networkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domainerrors.NetworkNotFound(id.String())
	}

	// Uniqueness is only re-checked when the patch actually moves the
	// network to a different chain id.
	if data.ChainID.Valid && data.ChainID.Int64 != existing.ChainID {
		taken, err := u.networkRepo.ExistsByChainID(ctx, data.ChainID.Int64, &id)
		if err != nil {
			return nil, err
		}
		if taken {
			logger.Warn(ctx, "Network update rejected, chain id already registered",
				zap.Int64("chainId", data.ChainID.Int64))
			return nil, domainerrors.ChainIDConflict(data.ChainID.Int64)
		}
	}

	updated, err := u.networkRepo.Update(ctx, id, data)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domainerrors.NetworkNotFound(id.String())
	}

	u.publishEvent(ctx, entities.NetworkEventUpdated, updated)
	return updated, nil
}

// DeleteNetwork marks a network inactive. The row survives and its
// chain id stays reserved.
func (u *NetworkUsecase) DeleteNetwork(ctx context.Context, id uuid.UUID) error {
	existing, err := u.networkRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domainerrors.NetworkNotFound(id.String())
	}

	deleted, err := u.networkRepo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.NetworkNotFound(id.String())
	}

	logger.Info(ctx, "Network deactivated",
		zap.String("networkId", id.String()),
		zap.Int64("chainId", existing.ChainID))

	snapshot := *existing
	snapshot.Active = false
	u.publishEvent(ctx, entities.NetworkEventDeleted, &snapshot)
	return nil
}

// VerifyNetwork dials the network's RPC endpoint and compares the
// chain id the node reports against the one on record. Connectivity
// problems are reported in the result rather than as an error.
func (u *NetworkUsecase) VerifyNetwork(ctx context.Context, id uuid.UUID) (*entities.NetworkVerification, error) {
	network, err := u.GetNetworkByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &entities.NetworkVerification{
		NetworkID:       network.ID,
		RPCURL:          network.RPCURL,
		ExpectedChainID: network.ChainID,
	}

	client, err := u.clientFactory.GetEVMClient(network.RPCURL)
	if err != nil {
		logger.Warn(ctx, "Network verification failed to reach RPC endpoint",
			zap.String("networkId", id.String()),
			zap.Error(err))
		result.Error = err.Error()
		return result, nil
	}

	result.ActualChainID = client.ChainID().Int64()
	result.Match = result.ActualChainID == network.ChainID
	if !result.Match {
		logger.Warn(ctx, "Network chain id mismatch",
			zap.String("networkId", id.String()),
			zap.Int64("expected", result.ExpectedChainID),
			zap.Int64("actual", result.ActualChainID))
	}
	return result, nil
}

// publishEvent delivers a domain event on a best-effort basis. Event
// transport failures never fail the operation that triggered them.
func (u *NetworkUsecase) publishEvent(ctx context.Context, eventType entities.NetworkEventType, network *entities.Network) {
	if u.eventPublisher == nil {
		return
	}
	event := entities.NewNetworkEvent(eventType, logger.CorrelationID(ctx), network)
	if err := u.eventPublisher.Publish(ctx, event); err != nil {
		logger.Error(ctx, "Network event delivery failed",
			zap.String("eventType", string(eventType)),
			zap.String("networkId", network.ID.String()),
			zap.Error(err))
	}
}
