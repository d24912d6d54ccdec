package repositories

import (
	"context"

	"github.com/google/uuid"
	"network-registry.backend/internal/domain/entities"
)

// NetworkRepository defines network registry data operations.
//
// Absent rows are not errors: FindByID, FindByChainID and Update return
// (nil, nil) and SoftDelete returns (false, nil) when no row matches.
// Create and Update translate a chain_id unique-constraint violation into
// the conflict AppError, closing the race left open by pre-checks.
type NetworkRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Network, error)
	FindByChainID(ctx context.Context, chainID int64) (*entities.Network, error)
	FindAllActive(ctx context.Context) ([]*entities.Network, error)
	Create(ctx context.Context, data *entities.CreateNetworkData) (*entities.Network, error)
	Update(ctx context.Context, id uuid.UUID, data *entities.UpdateNetworkData) (*entities.Network, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByChainID(ctx context.Context, chainID int64, excludeID *uuid.UUID) (bool, error)
}
