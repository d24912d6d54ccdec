package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"network-registry.backend/internal/domain/entities"
	domainerrors "network-registry.backend/internal/domain/errors"
	"network-registry.backend/internal/domain/repositories"
	"network-registry.backend/internal/infrastructure/models"
	"network-registry.backend/pkg/logger"
	"network-registry.backend/pkg/utils"
)

const pgUniqueViolation = "23505"

// networkRepo implements repositories.NetworkRepository
type networkRepo struct {
	db *gorm.DB
}

// NewNetworkRepository creates a new network repository
func NewNetworkRepository(db *gorm.DB) repositories.NetworkRepository {
	return &networkRepo{db: db}
}

// FindByID gets a network by ID, (nil, nil) when absent
func (r *networkRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Network, error) {
	var m models.Network
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error(ctx, "Error finding network by id", zap.String("networkId", id.String()), zap.Error(err))
		return nil, err
	}
	return r.toEntity(&m), nil
}

// FindByChainID gets a network by chain id, (nil, nil) when absent.
// Inactive rows are returned too: the chain id stays reserved after a
// soft delete.
func (r *networkRepo) FindByChainID(ctx context.Context, chainID int64) (*entities.Network, error) {
	var m models.Network
	if err := r.db.WithContext(ctx).Where("chain_id = ?", chainID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error(ctx, "Error finding network by chainId", zap.Int64("chainId", chainID), zap.Error(err))
		return nil, err
	}
	return r.toEntity(&m), nil
}

// FindAllActive gets all active networks ordered by name ascending
func (r *networkRepo) FindAllActive(ctx context.Context) ([]*entities.Network, error) {
	var ms []models.Network
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("name asc").Find(&ms).Error; err != nil {
		logger.Error(ctx, "Error finding active networks", zap.Error(err))
		return nil, err
	}

	networks := make([]*entities.Network, 0, len(ms))
	for _, m := range ms {
		model := m
		networks = append(networks, r.toEntity(&model))
	}
	return networks, nil
}

// Create persists a new network, assigning its id and timestamps
func (r *networkRepo) Create(ctx context.Context, data *entities.CreateNetworkData) (*entities.Network, error) {
	now := time.Now().UTC()
	m := &models.Network{
		ID:                   utils.GenerateUUIDv7(),
		ChainID:              data.ChainID,
		Name:                 data.Name,
		RPCURL:               data.RPCURL,
		OtherRPCURLs:         encodeRPCURLs(data.OtherRPCURLs),
		TestNet:              data.TestNet,
		BlockExplorerURL:     data.BlockExplorerURL,
		FeeMultiplier:        data.FeeMultiplier,
		GasLimitMultiplier:   data.GasLimitMultiplier,
		Active:               data.Active,
		DefaultSignerAddress: data.DefaultSignerAddress,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			logger.Warn(ctx, "Unique constraint violation during network creation", zap.Int64("chainId", data.ChainID))
			return nil, domainerrors.ChainIDConflict(data.ChainID)
		}
		logger.Error(ctx, "Error creating network", zap.Int64("chainId", data.ChainID), zap.Error(err))
		return nil, err
	}

	// Read the row back so callers always see exactly what was stored.
	created, err := r.FindByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domainerrors.InternalError(errors.New("failed to retrieve created network"))
	}

	logger.Info(ctx, "Network created", zap.String("networkId", m.ID.String()), zap.Int64("chainId", data.ChainID))
	return created, nil
}

// Update applies the fields present in data, bumps updated_at and returns
// the fresh row. (nil, nil) signals no such id.
func (r *networkRepo) Update(ctx context.Context, id uuid.UUID, data *entities.UpdateNetworkData) (*entities.Network, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if data.ChainID.Valid {
		updates["chain_id"] = data.ChainID.Int64
	}
	if data.Name.Valid {
		updates["name"] = data.Name.String
	}
	if data.RPCURL.Valid {
		updates["rpc_url"] = data.RPCURL.String
	}
	if data.OtherRPCURLs != nil {
		updates["other_rpc_urls"] = encodeRPCURLs(data.OtherRPCURLs)
	}
	if data.TestNet.Valid {
		updates["test_net"] = data.TestNet.Bool
	}
	if data.BlockExplorerURL.Valid {
		updates["block_explorer_url"] = data.BlockExplorerURL.String
	}
	if data.FeeMultiplier.Valid {
		updates["fee_multiplier"] = data.FeeMultiplier.Float64
	}
	if data.GasLimitMultiplier.Valid {
		updates["gas_limit_multiplier"] = data.GasLimitMultiplier.Float64
	}
	if data.Active.Valid {
		updates["active"] = data.Active.Bool
	}
	if data.DefaultSignerAddress.Valid {
		updates["default_signer_address"] = data.DefaultSignerAddress.String
	}

	result := r.db.WithContext(ctx).Model(&models.Network{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) && data.ChainID.Valid {
			logger.Warn(ctx, "Unique constraint violation during network update",
				zap.String("networkId", id.String()), zap.Int64("chainId", data.ChainID.Int64))
			return nil, domainerrors.ChainIDConflict(data.ChainID.Int64)
		}
		logger.Error(ctx, "Error updating network", zap.String("networkId", id.String()), zap.Error(result.Error))
		return nil, result.Error
	}

	updated, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Network updated", zap.String("networkId", id.String()))
	return updated, nil
}

// SoftDelete marks the network inactive; false means no such id
func (r *networkRepo) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Network{}).Where("id = ?", id).Updates(map[string]interface{}{
		"active":     false,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		logger.Error(ctx, "Error soft deleting network", zap.String("networkId", id.String()), zap.Error(result.Error))
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	logger.Info(ctx, "Network soft deleted", zap.String("networkId", id.String()))
	return true, nil
}

// ExistsByChainID reports whether any row, active or not, holds the chain id.
// excludeID lets a network check uniqueness against all other rows.
func (r *networkRepo) ExistsByChainID(ctx context.Context, chainID int64, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Network{}).Where("chain_id = ?", chainID)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		logger.Error(ctx, "Error checking network existence", zap.Int64("chainId", chainID), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// toEntity converts GORM model to Domain Entity
func (r *networkRepo) toEntity(m *models.Network) *entities.Network {
	return &entities.Network{
		ID:                   m.ID,
		ChainID:              m.ChainID,
		Name:                 m.Name,
		RPCURL:               m.RPCURL,
		OtherRPCURLs:         decodeRPCURLs(m.OtherRPCURLs),
		TestNet:              m.TestNet,
		BlockExplorerURL:     m.BlockExplorerURL,
		FeeMultiplier:        m.FeeMultiplier,
		GasLimitMultiplier:   m.GasLimitMultiplier,
		Active:               m.Active,
		DefaultSignerAddress: m.DefaultSignerAddress,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func encodeRPCURLs(urls []string) string {
	if urls == nil {
		urls = []string{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeRPCURLs tolerates malformed stored data by decoding to an empty list
func decodeRPCURLs(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		return []string{}
	}
	if urls == nil {
		return []string{}
	}
	return urls
}

// isUniqueViolation recognizes a chain_id collision surfaced by the database,
// across the postgres driver, gorm's translated error and the sqlite used in
// tests.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value")
}
