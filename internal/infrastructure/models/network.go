package models

import (
	"time"

	"github.com/google/uuid"
)

// Network is the persistence model for a registered blockchain network.
// The unique index on chain_id spans every row, active or not, so a
// soft-deleted network keeps its chain id reserved at the database level.
// other_rpc_urls is a JSON-encoded string list.
type Network struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChainID              int64     `gorm:"column:chain_id;uniqueIndex;not null"`
	Name                 string    `gorm:"type:varchar(100);not null"`
	RPCURL               string    `gorm:"type:text;column:rpc_url;not null"`
	OtherRPCURLs         string    `gorm:"type:text;column:other_rpc_urls"`
	TestNet              bool      `gorm:"column:test_net;not null"`
	BlockExplorerURL     string    `gorm:"type:text;column:block_explorer_url"`
	FeeMultiplier        float64   `gorm:"not null"`
	GasLimitMultiplier   float64   `gorm:"not null"`
	Active               bool      `gorm:"not null"`
	DefaultSignerAddress string    `gorm:"type:varchar(42)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Network) TableName() string {
	return "networks"
}
