package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Network represents a registered blockchain network configuration.
// chain_id is globally unique across all rows, including inactive ones:
// a soft-deleted network still reserves its chain id.
type Network struct {
	ID                   uuid.UUID `json:"id"`
	ChainID              int64     `json:"chainId"`
	Name                 string    `json:"name"`
	RPCURL               string    `json:"rpcUrl"`
	OtherRPCURLs         []string  `json:"otherRpcUrls"`
	TestNet              bool      `json:"testNet"`
	BlockExplorerURL     string    `json:"blockExplorerUrl"`
	FeeMultiplier        float64   `json:"feeMultiplier"`
	GasLimitMultiplier   float64   `json:"gasLimitMultiplier"`
	Active               bool      `json:"active"`
	DefaultSignerAddress string    `json:"defaultSignerAddress"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// CreateNetworkData carries the caller-supplied fields for a new network.
// ID and timestamps are assigned by the store.
type CreateNetworkData struct {
	ChainID              int64    `json:"chainId"`
	Name                 string   `json:"name"`
	RPCURL               string   `json:"rpcUrl"`
	OtherRPCURLs         []string `json:"otherRpcUrls"`
	TestNet              bool     `json:"testNet"`
	BlockExplorerURL     string   `json:"blockExplorerUrl"`
	FeeMultiplier        float64  `json:"feeMultiplier"`
	GasLimitMultiplier   float64  `json:"gasLimitMultiplier"`
	Active               bool     `json:"active"`
	DefaultSignerAddress string   `json:"defaultSignerAddress"`
}

// UpdateNetworkData carries a partial update. Invalid null values and a nil
// OtherRPCURLs slice mean "leave the stored value untouched"; a full update
// submits every field as valid.
type UpdateNetworkData struct {
	ChainID              null.Int64   `json:"chainId"`
	Name                 null.String  `json:"name"`
	RPCURL               null.String  `json:"rpcUrl"`
	OtherRPCURLs         []string     `json:"otherRpcUrls"`
	TestNet              null.Bool    `json:"testNet"`
	BlockExplorerURL     null.String  `json:"blockExplorerUrl"`
	FeeMultiplier        null.Float64 `json:"feeMultiplier"`
	GasLimitMultiplier   null.Float64 `json:"gasLimitMultiplier"`
	Active               null.Bool    `json:"active"`
	DefaultSignerAddress null.String  `json:"defaultSignerAddress"`
}

// IsEmpty reports whether the update carries no field at all.
func (d *UpdateNetworkData) IsEmpty() bool {
	return !d.ChainID.Valid &&
		!d.Name.Valid &&
		!d.RPCURL.Valid &&
		d.OtherRPCURLs == nil &&
		!d.TestNet.Valid &&
		!d.BlockExplorerURL.Valid &&
		!d.FeeMultiplier.Valid &&
		!d.GasLimitMultiplier.Valid &&
		!d.Active.Valid &&
		!d.DefaultSignerAddress.Valid
}
