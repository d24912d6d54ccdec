package entities

import "github.com/google/uuid"

// NetworkVerification reports whether a stored network's RPC endpoint
// answers eth_chainId with the chain id recorded for the network.
type NetworkVerification struct {
	NetworkID       uuid.UUID `json:"networkId"`
	RPCURL          string    `json:"rpcUrl"`
	ExpectedChainID int64     `json:"expectedChainId"`
	ActualChainID   int64     `json:"actualChainId"`
	Match           bool      `json:"match"`
	Error           string    `json:"error,omitempty"`
}
