package entities

import (
	"time"
)

// NetworkEventType identifies the kind of registry change an event describes
type NetworkEventType string

const (
	NetworkEventCreated NetworkEventType = "NETWORK_CREATED"
	NetworkEventUpdated NetworkEventType = "NETWORK_UPDATED"
	NetworkEventDeleted NetworkEventType = "NETWORK_DELETED"
)

// NetworkEventData is the flattened network snapshot carried on the wire
type NetworkEventData struct {
	ID                   string   `json:"id"`
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

// NetworkEvent is the wire-stable change notification emitted after mutations
type NetworkEvent struct {
	EventType     NetworkEventType `json:"eventType"`
	Timestamp     string           `json:"timestamp"`
	CorrelationID string           `json:"correlationId"`
	Data          NetworkEventData `json:"data"`
}

// ToEventData flattens a network into its event snapshot
func (n *Network) ToEventData() NetworkEventData {
	urls := n.OtherRPCURLs
	if urls == nil {
		urls = []string{}
	}
	return NetworkEventData{
		ID:                   n.ID.String(),
		ChainID:              n.ChainID,
		Name:                 n.Name,
		RPCURL:               n.RPCURL,
		OtherRPCURLs:         urls,
		TestNet:              n.TestNet,
		BlockExplorerURL:     n.BlockExplorerURL,
		FeeMultiplier:        n.FeeMultiplier,
		GasLimitMultiplier:   n.GasLimitMultiplier,
		Active:               n.Active,
		DefaultSignerAddress: n.DefaultSignerAddress,
	}
}

// NewNetworkEvent builds an event for the given network snapshot
func NewNetworkEvent(eventType NetworkEventType, correlationID string, network *Network) *NetworkEvent {
	return &NetworkEvent{
		EventType:     eventType,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		CorrelationID: correlationID,
		Data:          network.ToEventData(),
	}
}
