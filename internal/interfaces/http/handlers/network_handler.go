package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"network-registry.backend/internal/domain/entities"
	"network-registry.backend/internal/interfaces/http/response"
	"network-registry.backend/internal/usecases"
)

// NetworkHandler handles network registry endpoints
type NetworkHandler struct {
	networkUsecase *usecases.NetworkUsecase
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(networkUsecase *usecases.NetworkUsecase) *NetworkHandler {
	return &NetworkHandler{networkUsecase: networkUsecase}
}

type createNetworkRequest struct {
	ChainID              int64    `json:"chainId" binding:"required,min=1"`
	Name                 string   `json:"name" binding:"required"`
	RPCURL               string   `json:"rpcUrl" binding:"required,url"`
	OtherRPCURLs         []string `json:"otherRpcUrls" binding:"omitempty,max=10,dive,url"`
	TestNet              bool     `json:"testNet"`
	BlockExplorerURL     string   `json:"blockExplorerUrl" binding:"omitempty,url"`
	FeeMultiplier        *float64 `json:"feeMultiplier" binding:"required,gte=0"`
	GasLimitMultiplier   *float64 `json:"gasLimitMultiplier" binding:"required,gte=0"`
	Active               *bool    `json:"active"`
	DefaultSignerAddress string   `json:"defaultSignerAddress" binding:"required,eth_addr"`
}

type updateNetworkRequest struct {
	ChainID              int64    `json:"chainId" binding:"required,min=1"`
	Name                 string   `json:"name" binding:"required"`
	RPCURL               string   `json:"rpcUrl" binding:"required,url"`
	OtherRPCURLs         []string `json:"otherRpcUrls" binding:"omitempty,max=10,dive,url"`
	TestNet              *bool    `json:"testNet" binding:"required"`
	BlockExplorerURL     string   `json:"blockExplorerUrl" binding:"omitempty,url"`
	FeeMultiplier        *float64 `json:"feeMultiplier" binding:"required,gte=0"`
	GasLimitMultiplier   *float64 `json:"gasLimitMultiplier" binding:"required,gte=0"`
	Active               *bool    `json:"active" binding:"required"`
	DefaultSignerAddress string   `json:"defaultSignerAddress" binding:"required,eth_addr"`
}

type patchNetworkRequest struct {
	ChainID              *int64   `json:"chainId" binding:"omitempty,min=1"`
	Name                 *string  `json:"name" binding:"omitempty,min=1"`
	RPCURL               *string  `json:"rpcUrl" binding:"omitempty,url"`
	OtherRPCURLs         []string `json:"otherRpcUrls" binding:"omitempty,max=10,dive,url"`
	TestNet              *bool    `json:"testNet"`
	BlockExplorerURL     *string  `json:"blockExplorerUrl" binding:"omitempty,url"`
	FeeMultiplier        *float64 `json:"feeMultiplier" binding:"omitempty,gte=0"`
	GasLimitMultiplier   *float64 `json:"gasLimitMultiplier" binding:"omitempty,gte=0"`
	Active               *bool    `json:"active"`
	DefaultSignerAddress *string  `json:"defaultSignerAddress" binding:"omitempty,eth_addr"`
}

// CreateNetwork registers a new network
// POST /api/v1/networks
func (h *NetworkHandler) CreateNetwork(c *gin.Context) {
	var input createNetworkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	data := &entities.CreateNetworkData{
		ChainID:              input.ChainID,
		Name:                 input.Name,
		RPCURL:               input.RPCURL,
		OtherRPCURLs:         input.OtherRPCURLs,
		TestNet:              input.TestNet,
		BlockExplorerURL:     input.BlockExplorerURL,
		FeeMultiplier:        *input.FeeMultiplier,
		GasLimitMultiplier:   *input.GasLimitMultiplier,
		Active:               active,
		DefaultSignerAddress: input.DefaultSignerAddress,
	}

	network, err := h.networkUsecase.CreateNetwork(c.Request.Context(), data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, network)
}

// ListNetworks lists all active networks
// GET /api/v1/networks
func (h *NetworkHandler) ListNetworks(c *gin.Context) {
	networks, err := h.networkUsecase.GetActiveNetworks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if networks == nil {
		networks = []*entities.Network{}
	}
	response.Success(c, http.StatusOK, networks)
}

// GetNetwork returns a network by id, active or not
// GET /api/v1/networks/:networkId
func (h *NetworkHandler) GetNetwork(c *gin.Context) {
	id, ok := h.parseNetworkID(c)
	if !ok {
		return
	}

	network, err := h.networkUsecase.GetNetworkByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, network)
}

// UpdateNetwork replaces every mutable field of a network
// PUT /api/v1/networks/:networkId
func (h *NetworkHandler) UpdateNetwork(c *gin.Context) {
	id, ok := h.parseNetworkID(c)
	if !ok {
		return
	}

	var input updateNetworkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	urls := input.OtherRPCURLs
	if urls == nil {
		urls = []string{}
	}

	data := &entities.UpdateNetworkData{
		ChainID:              null.Int64From(input.ChainID),
		Name:                 null.StringFrom(input.Name),
		RPCURL:               null.StringFrom(input.RPCURL),
		OtherRPCURLs:         urls,
		TestNet:              null.BoolFromPtr(input.TestNet),
		BlockExplorerURL:     null.StringFrom(input.BlockExplorerURL),
		FeeMultiplier:        null.Float64FromPtr(input.FeeMultiplier),
		GasLimitMultiplier:   null.Float64FromPtr(input.GasLimitMultiplier),
		Active:               null.BoolFromPtr(input.Active),
		DefaultSignerAddress: null.StringFrom(input.DefaultSignerAddress),
	}

	network, err := h.networkUsecase.UpdateNetwork(c.Request.Context(), id, data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, network)
}

// PatchNetwork applies only the submitted fields
// PATCH /api/v1/networks/:networkId
func (h *NetworkHandler) PatchNetwork(c *gin.Context) {
	id, ok := h.parseNetworkID(c)
	if !ok {
		return
	}

	var input patchNetworkRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	data := &entities.UpdateNetworkData{
		ChainID:              null.Int64FromPtr(input.ChainID),
		Name:                 null.StringFromPtr(input.Name),
		RPCURL:               null.StringFromPtr(input.RPCURL),
		OtherRPCURLs:         input.OtherRPCURLs,
		TestNet:              null.BoolFromPtr(input.TestNet),
		BlockExplorerURL:     null.StringFromPtr(input.BlockExplorerURL),
		FeeMultiplier:        null.Float64FromPtr(input.FeeMultiplier),
		GasLimitMultiplier:   null.Float64FromPtr(input.GasLimitMultiplier),
		Active:               null.BoolFromPtr(input.Active),
		DefaultSignerAddress: null.StringFromPtr(input.DefaultSignerAddress),
	}

	network, err := h.networkUsecase.PartialUpdateNetwork(c.Request.Context(), id, data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, network)
}

// DeleteNetwork deactivates a network, keeping its chain id reserved
// DELETE /api/v1/networks/:networkId
func (h *NetworkHandler) DeleteNetwork(c *gin.Context) {
	id, ok := h.parseNetworkID(c)
	if !ok {
		return
	}

	if err := h.networkUsecase.DeleteNetwork(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// VerifyNetwork checks the stored chain id against the RPC endpoint
// GET /api/v1/networks/:networkId/verify
func (h *NetworkHandler) VerifyNetwork(c *gin.Context) {
	id, ok := h.parseNetworkID(c)
	if !ok {
		return
	}

	result, err := h.networkUsecase.VerifyNetwork(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *NetworkHandler) parseNetworkID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("networkId"))
	if err != nil {
		response.BadRequest(c, "Invalid network ID")
		return uuid.Nil, false
	}
	return id, true
}
