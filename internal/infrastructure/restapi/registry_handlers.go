package restapi

import (
	"context"
	"errors"
	"net/http"

	"witnet_addresses/internal/app/port"
	"witnet_addresses/internal/domain/entity"
	"witnet_addresses/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Reloader republishes the address table on demand.
type Reloader interface {
	Reload(ctx context.Context) error
}

// APIError is the body of every non-2xx response.
type APIError struct {
	Error  string              `json:"error"`
	Reason entity.LookupReason `json:"reason,omitempty"`
}

// AddressResponse is returned by the contract lookup endpoint.
type AddressResponse struct {
	Ecosystem string              `json:"ecosystem"`
	Network   string              `json:"network"`
	Contract  entity.ContractName `json:"contract"`
	Address   string              `json:"address"`
}

// NetworkResponse describes one network and its deployed contracts.
type NetworkResponse struct {
	entity.NetworkDefinition
	Contracts entity.ContractAddressSet `json:"contracts"`
}

// RegistryHandler serves read-only registry queries over HTTP.
type RegistryHandler struct {
	registry port.AddressRegistry
	networks port.NetworkDefinitionProvider
	reloader Reloader
	cfg      port.ConfigProvider
	logger   port.Logger
}

// NewRegistryHandler creates a new RegistryHandler. reloader may be nil.
func NewRegistryHandler(reg port.AddressRegistry, networks port.NetworkDefinitionProvider, reloader Reloader, cfg port.ConfigProvider, logger port.Logger) *RegistryHandler {
	if logger == nil {
		logger = port.NopLogger{}
	}
	return &RegistryHandler{
		registry: reg,
		networks: networks,
		reloader: reloader,
		cfg:      cfg,
		logger:   logger,
	}
}

// ListEcosystemsHandler handles GET /ecosystems.
func (h *RegistryHandler) ListEcosystemsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ecosystems": h.registry.ListEcosystems()})
}

// ListNetworksHandler handles GET /ecosystems/:ecosystem/networks.
func (h *RegistryHandler) ListNetworksHandler(c *gin.Context) {
	ecosystem := c.Param("ecosystem")
	networks, err := h.registry.ListNetworks(ecosystem)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ecosystem": ecosystem, "networks": networks})
}

// GetNetworkHandler handles GET /networks/:network.
func (h *RegistryHandler) GetNetworkHandler(c *gin.Context) {
	network := c.Param("network")
	ecosystem, ok := h.registry.FindNetwork(network)
	if !ok {
		h.writeError(c, &entity.LookupError{Network: network, Reason: entity.ReasonUnknownNetwork})
		return
	}
	contracts, err := h.registry.Contracts(ecosystem, network)
	if err != nil {
		h.writeError(c, err)
		return
	}

	def, ok := h.networks.GetNetworkDefinitionByName(network)
	if !ok {
		def = entity.NetworkDefinition{Identifier: network, Ecosystem: ecosystem, Name: network}
	}
	c.JSON(http.StatusOK, NetworkResponse{NetworkDefinition: def, Contracts: contracts})
}

// GetAddressHandler handles GET /ecosystems/:ecosystem/networks/:network/contracts/:contract.
func (h *RegistryHandler) GetAddressHandler(c *gin.Context) {
	ecosystem := c.Param("ecosystem")
	network := c.Param("network")
	contract := entity.ContractName(c.Param("contract"))

	addr, err := h.registry.Lookup(ecosystem, network, contract)
	if err != nil {
		h.writeError(c, err)
		return
	}
	metrics.LookupsTotal.WithLabelValues(metrics.OutcomeFound).Inc()
	c.JSON(http.StatusOK, AddressResponse{Ecosystem: ecosystem, Network: network, Contract: contract, Address: addr})
}

// SnapshotHandler handles GET /addresses and returns the whole table.
func (h *RegistryHandler) SnapshotHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Snapshot())
}

// ReloadHandler handles POST /admin/reload.
func (h *RegistryHandler) ReloadHandler(c *gin.Context) {
	if h.reloader == nil || h.cfg == nil || !h.cfg.GetConfig().Server.EnableReload {
		c.JSON(http.StatusForbidden, APIError{Error: "reload is disabled"})
		return
	}
	if err := h.reloader.Reload(c.Request.Context()); err != nil {
		h.logger.Warn("Reload requested over HTTP failed", "error", err)
		c.JSON(http.StatusBadGateway, APIError{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded", "ecosystems": h.registry.ListEcosystems()})
}

// HealthHandler handles GET /healthz.
func (h *RegistryHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *RegistryHandler) writeError(c *gin.Context, err error) {
	var lookupErr *entity.LookupError
	switch {
	case errors.As(err, &lookupErr):
		if lookupErr.Reason == entity.ReasonNotDeployed {
			metrics.LookupsTotal.WithLabelValues(metrics.OutcomeNotDeployed).Inc()
		} else {
			metrics.LookupsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		}
		c.JSON(http.StatusNotFound, APIError{Error: err.Error(), Reason: lookupErr.Reason})
	case errors.Is(err, entity.ErrUnknownEcosystem):
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		c.JSON(http.StatusNotFound, APIError{Error: err.Error(), Reason: entity.ReasonUnknownEcosystem})
	case errors.Is(err, entity.ErrMalformedAddress):
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeMalformed).Inc()
		h.logger.Error("Malformed address served from registry", "error", err)
		c.JSON(http.StatusInternalServerError, APIError{Error: err.Error()})
	default:
		h.logger.Error("Unexpected registry error", "error", err)
		c.JSON(http.StatusInternalServerError, APIError{Error: "internal error"})
	}
}
