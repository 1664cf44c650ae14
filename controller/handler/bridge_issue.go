package handler

import (
	"errors"
	"runtime"

	"nft-asset-bridge/controller/respond"
	"nft-asset-bridge/database"
	"nft-asset-bridge/model"
	"nft-asset-bridge/service/bridge_service"

	"github.com/gin-gonic/gin"
)

// Build information, set at link time via -ldflags
var (
	GitCommit = "unknown"
	GitSemver = "unknown"
)

// BridgeHandler issuance bridge handler
type BridgeHandler struct {
	bridgeService *bridge_service.BridgeService
}

// NewBridgeHandler create bridge handler instance
func NewBridgeHandler(bridgeService *bridge_service.BridgeService) *BridgeHandler {
	return &BridgeHandler{
		bridgeService: bridgeService,
	}
}

// Issue build a create+issue transaction against an ownership proof
// @Summary      Issue against ownership proof
// @Description  Verify the caller's signature and token balance, then build an atomic create+issue transaction for the derived asset code. Protocol failures are embedded in the payload as stable negative codes; the transport status is always 200.
// @Tags         Bridge
// @Accept       json
// @Produce      json
// @Param        request  body      model.IssuanceRequest  true  "Issuance request"
// @Success      200      {object}  model.IssuanceResult
// @Router       /bridge/issue [post]
func (h *BridgeHandler) Issue(c *gin.Context) {
	var req model.IssuanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidParam(c, err.Error())
		return
	}

	result := h.bridgeService.IssueAgainstOwnershipProof(&req)
	c.JSON(200, result)
}

// GetIssuance look up a committed issuance record by derived asset code
// @Summary      Get issuance by code
// @Description  Query the original request and built transaction committed under a derived asset code. Returns empty data when no record exists.
// @Tags         Bridge
// @Accept       json
// @Produce      json
// @Param        code  path      string  true  "Derived asset code (lowercase hex)"
// @Success      200   {object}  respond.Response{data=respond.IssuanceRecordResponse}
// @Router       /bridge/issuance/{code} [get]
func (h *BridgeHandler) GetIssuance(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		respond.InvalidParam(c, "code is required")
		return
	}

	record, err := h.bridgeService.GetIssuanceByCode(code)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			// Absent records are not an error on the read path
			respond.Success(c, nil)
			return
		}
		respond.InvalidParam(c, err.Error())
		return
	}

	respond.Success(c, respond.ToIssuanceRecordResponse(record))
}

// SupportedChains list admitted chains and contracts
// @Summary      Get supported chains
// @Description  Map of supported chain id (decimal) to admitted token contract addresses
// @Tags         Bridge
// @Produce      json
// @Success      200  {object}  respond.Response{data=map[string][]string}
// @Router       /bridge/chains [get]
func (h *BridgeHandler) SupportedChains(c *gin.Context) {
	respond.Success(c, h.bridgeService.SupportedChains())
}

// Ping liveness probe
// @Summary      Ping
// @Tags         System
// @Produce      plain
// @Success      200  {string}  string  "pong"
// @Router       /ping [get]
func (h *BridgeHandler) Ping(c *gin.Context) {
	c.String(200, "pong")
}

// Version build information
// @Summary      Version
// @Tags         System
// @Produce      json
// @Success      200  {object}  respond.VersionResponse
// @Router       /version [get]
func (h *BridgeHandler) Version(c *gin.Context) {
	c.JSON(200, respond.VersionResponse{
		GitCommit: GitCommit,
		GitSemver: GitSemver,
		GoVersion: runtime.Version(),
	})
}
