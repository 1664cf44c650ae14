package respond

import (
	"log"
	"net/http"
	"time"

	"nft-asset-bridge/model"

	"github.com/gin-gonic/gin"
)

// Response generic API response envelope
type Response struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// Success respond with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// InvalidParam respond with a parameter error
func InvalidParam(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: msg,
	})
}

// TimingMiddleware log processing time per request
func TimingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// VersionResponse build information response structure
type VersionResponse struct {
	GitCommit string `json:"git_commit" example:"a1b2c3d"`
	GitSemver string `json:"git_semver" example:"v1.0.0"`
	GoVersion string `json:"go_version" example:"go1.24"`
}

// IssuanceRecordResponse committed issuance record response structure
type IssuanceRecordResponse struct {
	Code        string                 `json:"code" example:"9f2a..."`
	RequestID   string                 `json:"request_id" example:"req-001"`
	Request     *model.IssuanceRequest `json:"request"`
	Amount      uint64                 `json:"amount" example:"42"`
	Transaction string                 `json:"transaction"`
	CreatedAt   time.Time              `json:"created_at" example:"2024-01-01T00:00:00Z"`
}

// ToIssuanceRecordResponse converts a model.IssuanceRecord into a public
// response struct
func ToIssuanceRecordResponse(record *model.IssuanceRecord) *IssuanceRecordResponse {
	if record == nil {
		return nil
	}
	req := record.Request
	return &IssuanceRecordResponse{
		Code:        record.Code,
		RequestID:   record.RequestID,
		Request:     &req,
		Amount:      record.Amount,
		Transaction: record.Transaction,
		CreatedAt:   record.CreatedAt,
	}
}
