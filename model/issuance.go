package model

import "time"

// Signature binding modes accepted by the identity verifier.
const (
	SignModeTypedData = "typed_data" // EIP-712 typed-data signature (default)
	SignModePersonal  = "personal"   // EIP-191 personal-message signature
)

// Token standards resolved from the request shape.
const (
	StandardERC721  = "erc721"
	StandardERC1155 = "erc1155"
)

// IssuanceRequest caller-supplied issuance request, immutable once received.
// Field names follow the public wire format.
type IssuanceRequest struct {
	ID               string `json:"id" binding:"required" example:"req-001"`
	ReceivePublicKey string `json:"receive_public_key" binding:"required" example:"0x1c9f..."`
	Signature        string `json:"signature" binding:"required" example:"0xabcd..."`
	ChainID          string `json:"chainid" binding:"required" example:"1"`
	TokenAddress     string `json:"token_address" binding:"required" example:"0xaaaa..."`
	TokenID1155      string `json:"tokenid1155,omitempty" example:"1"`
	Salt             string `json:"salt,omitempty" example:""`
	SignMode         string `json:"sign_mode,omitempty" example:"typed_data"`
}

// Standard reports the token standard implied by the request: a request
// carrying tokenid1155 targets an ERC-1155 contract, otherwise ERC-721.
func (r *IssuanceRequest) Standard() string {
	if r.TokenID1155 != "" {
		return StandardERC1155
	}
	return StandardERC721
}

// IssuanceRecord persisted artifact keyed by the lowercase hex encoding of
// the derived asset code. Created at most once per code, never mutated.
type IssuanceRecord struct {
	Code        string          `json:"code" gorm:"primaryKey;size:64;column:code"`
	RequestID   string          `json:"request_id" gorm:"size:128;column:request_id"`
	Request     IssuanceRequest `json:"request" gorm:"embedded;embeddedPrefix:req_"`
	Amount      uint64          `json:"amount" gorm:"column:amount"`
	Transaction string          `json:"transaction" gorm:"type:longtext;column:transaction"`
	CreatedAt   time.Time       `json:"created_at" gorm:"column:created_at"`
}

// TableName gorm table name
func (IssuanceRecord) TableName() string {
	return "issuance_records"
}

// IssuanceResult outcome of one issuance attempt. Code 0 means success and
// Msg carries the serialized transaction; a negative code means failure and
// Msg carries a diagnostic. Transport always delivers this with HTTP 200.
type IssuanceResult struct {
	ID   string `json:"id"`
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
}
