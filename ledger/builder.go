package ledger

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Operation kinds carried by a bridge transaction.
const (
	OpDefineAsset = "define_asset"
	OpIssueAsset  = "issue_asset"
)

// RecordTypeNonConfidential issuance record with publicly visible amount
// and asset type. The bridge never applies blinding.
const RecordTypeNonConfidential = "non_confidential_amount_non_confidential_asset_type"

// maxDecimals upper bound the ledger accepts for asset precision
const maxDecimals = 19

// AssetRules issuance rules bound to a defined asset type.
type AssetRules struct {
	Decimals     uint8   `json:"decimals"`
	MaxUnits     *uint64 `json:"max_units"` // nil = unlimited supply
	Transferable bool    `json:"transferable"`
}

// SetDecimals set asset precision, bounded by the ledger's maximum
func (r *AssetRules) SetDecimals(d uint8) error {
	if d > maxDecimals {
		return fmt.Errorf("decimals %d exceeds maximum %d", d, maxDecimals)
	}
	r.Decimals = d
	return nil
}

// SetMaxUnits set the maximum issuable units, nil for unlimited
func (r *AssetRules) SetMaxUnits(max *uint64) {
	r.MaxUnits = max
}

// SetTransferable set whether issued units are transferable
func (r *AssetRules) SetTransferable(t bool) {
	r.Transferable = t
}

// Operation one ledger operation. Exactly the fields of the operation's
// kind are populated; the signature covers the operation body.
type Operation struct {
	Kind         string      `json:"kind"`
	Code         string      `json:"code"`
	Memo         string      `json:"memo,omitempty"`
	Rules        *AssetRules `json:"rules,omitempty"`
	SeqID        *uint64     `json:"seq_id,omitempty"`
	Amount       *uint64     `json:"amount,omitempty"`
	RecordType   string      `json:"record_type,omitempty"`
	IssuerPubKey string      `json:"issuer_pub_key"`
	Signature    string      `json:"signature"`
}

// TransactionBuilder accumulates operations against a fixed sequence id and
// serializes them for transport.
type TransactionBuilder struct {
	seqID uint64
	ops   []Operation
}

// NewTransactionBuilderFromSeqID create a builder bound to a ledger
// sequence id
func NewTransactionBuilderFromSeqID(seqID uint64) *TransactionBuilder {
	return &TransactionBuilder{seqID: seqID}
}

// GetSeqID return the sequence id the builder was created from
func (b *TransactionBuilder) GetSeqID() uint64 {
	return b.seqID
}

// Operations return the accumulated operations
func (b *TransactionBuilder) Operations() []Operation {
	return b.ops
}

// AddOperationCreateAsset append a define-asset operation for the given
// raw code, signed by the issuer identity
func (b *TransactionBuilder) AddOperationCreateAsset(kp *SigningIdentity, rawCode [32]byte, rules AssetRules, memo string) error {
	op := Operation{
		Kind:         OpDefineAsset,
		Code:         hex.EncodeToString(rawCode[:]),
		Memo:         memo,
		Rules:        &rules,
		IssuerPubKey: kp.PublicKeyHex(),
	}
	return b.appendSigned(kp, op)
}

// AddBasicIssueAsset append an issue-asset operation for amount units of
// the asset type at the given sequence id
func (b *TransactionBuilder) AddBasicIssueAsset(kp *SigningIdentity, assetCode [32]byte, seqID, amount uint64, recordType string) error {
	op := Operation{
		Kind:         OpIssueAsset,
		Code:         hex.EncodeToString(assetCode[:]),
		SeqID:        &seqID,
		Amount:       &amount,
		RecordType:   recordType,
		IssuerPubKey: kp.PublicKeyHex(),
	}
	return b.appendSigned(kp, op)
}

// appendSigned sign the operation body and append it
func (b *TransactionBuilder) appendSigned(kp *SigningIdentity, op Operation) error {
	body, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to encode operation body: %w", err)
	}
	op.Signature = hex.EncodeToString(kp.Sign(body))
	b.ops = append(b.ops, op)
	return nil
}

// serializedTransaction wire form of the builder state
type serializedTransaction struct {
	SeqID      uint64      `json:"seq_id"`
	Operations []Operation `json:"operations"`
}

// Serialize serialize the builder state for transport and persistence
func (b *TransactionBuilder) Serialize() (string, error) {
	out, err := json.Marshal(serializedTransaction{
		SeqID:      b.seqID,
		Operations: b.ops,
	})
	if err != nil {
		return "", fmt.Errorf("failed to serialize transaction: %w", err)
	}
	return string(out), nil
}
