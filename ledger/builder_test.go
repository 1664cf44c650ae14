package ledger

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"testing"
)

func testIdentity(t *testing.T) *SigningIdentity {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}
	return &SigningIdentity{PublicKey: pub, PrivateKey: priv}
}

func TestAssetRules(t *testing.T) {
	var rules AssetRules
	if err := rules.SetDecimals(6); err != nil {
		t.Fatalf("failed to set decimals: %v", err)
	}
	if err := rules.SetDecimals(20); err == nil {
		t.Errorf("accepted decimals above the ledger maximum")
	}
	rules.SetMaxUnits(nil)
	rules.SetTransferable(true)
	if rules.MaxUnits != nil || !rules.Transferable {
		t.Errorf("rules not applied: %+v", rules)
	}
}

func TestTransactionBuilder(t *testing.T) {
	kp := testIdentity(t)
	var rawCode, assetCode [32]byte
	rawCode[0] = 0x01
	assetCode[0] = 0x02

	b := NewTransactionBuilderFromSeqID(7)
	if b.GetSeqID() != 7 {
		t.Fatalf("got seq id %d, want 7", b.GetSeqID())
	}

	var rules AssetRules
	if err := rules.SetDecimals(6); err != nil {
		t.Fatalf("failed to set decimals: %v", err)
	}
	rules.SetTransferable(true)
	if err := b.AddOperationCreateAsset(kp, rawCode, rules, ""); err != nil {
		t.Fatalf("failed to add create operation: %v", err)
	}
	if err := b.AddBasicIssueAsset(kp, assetCode, 7, 42, RecordTypeNonConfidential); err != nil {
		t.Fatalf("failed to add issue operation: %v", err)
	}

	ops := b.Operations()
	if len(ops) != 2 {
		t.Fatalf("got %d operations, want 2", len(ops))
	}
	if ops[0].Kind != OpDefineAsset || ops[0].Code != hex.EncodeToString(rawCode[:]) {
		t.Errorf("create operation malformed: %+v", ops[0])
	}
	if ops[0].Rules == nil || ops[0].Rules.Decimals != 6 {
		t.Errorf("create operation does not carry the rules")
	}
	if ops[1].Kind != OpIssueAsset || *ops[1].Amount != 42 || *ops[1].SeqID != 7 {
		t.Errorf("issue operation malformed: %+v", ops[1])
	}
}

func TestTransactionBuilder_SignaturesVerify(t *testing.T) {
	kp := testIdentity(t)
	var assetCode [32]byte
	assetCode[0] = 0x02

	b := NewTransactionBuilderFromSeqID(7)
	if err := b.AddBasicIssueAsset(kp, assetCode, 7, 42, RecordTypeNonConfidential); err != nil {
		t.Fatalf("failed to add issue operation: %v", err)
	}

	op := b.Operations()[0]
	sig, err := hex.DecodeString(op.Signature)
	if err != nil {
		t.Fatalf("signature is not hex: %v", err)
	}

	// The signature covers the operation body with the signature empty
	body := op
	body.Signature = ""
	msg, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to encode operation body: %v", err)
	}
	if !ed25519.Verify(kp.PublicKey, msg, sig) {
		t.Errorf("operation signature does not verify")
	}
}

func TestTransactionBuilder_Serialize(t *testing.T) {
	kp := testIdentity(t)
	var assetCode [32]byte

	b := NewTransactionBuilderFromSeqID(9)
	if err := b.AddBasicIssueAsset(kp, assetCode, 9, 1, RecordTypeNonConfidential); err != nil {
		t.Fatalf("failed to add issue operation: %v", err)
	}

	out, err := b.Serialize()
	if err != nil {
		t.Fatalf("failed to serialize: %v", err)
	}

	var tx struct {
		SeqID      uint64          `json:"seq_id"`
		Operations json.RawMessage `json:"operations"`
	}
	if err := json.Unmarshal([]byte(out), &tx); err != nil {
		t.Fatalf("serialized transaction is not valid JSON: %v", err)
	}
	if tx.SeqID != 9 {
		t.Errorf("got seq id %d, want 9", tx.SeqID)
	}
	if len(tx.Operations) == 0 {
		t.Errorf("serialized transaction has no operations")
	}
}
