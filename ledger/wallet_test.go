package ledger

import (
	"bytes"
	"crypto/ed25519"
	"testing"
)

func TestMnemonicProvider_FreshIdentityPerCall(t *testing.T) {
	var p MnemonicProvider
	a, err := p.Generate()
	if err != nil {
		t.Fatalf("failed to generate identity: %v", err)
	}
	b, err := p.Generate()
	if err != nil {
		t.Fatalf("failed to generate identity: %v", err)
	}
	if bytes.Equal(a.PublicKey, b.PublicKey) {
		t.Errorf("two generated identities share a public key")
	}
	if len(a.PublicKey) != ed25519.PublicKeySize {
		t.Errorf("public key is %d bytes", len(a.PublicKey))
	}
}

func TestRestoreFromMnemonic_Deterministic(t *testing.T) {
	const mnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"

	a, err := RestoreFromMnemonic(mnemonic)
	if err != nil {
		t.Fatalf("failed to restore identity: %v", err)
	}
	b, err := RestoreFromMnemonic(mnemonic)
	if err != nil {
		t.Fatalf("failed to restore identity: %v", err)
	}
	if a.PublicKeyHex() != b.PublicKeyHex() {
		t.Errorf("restoring the same mnemonic yielded different keys")
	}

	sig := a.Sign([]byte("payload"))
	if !ed25519.Verify(a.PublicKey, []byte("payload"), sig) {
		t.Errorf("signature does not verify against the restored public key")
	}
}

func TestRestoreFromMnemonic_RejectsBadMnemonic(t *testing.T) {
	if _, err := RestoreFromMnemonic("not a valid mnemonic phrase"); err == nil {
		t.Errorf("restored an identity from an invalid mnemonic")
	}
}

func TestFixedProvider(t *testing.T) {
	identity, err := RestoreFromMnemonic("legal winner thank year wave sausage worth useful legal winner thank yellow")
	if err != nil {
		t.Fatalf("failed to restore identity: %v", err)
	}

	p := FixedProvider{Identity: identity}
	got, err := p.Generate()
	if err != nil {
		t.Fatalf("failed to get fixed identity: %v", err)
	}
	if got != identity {
		t.Errorf("fixed provider returned a different identity")
	}

	if _, err := (FixedProvider{}).Generate(); err == nil {
		t.Errorf("empty fixed provider did not fail")
	}
}
