package bridge_service

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"nft-asset-bridge/evm"
	"nft-asset-bridge/model"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// testSigner a deterministic secp256k1 key and its EVM address
func testSigner(t *testing.T) (*btcec.PrivateKey, evm.Address) {
	t.Helper()
	keyBytes, _ := hex.DecodeString("1111111111111111111111111111111111111111111111111111111111111111")
	priv, _ := btcec.PrivKeyFromBytes(keyBytes)

	uncompressed := priv.PubKey().SerializeUncompressed()
	hash := evm.Keccak256(uncompressed[1:])
	var addr evm.Address
	copy(addr[:], hash[12:])
	return priv, addr
}

// testReceiveKey a valid ed25519 public key as hex
func testReceiveKey(t *testing.T) (string, []byte) {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("failed to generate receive key: %v", err)
	}
	return hex.EncodeToString(pub), pub
}

// signDigest produce an r||s||v signature over a digest
func signDigest(priv *btcec.PrivateKey, digest [32]byte) string {
	compact := ecdsa.SignCompact(priv, digest[:], false)
	sig := make([]byte, 65)
	copy(sig[:32], compact[1:33])
	copy(sig[32:64], compact[33:65])
	sig[64] = compact[0] - 27
	return "0x" + hex.EncodeToString(sig)
}

func TestVerifyIdentity_TypedData(t *testing.T) {
	priv, wantAddr := testSigner(t)
	keyHex, keyBytes := testReceiveKey(t)

	digest := TypedDataDigest(keyBytes)
	sig := signDigest(priv, digest)

	proof, fail := VerifyIdentity(keyHex, sig, model.SignModeTypedData)
	if fail != nil {
		t.Fatalf("verification failed: code=%d msg=%s", fail.Code, fail.Msg)
	}
	if proof.Address != wantAddr {
		t.Errorf("recovered wrong address: got %s, want %s", proof.Address.Hex(), wantAddr.Hex())
	}
	if !ed25519.PublicKey(keyBytes).Equal(proof.ReceivePublicKey) {
		t.Errorf("proof does not carry the receive public key")
	}
}

func TestVerifyIdentity_PersonalMessage(t *testing.T) {
	priv, wantAddr := testSigner(t)
	keyHex, _ := testReceiveKey(t)

	digest := PersonalMessageDigest([]byte(keyHex))
	sig := signDigest(priv, digest)

	proof, fail := VerifyIdentity(keyHex, sig, model.SignModePersonal)
	if fail != nil {
		t.Fatalf("verification failed: code=%d msg=%s", fail.Code, fail.Msg)
	}
	if proof.Address != wantAddr {
		t.Errorf("recovered wrong address: got %s, want %s", proof.Address.Hex(), wantAddr.Hex())
	}
}

func TestVerifyIdentity_DefaultsToTypedData(t *testing.T) {
	priv, wantAddr := testSigner(t)
	keyHex, keyBytes := testReceiveKey(t)

	sig := signDigest(priv, TypedDataDigest(keyBytes))
	proof, fail := VerifyIdentity(keyHex, sig, "")
	if fail != nil {
		t.Fatalf("verification failed: code=%d msg=%s", fail.Code, fail.Msg)
	}
	if proof.Address != wantAddr {
		t.Errorf("empty mode must behave as typed data")
	}
}

func TestVerifyIdentity_MalformedInputs(t *testing.T) {
	keyHex, keyBytes := testReceiveKey(t)
	priv, _ := testSigner(t)
	goodSig := signDigest(priv, TypedDataDigest(keyBytes))

	tests := []struct {
		name      string
		pubKey    string
		signature string
		mode      string
		wantCode  int32
	}{
		{"public key bad hex", "0xzz", goodSig, "", CodeHexDecode},
		{"public key short", "0x1234", goodSig, "", CodePublicKeyLength},
		{"signature bad hex", keyHex, "0xgg", "", CodeHexDecode},
		{"signature 64 bytes", keyHex, "0x" + goodSig[4:], "", CodeSignatureFormat},
		{"signature empty", keyHex, "", "", CodeSignatureFormat},
		{"unknown mode", keyHex, goodSig, "something", CodeSignatureFormat},
	}

	for _, tt := range tests {
		_, fail := VerifyIdentity(tt.pubKey, tt.signature, tt.mode)
		if fail == nil {
			t.Errorf("%s: verification unexpectedly succeeded", tt.name)
			continue
		}
		if fail.Code != tt.wantCode {
			t.Errorf("%s: got code %d, want %d", tt.name, fail.Code, tt.wantCode)
		}
	}
}

func TestVerifyIdentity_UnrecoverableSignature(t *testing.T) {
	keyHex, _ := testReceiveKey(t)

	// r = 0 is outside the valid scalar range, so recovery always fails
	zeroSig := "0x" + hex.EncodeToString(make([]byte, 65))
	_, fail := VerifyIdentity(keyHex, zeroSig, "")
	if fail == nil {
		t.Fatalf("verification unexpectedly succeeded")
	}
	if fail.Code != CodeRecoverFailed {
		t.Errorf("got code %d, want %d", fail.Code, CodeRecoverFailed)
	}
}

func TestVerifyIdentity_InvalidReceiveKeyPoint(t *testing.T) {
	priv, _ := testSigner(t)

	// 32 bytes that do not decompress onto the edwards curve
	badKey := make([]byte, 32)
	for i := range badKey {
		badKey[i] = 0xff
	}
	keyHex := hex.EncodeToString(badKey)

	sig := signDigest(priv, TypedDataDigest(badKey))
	_, fail := VerifyIdentity(keyHex, sig, "")
	if fail == nil {
		t.Fatalf("verification unexpectedly succeeded")
	}
	if fail.Code != CodePublicKeyParse {
		t.Errorf("got code %d, want %d", fail.Code, CodePublicKeyParse)
	}
}

func TestVerifyIdentity_SignatureNotReusableAcrossModes(t *testing.T) {
	priv, wantAddr := testSigner(t)
	keyHex, keyBytes := testReceiveKey(t)

	// A typed-data signature evaluated as a personal-message signature must
	// not recover the signer's address
	sig := signDigest(priv, TypedDataDigest(keyBytes))
	proof, fail := VerifyIdentity(keyHex, sig, model.SignModePersonal)
	if fail == nil && proof.Address == wantAddr {
		t.Errorf("signature was reusable across message-binding modes")
	}
}
