package bridge_service

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"nft-asset-bridge/evm"
	"nft-asset-bridge/model"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// signatureLength recoverable secp256k1 signature: r(32) || s(32) || v(1)
const signatureLength = 65

// receiveKeyLength ed25519 receive public key length
const receiveKeyLength = 32

// OwnershipProof recovered identity for one request. Ephemeral; never
// persisted.
type OwnershipProof struct {
	Address          evm.Address
	ReceivePublicKey ed25519.PublicKey
}

// VerifyIdentity prove that the caller controls the address that signed
// over the receive public key. The typed-data mode binds the signature to
// a fixed schema and is the default; the personal mode signs the receive
// key string as an opaque message.
func VerifyIdentity(receivePublicKey, signature, mode string) (*OwnershipProof, *Failure) {
	pubKeyBytes, err := decodePrefixedHex(receivePublicKey)
	if err != nil {
		return nil, failf(CodeHexDecode, "receive_public_key hex error: %v", err)
	}
	if len(pubKeyBytes) != receiveKeyLength {
		return nil, failf(CodePublicKeyLength, "the length of the public key is not 32 bytes: %d", len(pubKeyBytes))
	}

	sigBytes, err := decodePrefixedHex(signature)
	if err != nil {
		return nil, failf(CodeHexDecode, "signature hex error: %v", err)
	}
	if len(sigBytes) != signatureLength {
		return nil, failf(CodeSignatureFormat, "the length of the signature is not 65 bytes: %d", len(sigBytes))
	}

	var digest [32]byte
	switch mode {
	case model.SignModePersonal:
		digest = PersonalMessageDigest([]byte(receivePublicKey))
	case "", model.SignModeTypedData:
		digest = TypedDataDigest(pubKeyBytes)
	default:
		return nil, failf(CodeSignatureFormat, "unknown sign mode: %s", mode)
	}

	address, err := recoverAddress(sigBytes, digest)
	if err != nil {
		return nil, failf(CodeRecoverFailed, "signature recovery error: %v", err)
	}

	// The 32 bytes must decompress onto the edwards curve; the stdlib type
	// accepts arbitrary bytes.
	if _, err := new(edwards25519.Point).SetBytes(pubKeyBytes); err != nil {
		return nil, failf(CodePublicKeyParse, "receive public key is not a valid point: %v", err)
	}

	return &OwnershipProof{
		Address:          address,
		ReceivePublicKey: ed25519.PublicKey(pubKeyBytes),
	}, nil
}

// TypedDataDigest EIP-712 digest over the issuance signing schema
// Issue(bytes receive_public_key) with an empty domain.
func TypedDataDigest(receivePublicKey []byte) [32]byte {
	domainTypeHash := evm.Keccak256([]byte("EIP712Domain()"))
	domainSeparator := evm.Keccak256(domainTypeHash[:])

	issueTypeHash := evm.Keccak256([]byte("Issue(bytes receive_public_key)"))
	keyHash := evm.Keccak256(receivePublicKey)
	structHash := evm.Keccak256(issueTypeHash[:], keyHash[:])

	return evm.Keccak256([]byte{0x19, 0x01}, domainSeparator[:], structHash[:])
}

// PersonalMessageDigest EIP-191 personal-message digest
func PersonalMessageDigest(msg []byte) [32]byte {
	prefix := fmt.Sprintf("\x19Ethereum Signed Message:\n%d", len(msg))
	return evm.Keccak256([]byte(prefix), msg)
}

// recoverAddress recover the signer address from an r||s||v signature over
// the given digest
func recoverAddress(sig []byte, digest [32]byte) (evm.Address, error) {
	var addr evm.Address

	v := sig[signatureLength-1]
	if v >= 27 {
		v -= 27
	}
	if v > 3 {
		return addr, fmt.Errorf("invalid recovery id: %d", sig[signatureLength-1])
	}

	// RecoverCompact wants the recovery header first
	compact := make([]byte, signatureLength)
	compact[0] = 27 + v
	copy(compact[1:], sig[:signatureLength-1])

	pubKey, _, err := ecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return addr, err
	}

	uncompressed := pubKey.SerializeUncompressed()
	hash := evm.Keccak256(uncompressed[1:])
	copy(addr[:], hash[12:])
	return addr, nil
}

func decodePrefixedHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
