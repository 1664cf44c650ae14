package ledger

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// SigningIdentity an ed25519 keypair used to author ledger operations.
type SigningIdentity struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// PublicKeyHex lowercase hex encoding of the public key
func (s *SigningIdentity) PublicKeyHex() string {
	return hex.EncodeToString(s.PublicKey)
}

// Sign sign a message with the identity's private key
func (s *SigningIdentity) Sign(msg []byte) []byte {
	return ed25519.Sign(s.PrivateKey, msg)
}

// SigningIdentityProvider supplies the signing identity for a create-asset
// operation. The default provider mints a fresh identity per request;
// deployments can plug a persistent issuer key instead.
type SigningIdentityProvider interface {
	Generate() (*SigningIdentity, error)
}

// MnemonicProvider derives a fresh identity from a newly generated BIP-39
// mnemonic on every call.
type MnemonicProvider struct{}

// Generate create a 24-word mnemonic and restore an ed25519 keypair from it
func (MnemonicProvider) Generate() (*SigningIdentity, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return RestoreFromMnemonic(mnemonic)
}

// RestoreFromMnemonic restore an ed25519 keypair from a BIP-39 mnemonic
func RestoreFromMnemonic(mnemonic string) (*SigningIdentity, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("failed to restore keypair: %w", err)
	}
	priv := ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])
	return &SigningIdentity{
		PublicKey:  priv.Public().(ed25519.PublicKey),
		PrivateKey: priv,
	}, nil
}

// FixedProvider always returns the same identity. Used by deployments that
// issue with a configured key, and by tests.
type FixedProvider struct {
	Identity *SigningIdentity
}

// Generate return the fixed identity
func (p FixedProvider) Generate() (*SigningIdentity, error) {
	if p.Identity == nil {
		return nil, fmt.Errorf("no issuer identity configured")
	}
	return p.Identity, nil
}
