package bridge_service

import (
	"nft-asset-bridge/evm"

	"github.com/holiman/uint256"
)

// DerivationInputs public, verifiable inputs of the asset code derivation.
type DerivationInputs struct {
	TokenContract evm.Address
	TokenID       *uint256.Int // nil for ERC-721 requests; encoded as zero padding
	ChainID       *uint256.Int
	Salt          string
}

// DeriveAssetCode produce the 32-byte raw asset code. The layout is fixed:
// contract (20) || token id or padding (32, big-endian) || chain id
// (32, big-endian) || salt (UTF-8). No randomness and no wall clock, so a
// given NFT always derives the same code.
func DeriveAssetCode(in DerivationInputs) [32]byte {
	data := make([]byte, 0, evm.AddressLength+64+len(in.Salt))
	data = append(data, in.TokenContract[:]...)

	var tokenID [32]byte
	if in.TokenID != nil {
		tokenID = in.TokenID.Bytes32()
	}
	data = append(data, tokenID[:]...)

	chainID := in.ChainID.Bytes32()
	data = append(data, chainID[:]...)

	data = append(data, []byte(in.Salt)...)
	return evm.Keccak256(data)
}
