package evm

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

// Balance query failure kinds, one per failure point so callers can map
// them to distinct response codes.
var (
	ErrEncode       = errors.New("abi encode error")
	ErrCall         = errors.New("rpc call error")
	ErrDecode       = errors.New("abi decode error")
	ErrNoReturn     = errors.New("call returned no value")
	ErrTypeMismatch = errors.New("return value is not uint256")
)

// AddressLength EVM address length in bytes
const AddressLength = 20

// Address 20-byte EVM address
type Address [AddressLength]byte

// Hex return the lowercase 0x-prefixed hex encoding
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ParseAddress parse a 0x-prefixed (or bare) hex address
func ParseAddress(s string) (Address, error) {
	var addr Address
	raw, err := decodeHex(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return addr, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if len(raw) != AddressLength {
		return addr, fmt.Errorf("invalid address %q: %d bytes", s, len(raw))
	}
	copy(addr[:], raw)
	return addr, nil
}

// Keccak256 compute the Keccak-256 digest over the concatenation of all
// input slices
func Keccak256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// selector first four bytes of the Keccak-256 hash of the canonical
// function signature
func selector(signature string) []byte {
	digest := Keccak256([]byte(signature))
	return digest[:4]
}

// EncodeBalanceOf encode calldata for ERC-721 balanceOf(address)
func EncodeBalanceOf(owner Address) []byte {
	data := make([]byte, 0, 4+32)
	data = append(data, selector("balanceOf(address)")...)
	data = append(data, leftPadAddress(owner)...)
	return data
}

// EncodeBalanceOf1155 encode calldata for ERC-1155 balanceOf(address,uint256)
func EncodeBalanceOf1155(owner Address, tokenID *uint256.Int) []byte {
	data := make([]byte, 0, 4+64)
	data = append(data, selector("balanceOf(address,uint256)")...)
	data = append(data, leftPadAddress(owner)...)
	id := tokenID.Bytes32()
	data = append(data, id[:]...)
	return data
}

// DecodeUint256 decode a single uint256 return value
func DecodeUint256(ret []byte) (*uint256.Int, error) {
	if len(ret) == 0 {
		return nil, ErrNoReturn
	}
	if len(ret) != 32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTypeMismatch, len(ret))
	}
	var word [32]byte
	copy(word[:], ret)
	v := new(uint256.Int)
	v.SetBytes32(word[:])
	return v, nil
}

// leftPadAddress pad a 20-byte address into a 32-byte ABI word
func leftPadAddress(addr Address) []byte {
	word := make([]byte, 32)
	copy(word[12:], addr[:])
	return word
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}
