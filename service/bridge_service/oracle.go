package bridge_service

import (
	"errors"
	"math"

	"nft-asset-bridge/evm"

	"github.com/holiman/uint256"
)

// QueryBalance issue a balanceOf view call against an admitted contract.
// A nil tokenID selects the ERC-721 single-argument form; otherwise the
// ERC-1155 form is used.
func QueryBalance(entry *ChainEntry, contract, owner evm.Address, tokenID *uint256.Int) (*uint256.Int, *Failure) {
	var data []byte
	if tokenID != nil {
		data = evm.EncodeBalanceOf1155(owner, tokenID)
	} else {
		data = evm.EncodeBalanceOf(owner)
	}
	if len(data) == 0 {
		return nil, failf(CodeOracleEncode, "failed to encode balanceOf calldata")
	}

	ret, err := entry.Client.CallContract(contract.Hex(), data)
	if err != nil {
		return nil, oracleFailure(err)
	}

	balance, err := evm.DecodeUint256(ret)
	if err != nil {
		return nil, oracleFailure(err)
	}
	return balance, nil
}

// NormalizeAmount apply the issuance amount policy to a raw balance: a
// zero balance means the caller does not hold the token, and anything
// above the 64-bit range is saturated to bound the issued amount.
func NormalizeAmount(balance *uint256.Int) (uint64, *Failure) {
	if balance.IsZero() {
		return 0, failf(CodeZeroBalance, "balance is zero")
	}
	if !balance.IsUint64() {
		return math.MaxUint64, nil
	}
	return balance.Uint64(), nil
}

// oracleFailure map a balance query error onto its stable code
func oracleFailure(err error) *Failure {
	switch {
	case errors.Is(err, evm.ErrNoReturn):
		return failf(CodeOracleNoReturn, "balance not found")
	case errors.Is(err, evm.ErrTypeMismatch):
		return failf(CodeOracleType, "balance return type error: %v", err)
	case errors.Is(err, evm.ErrDecode):
		return failf(CodeOracleDecode, "error: %v", err)
	case errors.Is(err, evm.ErrEncode):
		return failf(CodeOracleEncode, "error: %v", err)
	default:
		return failf(CodeOracleCall, "error: %v", err)
	}
}
