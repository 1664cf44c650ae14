package bridge_service

import (
	"errors"
	"math"
	"testing"

	"nft-asset-bridge/evm"

	"github.com/holiman/uint256"
)

func stubEntry(client ChainClient) *ChainEntry {
	return &ChainEntry{
		ChainID:   uint256.NewInt(1),
		Client:    client,
		contracts: map[evm.Address]struct{}{},
	}
}

func balanceWord(v *uint256.Int) []byte {
	word := v.Bytes32()
	return word[:]
}

func TestQueryBalance_ERC721(t *testing.T) {
	chain := &stubChain{callReturn: balanceWord(uint256.NewInt(42))}
	contract, _ := evm.ParseAddress(admittedContract)
	var owner evm.Address

	balance, fail := QueryBalance(stubEntry(chain), contract, owner, nil)
	if fail != nil {
		t.Fatalf("query failed: code=%d msg=%s", fail.Code, fail.Msg)
	}
	if balance.Uint64() != 42 {
		t.Errorf("got balance %s, want 42", balance.Dec())
	}
	if chain.calls() != 1 {
		t.Errorf("expected exactly one call, got %d", chain.calls())
	}
}

func TestQueryBalance_ErrorMapping(t *testing.T) {
	contract, _ := evm.ParseAddress(admittedContract)
	var owner evm.Address

	tests := []struct {
		name     string
		chain    *stubChain
		wantCode int32
	}{
		{"rpc failure", &stubChain{callErr: errors.New("connection reset")}, CodeOracleCall},
		{"decode failure", &stubChain{callErr: evm.ErrDecode}, CodeOracleDecode},
		{"empty return", &stubChain{callReturn: []byte{}}, CodeOracleNoReturn},
		{"short return", &stubChain{callReturn: []byte{0x01, 0x02}}, CodeOracleType},
	}

	for _, tt := range tests {
		_, fail := QueryBalance(stubEntry(tt.chain), contract, owner, nil)
		if fail == nil {
			t.Errorf("%s: query unexpectedly succeeded", tt.name)
			continue
		}
		if fail.Code != tt.wantCode {
			t.Errorf("%s: got code %d, want %d", tt.name, fail.Code, tt.wantCode)
		}
	}
}

func TestNormalizeAmount_ZeroRejected(t *testing.T) {
	_, fail := NormalizeAmount(uint256.NewInt(0))
	if fail == nil {
		t.Fatalf("zero balance not rejected")
	}
	if fail.Code != CodeZeroBalance {
		t.Errorf("got code %d, want %d", fail.Code, CodeZeroBalance)
	}
}

func TestNormalizeAmount_Saturation(t *testing.T) {
	over := new(uint256.Int).Lsh(uint256.NewInt(1), 64) // 2^64
	over.Add(over, uint256.NewInt(5))

	amount, fail := NormalizeAmount(over)
	if fail != nil {
		t.Fatalf("normalization failed: code=%d msg=%s", fail.Code, fail.Msg)
	}
	if amount != math.MaxUint64 {
		t.Errorf("got amount %d, want saturation to %d", amount, uint64(math.MaxUint64))
	}
}

func TestNormalizeAmount_InRange(t *testing.T) {
	amount, fail := NormalizeAmount(uint256.NewInt(42))
	if fail != nil {
		t.Fatalf("normalization failed: code=%d msg=%s", fail.Code, fail.Msg)
	}
	if amount != 42 {
		t.Errorf("got amount %d, want 42", amount)
	}

	exact := uint256.NewInt(math.MaxUint64)
	amount, fail = NormalizeAmount(exact)
	if fail != nil {
		t.Fatalf("normalization failed: code=%d msg=%s", fail.Code, fail.Msg)
	}
	if amount != math.MaxUint64 {
		t.Errorf("got amount %d, want %d", amount, uint64(math.MaxUint64))
	}
}
