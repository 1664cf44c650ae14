package bridge_service

import (
	"testing"

	"nft-asset-bridge/evm"

	"github.com/holiman/uint256"
)

func testInputs() DerivationInputs {
	var contract evm.Address
	for i := range contract {
		contract[i] = 0xaa
	}
	return DerivationInputs{
		TokenContract: contract,
		TokenID:       uint256.NewInt(1),
		ChainID:       uint256.NewInt(1),
		Salt:          "",
	}
}

func TestDeriveAssetCode_Deterministic(t *testing.T) {
	in := testInputs()

	first := DeriveAssetCode(in)
	for i := 0; i < 10; i++ {
		if got := DeriveAssetCode(in); got != first {
			t.Fatalf("derivation is not deterministic: %x != %x", got, first)
		}
	}
}

func TestDeriveAssetCode_Layout(t *testing.T) {
	in := testInputs()

	// The layout is fixed-width with no delimiters
	var data []byte
	data = append(data, in.TokenContract[:]...)
	tokenID := in.TokenID.Bytes32()
	data = append(data, tokenID[:]...)
	chainID := in.ChainID.Bytes32()
	data = append(data, chainID[:]...)
	want := evm.Keccak256(data)

	if got := DeriveAssetCode(in); got != want {
		t.Errorf("unexpected code: got %x, want %x", got, want)
	}
}

func TestDeriveAssetCode_InputsChangeCode(t *testing.T) {
	base := DeriveAssetCode(testInputs())

	in := testInputs()
	in.TokenID = uint256.NewInt(2)
	if got := DeriveAssetCode(in); got == base {
		t.Errorf("token id change did not change the code")
	}

	in = testInputs()
	in.ChainID = uint256.NewInt(5)
	if got := DeriveAssetCode(in); got == base {
		t.Errorf("chain id change did not change the code")
	}

	in = testInputs()
	in.Salt = "salted"
	if got := DeriveAssetCode(in); got == base {
		t.Errorf("salt change did not change the code")
	}
}

func TestDeriveAssetCode_NilTokenIDIsZeroPadding(t *testing.T) {
	in := testInputs()
	in.TokenID = nil
	withNil := DeriveAssetCode(in)

	in.TokenID = uint256.NewInt(0)
	withZero := DeriveAssetCode(in)

	if withNil != withZero {
		t.Errorf("nil token id must encode as zero padding: %x != %x", withNil, withZero)
	}
}

func TestDeriveAssetCode_SaltLengthMatters(t *testing.T) {
	a := testInputs()
	a.Salt = "x"
	b := testInputs()
	b.Salt = "xx"
	if DeriveAssetCode(a) == DeriveAssetCode(b) {
		t.Errorf("different salts derived the same code")
	}
}
