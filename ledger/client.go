package ledger

import (
	"encoding/hex"
	"fmt"

	"github.com/imroc/req"
	"github.com/tidwall/gjson"
	"golang.org/x/crypto/sha3"
)

// assetTypePrefixUserDefined prefix byte the ledger applies to user-defined
// asset types before hashing them into its identifier namespace.
const assetTypePrefixUserDefined byte = 0x00

// Client read-only client for the target asset ledger's query endpoint.
type Client struct {
	queryUrl string
}

// NewClient create ledger client for a query endpoint base URL
func NewClient(queryUrl string) *Client {
	return &Client{queryUrl: queryUrl}
}

// NextSequenceID fetch the current sequence id from the ledger's global
// state. The endpoint returns a three-element tuple; the sequence id is the
// middle element.
func (c *Client) NextSequenceID() (uint64, error) {
	url := fmt.Sprintf("%s/global_state", c.queryUrl)
	resp, err := req.Get(url)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch global state: %w", err)
	}
	raw, err := resp.ToString()
	if err != nil {
		return 0, fmt.Errorf("failed to read global state response: %w", err)
	}

	parsed := gjson.Parse(raw)
	if !parsed.IsArray() || len(parsed.Array()) < 2 {
		return 0, fmt.Errorf("malformed global state response: %s", raw)
	}
	return parsed.Array()[1].Uint(), nil
}

// DeriveAssetCode canonicalize a raw derived code through the ledger's
// user-defined asset type derivation endpoint.
func (c *Client) DeriveAssetCode(raw [32]byte) ([32]byte, error) {
	var code [32]byte
	url := fmt.Sprintf("%s/derived_asset_code/%s", c.queryUrl, hex.EncodeToString(raw[:]))
	resp, err := req.Get(url)
	if err != nil {
		return code, fmt.Errorf("derivation endpoint unreachable: %w", err)
	}
	body, err := resp.ToString()
	if err != nil {
		return code, fmt.Errorf("failed to read derivation response: %w", err)
	}

	codeHex := gjson.Get(body, "code").String()
	decoded, err := hex.DecodeString(codeHex)
	if err != nil || len(decoded) != 32 {
		return code, fmt.Errorf("malformed derivation response: %s", body)
	}
	copy(code[:], decoded)
	return code, nil
}

// CanonicalizeLocal map a raw derived code into the ledger's user-defined
// asset type namespace without a network round trip. Mirrors the ledger's
// own prefix-and-rehash derivation.
func CanonicalizeLocal(raw [32]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte{assetTypePrefixUserDefined})
	h.Write(raw[:])
	var code [32]byte
	h.Sum(code[:0])
	return code
}
