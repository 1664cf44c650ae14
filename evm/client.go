package evm

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
	"github.com/imroc/req"
	"github.com/tidwall/gjson"
)

// Client minimal EVM JSON-RPC client. Only the two calls the bridge needs
// are implemented: eth_chainId and eth_call.
type Client struct {
	url string
}

// NewClient create EVM client for a JSON-RPC endpoint
func NewClient(url string) *Client {
	return &Client{url: url}
}

// Url return the endpoint URL
func (c *Client) Url() string {
	return c.url
}

type rpcRequest struct {
	JsonRpc string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// call execute one JSON-RPC call and return the raw result field
func (c *Client) call(method string, params ...interface{}) (gjson.Result, error) {
	if params == nil {
		params = []interface{}{}
	}
	body := rpcRequest{
		JsonRpc: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	}

	resp, err := req.Post(c.url, req.BodyJSON(&body))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %s: %v", ErrCall, method, err)
	}
	raw, err := resp.ToString()
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %s: %v", ErrCall, method, err)
	}

	if errMsg := gjson.Get(raw, "error.message"); errMsg.Exists() {
		return gjson.Result{}, fmt.Errorf("%w: %s: %s", ErrCall, method, errMsg.String())
	}
	result := gjson.Get(raw, "result")
	if !result.Exists() {
		return gjson.Result{}, fmt.Errorf("%w: %s: missing result", ErrCall, method)
	}
	return result, nil
}

// ChainID query the chain id reported by the endpoint
func (c *Client) ChainID() (*uint256.Int, error) {
	result, err := c.call("eth_chainId")
	if err != nil {
		return nil, err
	}
	id, err := uint256.FromHex(result.String())
	if err != nil {
		return nil, fmt.Errorf("%w: eth_chainId returned %q: %v", ErrDecode, result.String(), err)
	}
	return id, nil
}

// CallContract execute an eth_call view call against a contract and return
// the raw returned bytes
func (c *Client) CallContract(contract string, data []byte) ([]byte, error) {
	params := map[string]string{
		"to":   contract,
		"data": "0x" + fmt.Sprintf("%x", data),
	}
	result, err := c.call("eth_call", params, "latest")
	if err != nil {
		return nil, err
	}

	hexStr := strings.TrimPrefix(result.String(), "0x")
	if hexStr == "" {
		return []byte{}, nil
	}
	out, err := decodeHex(hexStr)
	if err != nil {
		return nil, fmt.Errorf("%w: eth_call returned %q: %v", ErrDecode, result.String(), err)
	}
	return out, nil
}
