package bridge_service

import (
	"fmt"
	"log"

	"nft-asset-bridge/evm"

	"github.com/holiman/uint256"
)

// ChainClient is what the registry and oracle need from an EVM endpoint.
// *evm.Client satisfies it; tests substitute stubs.
type ChainClient interface {
	ChainID() (*uint256.Int, error)
	CallContract(contract string, data []byte) ([]byte, error)
}

// ChainEndpoint one configured endpoint and its contract allow-list,
// before the chain id is known.
type ChainEndpoint struct {
	Client    ChainClient
	Contracts []string
}

// ChainEntry one admitted chain: its probed id, its client, and the set of
// admitted token contracts. Read-only after startup.
type ChainEntry struct {
	ChainID   *uint256.Int
	Client    ChainClient
	contracts map[evm.Address]struct{}
}

// IsAdmitted report whether a token contract is on this chain's allow-list
func (e *ChainEntry) IsAdmitted(contract evm.Address) bool {
	_, ok := e.contracts[contract]
	return ok
}

// Contracts return the admitted contract addresses
func (e *ChainEntry) Contracts() []string {
	out := make([]string, 0, len(e.contracts))
	for addr := range e.contracts {
		out = append(out, addr.Hex())
	}
	return out
}

// Registry immutable map from chain id to chain entry, built once at
// startup by probing each endpoint's reported chain id. Safe for
// concurrent reads.
type Registry struct {
	chains map[[32]byte]*ChainEntry
}

// BuildRegistry probe every configured endpoint and bind its reported
// chain id to its allow-list. A chain id collision between two endpoints
// is a configuration error.
func BuildRegistry(endpoints []ChainEndpoint) (*Registry, error) {
	chains := make(map[[32]byte]*ChainEntry, len(endpoints))
	for _, ep := range endpoints {
		chainID, err := ep.Client.ChainID()
		if err != nil {
			return nil, fmt.Errorf("failed to probe chain id: %w", err)
		}

		key := chainID.Bytes32()
		if _, ok := chains[key]; ok {
			return nil, fmt.Errorf("chain id collision: %s configured twice", chainID.Dec())
		}

		contracts := make(map[evm.Address]struct{}, len(ep.Contracts))
		for _, c := range ep.Contracts {
			addr, err := evm.ParseAddress(c)
			if err != nil {
				return nil, fmt.Errorf("invalid contract on chain %s: %w", chainID.Dec(), err)
			}
			contracts[addr] = struct{}{}
		}

		chains[key] = &ChainEntry{
			ChainID:   chainID,
			Client:    ep.Client,
			contracts: contracts,
		}
		log.Printf("Registered chain %s with %d admitted contracts", chainID.Dec(), len(contracts))
	}
	return &Registry{chains: chains}, nil
}

// Resolve look up the entry for a chain id
func (r *Registry) Resolve(chainID *uint256.Int) (*ChainEntry, bool) {
	entry, ok := r.chains[chainID.Bytes32()]
	return entry, ok
}

// Supported return the supported chain map, decimal chain id to admitted
// contract addresses
func (r *Registry) Supported() map[string][]string {
	out := make(map[string][]string, len(r.chains))
	for _, entry := range r.chains {
		out[entry.ChainID.Dec()] = entry.Contracts()
	}
	return out
}
