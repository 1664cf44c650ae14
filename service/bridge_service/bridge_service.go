package bridge_service

import (
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"nft-asset-bridge/database"
	"nft-asset-bridge/evm"
	"nft-asset-bridge/ledger"
	"nft-asset-bridge/model"

	"github.com/holiman/uint256"
)

// AssetDecimals fixed precision of every bridged asset type
const AssetDecimals = 6

// LedgerClient is what the builder needs from the target ledger.
// *ledger.Client satisfies it; tests substitute stubs.
type LedgerClient interface {
	NextSequenceID() (uint64, error)
	DeriveAssetCode(raw [32]byte) ([32]byte, error)
}

// EventPublisher optional sink for committed issuances.
type EventPublisher interface {
	Publish(record *model.IssuanceRecord, committed bool)
}

// BridgeService sequences identity verification, admission control,
// balance verification, derivation, issuance building and the idempotency
// store into the end-to-end flow.
type BridgeService struct {
	registry     *Registry
	ledger       LedgerClient
	remoteDerive bool
	identities   ledger.SigningIdentityProvider
	store        database.Store
	publisher    EventPublisher

	codeLocks keyLockTable
}

// NewBridgeService create bridge service instance. publisher may be nil.
func NewBridgeService(registry *Registry, ledgerClient LedgerClient, remoteDerive bool,
	identities ledger.SigningIdentityProvider, store database.Store, publisher EventPublisher) *BridgeService {
	return &BridgeService{
		registry:     registry,
		ledger:       ledgerClient,
		remoteDerive: remoteDerive,
		identities:   identities,
		store:        store,
		publisher:    publisher,
	}
}

// SupportedChains return the supported chain map for the query endpoint
func (s *BridgeService) SupportedChains() map[string][]string {
	return s.registry.Supported()
}

// IssueAgainstOwnershipProof run the end-to-end bridging flow for one
// request. Every failure is converted into a stable negative code; the
// transport layer always delivers the result with HTTP 200.
func (s *BridgeService) IssueAgainstOwnershipProof(req *model.IssuanceRequest) *model.IssuanceResult {
	result := &model.IssuanceResult{ID: req.ID, Code: CodeOk}

	proof, fail := VerifyIdentity(req.ReceivePublicKey, req.Signature, req.SignMode)
	if fail != nil {
		return failResult(result, fail)
	}

	chainID, err := parseUint256(req.ChainID)
	if err != nil {
		return failResult(result, failf(CodeChainIDFormat, "chainid format error: %v", err))
	}
	tokenAddress, err := evm.ParseAddress(req.TokenAddress)
	if err != nil {
		return failResult(result, failf(CodeContractFormat, "token_address format error: %v", err))
	}
	var tokenID *uint256.Int
	if req.TokenID1155 != "" {
		tokenID, err = parseUint256(req.TokenID1155)
		if err != nil {
			return failResult(result, failf(CodeTokenIDFormat, "tokenid format error: %v", err))
		}
	}

	entry, ok := s.registry.Resolve(chainID)
	if !ok {
		return failResult(result, failf(CodeChainNotSupport, "chain not support"))
	}
	if !entry.IsAdmitted(tokenAddress) {
		return failResult(result, failf(CodeTokenNotSupport, "token_address not support"))
	}

	balance, fail := QueryBalance(entry, tokenAddress, proof.Address, tokenID)
	if fail != nil {
		return failResult(result, fail)
	}
	amount, fail := NormalizeAmount(balance)
	if fail != nil {
		return failResult(result, fail)
	}

	rawCode := DeriveAssetCode(DerivationInputs{
		TokenContract: tokenAddress,
		TokenID:       tokenID,
		ChainID:       chainID,
		Salt:          req.Salt,
	})
	code, fail := s.canonicalize(rawCode)
	if fail != nil {
		return failResult(result, fail)
	}
	codeHex := hex.EncodeToString(code[:])

	// The exists-build-commit sequence for one code must not interleave
	// with itself, or two requests for the same NFT could both issue.
	unlock := s.codeLocks.lock(codeHex)
	defer unlock()

	exists, err := s.store.Exists(codeHex)
	if err != nil {
		return failResult(result, failf(CodeCreateRecord, "store error: %v", err))
	}
	if exists {
		return failResult(result, failf(CodeAlreadyIssued, "asset code %s already issued", codeHex))
	}

	serialized, fail := s.build(rawCode, code, amount)
	if fail != nil {
		return failResult(result, fail)
	}

	record := &model.IssuanceRecord{
		Code:        codeHex,
		RequestID:   req.ID,
		Request:     *req,
		Amount:      amount,
		Transaction: serialized,
		CreatedAt:   time.Now().UTC(),
	}

	result.Msg = serialized
	if err := s.store.Commit(record); err != nil {
		// The transaction was already built; deliver it anyway and flag
		// the persistence failure so operators can reconcile.
		log.Printf("Failed to persist issuance record %s: %v", codeHex, err)
		result.Code = commitFailureCode(err)
		s.publish(record, false)
		return result
	}

	s.publish(record, true)
	return result
}

// GetIssuanceByCode read path for a previously committed issuance record.
// The code is the lowercase hex string of the derived asset code.
func (s *BridgeService) GetIssuanceByCode(codeHex string) (*model.IssuanceRecord, error) {
	codeHex = strings.ToLower(strings.TrimPrefix(codeHex, "0x"))
	if raw, err := hex.DecodeString(codeHex); err != nil || len(raw) != 32 {
		return nil, database.ErrNotFound
	}

	var cached model.IssuanceRecord
	if err := database.GetCache(cacheKey(codeHex), &cached); err == nil {
		return &cached, nil
	}

	record, err := s.store.Lookup(codeHex)
	if err != nil {
		return nil, err
	}
	database.SetCache(cacheKey(codeHex), record)
	return record, nil
}

// build construct the two-operation create+issue transaction
func (s *BridgeService) build(rawCode, assetCode [32]byte, amount uint64) (string, *Failure) {
	kp, err := s.identities.Generate()
	if err != nil {
		return "", failf(CodeKeypair, "error: %v", err)
	}

	seqID, err := s.ledger.NextSequenceID()
	if err != nil {
		return "", failf(CodeSequenceFetch, "error: %v", err)
	}

	var rules ledger.AssetRules
	if err := rules.SetDecimals(AssetDecimals); err != nil {
		return "", failf(CodeAssetRules, "error: %v", err)
	}
	rules.SetMaxUnits(nil)
	rules.SetTransferable(true)

	builder := ledger.NewTransactionBuilderFromSeqID(seqID)
	if err := builder.AddOperationCreateAsset(kp, rawCode, rules, ""); err != nil {
		return "", failf(CodeDefineOp, "error: %v", err)
	}
	if err := builder.AddBasicIssueAsset(kp, assetCode, builder.GetSeqID(), amount, ledger.RecordTypeNonConfidential); err != nil {
		return "", failf(CodeIssueOp, "error: %v", err)
	}

	serialized, err := builder.Serialize()
	if err != nil {
		return "", failf(CodeSerialize, "error: %v", err)
	}
	return serialized, nil
}

// canonicalize map the raw derived code into the ledger's asset type
// namespace, remotely when configured
func (s *BridgeService) canonicalize(raw [32]byte) ([32]byte, *Failure) {
	if !s.remoteDerive {
		return ledger.CanonicalizeLocal(raw), nil
	}
	code, err := s.ledger.DeriveAssetCode(raw)
	if err != nil {
		return code, failf(CodeDerivation, "error: %v", err)
	}
	return code, nil
}

func (s *BridgeService) publish(record *model.IssuanceRecord, committed bool) {
	if s.publisher != nil {
		s.publisher.Publish(record, committed)
	}
}

// commitFailureCode map a store commit error onto its stable code
func commitFailureCode(err error) int32 {
	switch {
	case errors.Is(err, database.ErrEncodeRecord):
		return CodeEncodeRecord
	case errors.Is(err, database.ErrCreateRecord), errors.Is(err, database.ErrAlreadyExists):
		return CodeCreateRecord
	default:
		return CodeWriteRecord
	}
}

func failResult(result *model.IssuanceResult, fail *Failure) *model.IssuanceResult {
	result.Code = fail.Code
	result.Msg = fail.Msg
	return result
}

// parseUint256 parse a decimal or 0x-hex 256-bit integer
func parseUint256(s string) (*uint256.Int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return uint256.FromHex(strings.ToLower(s))
	}
	return uint256.FromDecimal(s)
}

func cacheKey(codeHex string) string {
	return "issuance:" + codeHex
}

// keyLockTable mutex per derived code. Entries are retained for the
// process lifetime; the key space is bounded by distinct issued codes.
type keyLockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (t *keyLockTable) lock(key string) func() {
	t.mu.Lock()
	if t.locks == nil {
		t.locks = make(map[string]*sync.Mutex)
	}
	l, ok := t.locks[key]
	if !ok {
		l = &sync.Mutex{}
		t.locks[key] = l
	}
	t.mu.Unlock()

	l.Lock()
	return l.Unlock
}
