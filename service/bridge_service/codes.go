package bridge_service

import "fmt"

// Stable negative response codes. These are part of the public API: callers
// and operators key on them, so they never get renumbered.
const (
	CodeOk int32 = 0

	// Identity verification
	CodePublicKeyLength int32 = -1 // receive public key is not 32 bytes
	CodeHexDecode       int32 = -3 // public key or signature is not valid hex
	CodeSignatureFormat int32 = -4 // signature is not 65 bytes
	CodeRecoverFailed   int32 = -5 // signature recovery failed
	CodePublicKeyParse  int32 = -6 // receive public key is not a valid curve point

	// Balance oracle
	CodeOracleEncode   int32 = -11
	CodeOracleCall     int32 = -12
	CodeOracleDecode   int32 = -13
	CodeOracleNoReturn int32 = -14
	CodeOracleType     int32 = -15

	// Issuance builder
	CodeBadRawCode    int32 = -21
	CodeAssetRules    int32 = -22
	CodeKeypair       int32 = -24
	CodeSequenceFetch int32 = -25
	CodeDefineOp      int32 = -26
	CodeIssueOp       int32 = -27
	CodeDerivation    int32 = -28 // remote canonicalization unavailable

	// Admission and request parsing
	CodeChainIDFormat   int32 = -30
	CodeContractFormat  int32 = -31
	CodeChainNotSupport int32 = -32
	CodeTokenNotSupport int32 = -33
	CodeTokenIDFormat   int32 = -35
	CodeZeroBalance     int32 = -36
	CodeAlreadyIssued   int32 = -37 // derived code already has a committed record

	// Serialization and persistence
	CodeSerialize    int32 = -50
	CodeCreateRecord int32 = -60
	CodeEncodeRecord int32 = -70
	CodeWriteRecord  int32 = -80
)

// Failure one request-scoped failure, carrying its stable code and a
// human-readable diagnostic.
type Failure struct {
	Code int32
	Msg  string
}

func failf(code int32, format string, args ...interface{}) *Failure {
	return &Failure{Code: code, Msg: fmt.Sprintf(format, args...)}
}
