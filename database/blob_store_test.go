package database

import (
	"errors"
	"testing"
	"time"

	"nft-asset-bridge/model"
	"nft-asset-bridge/storage"
)

func testBlobStore(t *testing.T) Store {
	t.Helper()
	backend, err := storage.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create storage backend: %v", err)
	}
	store, err := NewBlobStore(backend)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func testRecord(code string) *model.IssuanceRecord {
	return &model.IssuanceRecord{
		Code:      code,
		RequestID: "req-001",
		Request: model.IssuanceRequest{
			ID:           "req-001",
			ChainID:      "1",
			TokenAddress: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		},
		Amount:      42,
		Transaction: `{"seq_id":7,"operations":[]}`,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestBlobStore_CommitAndLookup(t *testing.T) {
	store := testBlobStore(t)
	code := "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"

	exists, err := store.Exists(code)
	if err != nil {
		t.Fatalf("exists check failed: %v", err)
	}
	if exists {
		t.Fatalf("record exists before commit")
	}

	if err := store.Commit(testRecord(code)); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	exists, err = store.Exists(code)
	if err != nil {
		t.Fatalf("exists check failed: %v", err)
	}
	if !exists {
		t.Errorf("record absent after commit")
	}

	record, err := store.Lookup(code)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if record.Amount != 42 {
		t.Errorf("got amount %d, want 42", record.Amount)
	}
	if record.Request.TokenAddress != "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Errorf("record does not carry the original request")
	}
}

func TestBlobStore_WriteOnce(t *testing.T) {
	store := testBlobStore(t)
	code := "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"

	if err := store.Commit(testRecord(code)); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	second := testRecord(code)
	second.Amount = 99
	if err := store.Commit(second); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("second commit: got %v, want ErrAlreadyExists", err)
	}

	// The stored record is untouched
	record, err := store.Lookup(code)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if record.Amount != 42 {
		t.Errorf("record was overwritten: amount %d", record.Amount)
	}
}

func TestBlobStore_LookupAbsent(t *testing.T) {
	store := testBlobStore(t)
	if _, err := store.Lookup("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
