package blob

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFSStoreWriteAndOverwrite(t *testing.T) {
	store, err := NewFSStore(t.TempDir() + "/assets")
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	if err := store.Write(t.Context(), "ncaaf/abc123.png", []byte("first")); err != nil {
		t.Fatalf("write asset: %v", err)
	}
	if err := store.Write(t.Context(), "ncaaf/abc123.png", []byte("second")); err != nil {
		t.Fatalf("overwrite asset: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(store.root, "ncaaf", "abc123.png"))
	if err != nil {
		t.Fatalf("read asset back: %v", err)
	}
	if !bytes.Equal(data, []byte("second")) {
		t.Fatalf("expected overwritten content, got %q", data)
	}
}

func TestFSStoreRejectsEscapingKeys(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	for _, key := range []string{"", "../outside.png", "/abs.png"} {
		if err := store.Write(t.Context(), key, []byte("x")); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}
