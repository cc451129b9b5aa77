package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileKVSetGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	kv, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	if _, found, err := kv.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}
	if err := kv.Set(ctx, "alzes_theme_v1", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, found, err := kv.Get(ctx, "alzes_theme_v1")
	if err != nil || !found || value != "dark" {
		t.Fatalf("unexpected get: value=%q found=%v err=%v", value, found, err)
	}
	if err := kv.Delete(ctx, "alzes_theme_v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := kv.Get(ctx, "alzes_theme_v1"); found {
		t.Fatalf("expected key gone after delete")
	}
}

func TestFileKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	kv, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := kv.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	value, found, err := reopened.Get(ctx, "k")
	if err != nil || !found || value != "v" {
		t.Fatalf("unexpected get after reopen: value=%q found=%v err=%v", value, found, err)
	}
}

func TestFileKVCorruptDocumentDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	kv, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, found, _ := kv.Get(context.Background(), "anything"); found {
		t.Fatalf("expected empty store for corrupt document")
	}
}

func TestFileKVCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "store.json")
	kv, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := kv.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected store file on disk: %v", err)
	}
}
