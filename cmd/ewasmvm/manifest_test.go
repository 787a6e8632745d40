package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.yaml")
	content := []byte(`
name: multiply-and-return
bytecode: "0x6019601a0260005260206000f3"
storage:
  "0x00": "0x2a"
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	m, err := loadManifest(path)
	if err != nil {
		t.Fatalf("loadManifest: %v", err)
	}
	if m.Name != "multiply-and-return" {
		t.Fatalf("Name = %q", m.Name)
	}

	code, err := m.bytecodeBytes()
	if err != nil {
		t.Fatalf("bytecodeBytes: %v", err)
	}
	if len(code) != 13 {
		t.Fatalf("len(code) = %d, want 13", len(code))
	}

	seed, err := m.storageSeed()
	if err != nil {
		t.Fatalf("storageSeed: %v", err)
	}
	if len(seed) != 1 {
		t.Fatalf("len(seed) = %d, want 1", len(seed))
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	if _, err := loadManifest("/nonexistent/path.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadManifestMissingName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.yaml")
	content := []byte(`bytecode: "0x00"`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := loadManifest(path); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestDecodeHexOddLength(t *testing.T) {
	got, err := decodeHex("0x2a")
	if err != nil {
		t.Fatalf("decodeHex: %v", err)
	}
	if len(got) != 1 || got[0] != 0x2a {
		t.Fatalf("decodeHex = %x", got)
	}

	got, err = decodeHex("0xa")
	if err != nil {
		t.Fatalf("decodeHex odd-length: %v", err)
	}
	if len(got) != 1 || got[0] != 0x0a {
		t.Fatalf("decodeHex odd-length = %x", got)
	}
}

func TestDecodeHexInvalidDigit(t *testing.T) {
	if _, err := decodeHex("0xzz"); err == nil {
		t.Fatal("expected error for invalid hex digit")
	}
}
