package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eth2030/ewasm-evm/internal/u256"
)

// programManifest is a named bytecode program plus pre-seeded storage
// slots for the mock host, the same shape as chaos-utils' scenario YAML
// (name/metadata fields plus a typed payload) trimmed to what a single
// interpreter run needs:
//
//	name: multiply-and-return
//	bytecode: "0x6019601a0260005260206000f3"
//	storage:
//	  "0x00": "0x2a"
type programManifest struct {
	Name     string            `yaml:"name"`
	Bytecode string            `yaml:"bytecode"`
	Storage  map[string]string `yaml:"storage"`
}

// loadManifest reads and validates a program manifest from path.
func loadManifest(path string) (*programManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program manifest: %w", err)
	}
	var m programManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse program manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *programManifest) validate() error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Bytecode == "" {
		return fmt.Errorf("bytecode is required")
	}
	return nil
}

// bytecodeBytes decodes the manifest's bytecode field, accepting an
// optional 0x prefix.
func (m *programManifest) bytecodeBytes() ([]byte, error) {
	return decodeHex(m.Bytecode)
}

// storageSeed decodes the manifest's storage map into key/value words.
func (m *programManifest) storageSeed() (map[u256.Word]u256.Word, error) {
	out := make(map[u256.Word]u256.Word, len(m.Storage))
	for k, v := range m.Storage {
		kb, err := decodeHex(k)
		if err != nil {
			return nil, fmt.Errorf("storage key %q: %w", k, err)
		}
		vb, err := decodeHex(v)
		if err != nil {
			return nil, fmt.Errorf("storage value %q: %w", v, err)
		}
		out[u256.FromSlice(kb)] = u256.FromSlice(vb)
	}
	return out, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, err := hexDigit(s[2*i])
		if err != nil {
			return nil, err
		}
		lo, err := hexDigit(s[2*i+1])
		if err != nil {
			return nil, err
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}
