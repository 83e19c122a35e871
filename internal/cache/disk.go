package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Disk persists fetched PDFs across runs. Payloads are multi-megabyte
// binaries, so each entry is stored as the raw payload file plus a small
// JSON sidecar carrying the expiry, instead of JSON-wrapping the bytes.
type Disk struct {
	dir string
	ttl time.Duration
}

// NewDisk creates a disk cache rooted at dir with the given default TTL
func NewDisk(dir string, ttl time.Duration) *Disk {
	return &Disk{dir: dir, ttl: ttl}
}

type diskMeta struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a cached document, dropping it if expired
func (d *Disk) Get(key string) ([]byte, bool) {
	metaRaw, err := os.ReadFile(d.metaPath(key))
	if err != nil {
		return nil, false
	}

	var meta diskMeta
	if err := json.Unmarshal(metaRaw, &meta); err != nil {
		return nil, false
	}

	if time.Now().After(meta.ExpiresAt) {
		_ = os.Remove(d.metaPath(key))
		_ = os.Remove(d.payloadPath(key))
		return nil, false
	}

	data, err := os.ReadFile(d.payloadPath(key))
	if err != nil {
		return nil, false
	}

	return data, true
}

// Set stores a document with the given TTL (0 uses the default)
func (d *Disk) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = d.ttl
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	metaRaw, err := json.Marshal(diskMeta{ExpiresAt: time.Now().Add(ttl)})
	if err != nil {
		return fmt.Errorf("marshal cache meta: %w", err)
	}

	if err := os.WriteFile(d.payloadPath(key), value, 0o644); err != nil {
		return fmt.Errorf("write cache payload: %w", err)
	}
	if err := os.WriteFile(d.metaPath(key), metaRaw, 0o644); err != nil {
		return fmt.Errorf("write cache meta: %w", err)
	}

	return nil
}

// Delete removes a cached document
func (d *Disk) Delete(key string) error {
	_ = os.Remove(d.metaPath(key))
	return os.Remove(d.payloadPath(key))
}

// Clear removes the whole cache directory
func (d *Disk) Clear() error {
	return os.RemoveAll(d.dir)
}

func (d *Disk) payloadPath(key string) string {
	return filepath.Join(d.dir, key+".pdf")
}

func (d *Disk) metaPath(key string) string {
	return filepath.Join(d.dir, key+".meta")
}
