// Package memstore is a bounds-checked in-memory storage.RawStore, used by
// property tests; the CLI does not use it. It is not part of
// the encrypted storage adapter's core and carries no durability guarantee
// whatsoever: Flush is a no-op.
package memstore

import (
	"fmt"

	"github.com/vaultkit/xexstore/storage"
)

// Store is a flat byte slice addressed like a raw block device.
type Store struct {
	data []byte
}

var _ storage.RawStore = (*Store)(nil)

// New returns a Store of the given size in bytes, all zeros.
func New(size int) *Store {
	return &Store{data: make([]byte, size)}
}

// Len returns the store's total addressable size in bytes.
func (s *Store) Len() int {
	return len(s.data)
}

func (s *Store) bounds(n int, address uint32) error {
	end := uint64(address) + uint64(n)
	if end > uint64(len(s.data)) {
		return fmt.Errorf("memstore: access [%d, %d) exceeds store size %d", address, end, len(s.data))
	}
	return nil
}

// Read copies len(buf) bytes starting at address into buf.
func (s *Store) Read(buf []byte, address uint32) error {
	if err := s.bounds(len(buf), address); err != nil {
		return err
	}
	copy(buf, s.data[address:int(address)+len(buf)])
	return nil
}

// Write copies buf into the store starting at address.
func (s *Store) Write(buf []byte, address uint32) error {
	if err := s.bounds(len(buf), address); err != nil {
		return err
	}
	copy(s.data[address:int(address)+len(buf)], buf)
	return nil
}

// Flush is a no-op; Store has no internal buffering.
func (s *Store) Flush() error {
	return nil
}

// Snapshot returns a copy of the store's current raw (ciphertext) contents,
// for test assertions that need to inspect bytes outside the RawStore
// interface.
func (s *Store) Snapshot() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}
