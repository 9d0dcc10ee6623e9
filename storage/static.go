package storage

import (
	"errors"
	"sync"

	"github.com/vaultkit/xexstore/keystate"
)

var (
	defaultAdapter *Adapter
	defaultMu      sync.RWMutex
)

// UseStore installs store as the package-level default adapter's backing
// RawStore, wired to the keystate package-level default key. Must be
// called once before EncryptedRead/EncryptedWrite are used; mirrors the
// reference's process-wide default state.
func UseStore(store RawStore) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultAdapter = NewAdapter(store, keystate.Default())
}

func instance() (*Adapter, error) {
	defaultMu.RLock()
	a := defaultAdapter
	defaultMu.RUnlock()
	if a == nil {
		return nil, errors.New("storage: no default store installed, call storage.UseStore first")
	}
	return a, nil
}

// EncryptedWrite performs a read-modify-write against the package-level
// default adapter, encrypting data under the current master key before it
// reaches the backing store.
func EncryptedWrite(data []byte, address uint32) error {
	a, err := instance()
	if err != nil {
		return err
	}
	return a.Write(data, address)
}

// EncryptedRead decrypts and returns the bytes at address through the
// package-level default adapter.
func EncryptedRead(buf []byte, address uint32) error {
	a, err := instance()
	if err != nil {
		return err
	}
	return a.Read(buf, address)
}
