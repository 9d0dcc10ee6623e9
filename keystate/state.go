package keystate

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/awnumar/memguard"
)

// KeySize is the size in bytes of the combined master key blob:
// encrypt_key (bytes 0..15) followed by tweak_key (bytes 16..31).
const KeySize = 32

// HalfKeySize is the size in bytes of each half of the master key.
const HalfKeySize = KeySize / 2

// ErrKeyTooShort reports a key blob that is not exactly KeySize bytes long.
// SetKey takes a fixed-size [KeySize]byte array and never returns it.
var ErrKeyTooShort = errors.New("keystate: key blob must be exactly 32 bytes")

// State holds the wallet's master key: the encrypt_key and tweak_key halves,
// each sealed in its own memguard enclave. New returns a State holding the
// all-zero key — mirroring the reference's "process-wide, mutable,
// initialized to all zeros" lifecycle; the zero value holds no enclaves and
// is not usable until SetKey or ClearKey is called. A State is safe for
// concurrent access via a single mutex; the spec leaves finer-grained
// concurrency undefined.
type State struct {
	mu         sync.Mutex
	encryptKey *memguard.Enclave
	tweakKey   *memguard.Enclave
}

// New returns a State initialized to the all-zero key, equivalent to a
// freshly cleared key.
func New() *State {
	s := &State{}
	s.ClearKey()
	return s
}

// SetKey installs a new master key from a 32-byte blob: bytes 0..15 become
// encrypt_key, bytes 16..31 become tweak_key.
func (s *State) SetKey(blob [KeySize]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	encrypt := make([]byte, HalfKeySize)
	tweak := make([]byte, HalfKeySize)
	copy(encrypt, blob[:HalfKeySize])
	copy(tweak, blob[HalfKeySize:])

	s.encryptKey = memguard.NewEnclave(encrypt)
	s.tweakKey = memguard.NewEnclave(tweak)

	memguard.WipeBytes(encrypt)
	memguard.WipeBytes(tweak)
}

// GetKey copies the current encrypt_key and tweak_key halves back out into a
// single 32-byte blob. The returned value does not alias any internal
// buffer — the caller owns it and is responsible for wiping it when done.
func (s *State) GetKey() ([KeySize]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out [KeySize]byte

	encrypt, err := s.encryptKey.Open()
	if err != nil {
		return out, fmt.Errorf("keystate: unable to open encrypt_key enclave: %w", err)
	}
	defer encrypt.Destroy()

	tweak, err := s.tweakKey.Open()
	if err != nil {
		return out, fmt.Errorf("keystate: unable to open tweak_key enclave: %w", err)
	}
	defer tweak.Destroy()

	// Copy to local to prevent dereferencement past this call.
	copy(out[:HalfKeySize], encrypt.Bytes())
	copy(out[HalfKeySize:], tweak.Bytes())

	return out, nil
}

// EncryptAndTweakKeys opens both halves of the master key and hands them to
// fn as raw 16-byte arrays; both are destroyed the moment fn returns, so the
// caller must not retain them past the call.
func (s *State) EncryptAndTweakKeys(fn func(encryptKey, tweakKey [HalfKeySize]byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	encrypt, err := s.encryptKey.Open()
	if err != nil {
		return fmt.Errorf("keystate: unable to open encrypt_key enclave: %w", err)
	}
	defer encrypt.Destroy()

	tweak, err := s.tweakKey.Open()
	if err != nil {
		return fmt.Errorf("keystate: unable to open tweak_key enclave: %w", err)
	}
	defer tweak.Destroy()

	var encryptKey, tweakKey [HalfKeySize]byte
	copy(encryptKey[:], encrypt.Bytes())
	copy(tweakKey[:], tweak.Bytes())

	return fn(encryptKey, tweakKey)
}

// ClearKey fills a fresh 32-byte scratch buffer with 0xFF, then with 0x00,
// and seals the all-zero result into fresh enclaves that replace both key
// halves. The old enclaves are dropped, not overwritten: the two passes touch
// only the scratch buffer. runtime.KeepAlive pins the scratch buffer between
// passes so the compiler cannot coalesce both writes into a single store the
// optimizer judges redundant. Calling ClearKey repeatedly is idempotent.
func (s *State) ClearKey() {
	s.mu.Lock()
	defer s.mu.Unlock()

	scratch := make([]byte, KeySize)

	for i := range scratch {
		scratch[i] = 0xFF
	}
	runtime.KeepAlive(scratch)

	for i := range scratch {
		scratch[i] = 0x00
	}
	runtime.KeepAlive(scratch)

	s.encryptKey = memguard.NewEnclave(scratch[:HalfKeySize])
	s.tweakKey = memguard.NewEnclave(scratch[HalfKeySize:])

	memguard.WipeBytes(scratch)
}

// IsKeyNonzero reports whether any byte of either key half is nonzero. The
// comparison OR-accumulates every byte into a single accumulator and tests
// it exactly once at the end, so it does not branch on secret data.
func (s *State) IsKeyNonzero() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	encrypt, err := s.encryptKey.Open()
	if err != nil {
		return false, fmt.Errorf("keystate: unable to open encrypt_key enclave: %w", err)
	}
	defer encrypt.Destroy()

	tweak, err := s.tweakKey.Open()
	if err != nil {
		return false, fmt.Errorf("keystate: unable to open tweak_key enclave: %w", err)
	}
	defer tweak.Destroy()

	var acc byte
	for _, b := range encrypt.Bytes() {
		acc |= b
	}
	for _, b := range tweak.Bytes() {
		acc |= b
	}

	return acc != 0, nil
}
