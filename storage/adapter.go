package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/vaultkit/xexstore/crypto/xex"
	"github.com/vaultkit/xexstore/keystate"
)

// BlockSize is the raw store's fixed block size in bytes.
const BlockSize = 16

const blockMask = uint32(BlockSize - 1)

// Adapter is the encrypted storage adapter: it owns a RawStore and a
// keystate.State and turns Read/Write calls at arbitrary byte offsets into
// aligned BlockSize read-modify-write cycles against the store, each
// encrypted under the current master key with the block's starting address
// as the XEX tweak.
type Adapter struct {
	store RawStore
	keys  *keystate.State
}

// NewAdapter returns an Adapter backed by store, using keys as its master
// key source. A nil keys defaults to the package-level default keystate.
func NewAdapter(store RawStore, keys *keystate.State) *Adapter {
	if keys == nil {
		keys = keystate.Default()
	}
	return &Adapter{store: store, keys: keys}
}

// Keys returns the Adapter's underlying keystate.State, so callers wired to
// an explicit Adapter can still install or clear keys without reaching for
// the package-level static API.
func (a *Adapter) Keys() *keystate.State {
	return a.keys
}

func blockTweak(address uint32) [16]byte {
	var n [16]byte
	binary.LittleEndian.PutUint32(n[:4], address)
	return n
}

// blockRange computes first_block, last_block, first_offset for an
// address+length span, per the reference block-translation formulas.
func blockRange(address uint32, length int) (firstBlock, lastBlock uint32, firstOffset uint32, err error) {
	if length <= 0 {
		return 0, 0, 0, ErrZeroLength
	}

	end := uint64(address) + uint64(length) - 1
	if end > uint64(^uint32(0)) {
		return 0, 0, 0, ErrOutOfRange
	}

	firstBlock = address &^ blockMask
	lastBlock = uint32(end) &^ blockMask
	firstOffset = address & blockMask

	return firstBlock, lastBlock, firstOffset, nil
}

// Write performs the read-modify-write algorithm: each touched block is
// raw-read, XEX-decrypted, overlaid with data starting at first_offset on
// the first block only, XEX-encrypted, and raw-written back, strictly in
// increasing address order.
func (a *Adapter) Write(data []byte, address uint32) error {
	firstBlock, lastBlock, firstOffset, err := blockRange(address, len(data))
	if err != nil {
		return err
	}

	return a.keys.EncryptAndTweakKeys(func(encryptKeyBytes, tweakKeyBytes [keystate.HalfKeySize]byte) error {
		encryptPrim, err := xex.NewAESPrimitive(encryptKeyBytes)
		if err != nil {
			return fmt.Errorf("storage: unable to prepare encrypt-key primitive: %w", err)
		}
		tweakPrim, err := xex.NewAESPrimitive(tweakKeyBytes)
		if err != nil {
			return fmt.Errorf("storage: unable to prepare tweak-key primitive: %w", err)
		}

		offset := firstOffset
		remaining := data

		for b := firstBlock; ; b += BlockSize {
			var ciphertext, plaintext [BlockSize]byte

			if err := a.store.Read(ciphertext[:], b); err != nil {
				return fmt.Errorf("storage: raw read at block %d failed: %w", b, err)
			}

			if err := xex.Decrypt(&plaintext, &ciphertext, blockTweak(b), 1, tweakPrim, encryptPrim); err != nil {
				return fmt.Errorf("storage: xex decrypt at block %d failed: %w", b, err)
			}

			n := copy(plaintext[offset:], remaining)
			remaining = remaining[n:]

			if err := xex.Encrypt(&ciphertext, &plaintext, blockTweak(b), 1, tweakPrim, encryptPrim); err != nil {
				return fmt.Errorf("storage: xex encrypt at block %d failed: %w", b, err)
			}

			if err := a.store.Write(ciphertext[:], b); err != nil {
				return fmt.Errorf("storage: raw write at block %d failed: %w", b, err)
			}

			if b == lastBlock {
				break
			}
			offset = 0
		}

		return nil
	})
}

// Read performs the read-only half of the block translation: each touched
// block is raw-read and XEX-decrypted, then the span starting at
// first_offset on the first block is copied out into buf.
func (a *Adapter) Read(buf []byte, address uint32) error {
	firstBlock, lastBlock, firstOffset, err := blockRange(address, len(buf))
	if err != nil {
		return err
	}

	return a.keys.EncryptAndTweakKeys(func(encryptKeyBytes, tweakKeyBytes [keystate.HalfKeySize]byte) error {
		encryptPrim, err := xex.NewAESPrimitive(encryptKeyBytes)
		if err != nil {
			return fmt.Errorf("storage: unable to prepare encrypt-key primitive: %w", err)
		}
		tweakPrim, err := xex.NewAESPrimitive(tweakKeyBytes)
		if err != nil {
			return fmt.Errorf("storage: unable to prepare tweak-key primitive: %w", err)
		}

		offset := firstOffset
		remaining := buf

		for b := firstBlock; ; b += BlockSize {
			var ciphertext, plaintext [BlockSize]byte

			if err := a.store.Read(ciphertext[:], b); err != nil {
				return fmt.Errorf("storage: raw read at block %d failed: %w", b, err)
			}

			if err := xex.Decrypt(&plaintext, &ciphertext, blockTweak(b), 1, tweakPrim, encryptPrim); err != nil {
				return fmt.Errorf("storage: xex decrypt at block %d failed: %w", b, err)
			}

			n := copy(remaining, plaintext[offset:])
			remaining = remaining[n:]

			if b == lastBlock {
				break
			}
			offset = 0
		}

		return nil
	})
}
