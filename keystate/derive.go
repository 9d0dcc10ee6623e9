package keystate

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"
)

// DeriveMasterKey derives a 32-byte encrypt_key‖tweak_key blob from a
// higher-level wallet seed via HKDF-SHA256, mirroring the KDF pattern used
// elsewhere in this codebase for deriving sub-keys from a master secret.
// This is a provisioning convenience, not part of the core key-state
// lifecycle: a wallet may derive its master key from a BIP-32-style seed
// instead of supplying 32 independent random bytes.
func DeriveMasterKey(seed, salt, info []byte) ([KeySize]byte, error) {
	var out [KeySize]byte

	if len(seed) == 0 {
		return out, fmt.Errorf("keystate: derivation seed must not be empty")
	}
	if info == nil {
		return out, fmt.Errorf("keystate: derivation info must not be nil")
	}

	dk := hkdf.New(sha256.New, seed, salt, info)
	scratch := make([]byte, KeySize)
	if _, err := io.ReadFull(dk, scratch); err != nil {
		return out, fmt.Errorf("keystate: unable to derive master key: %w", err)
	}
	defer memguard.WipeBytes(scratch)

	copy(out[:], scratch)

	return out, nil
}
