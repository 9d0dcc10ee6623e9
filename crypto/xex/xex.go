package xex

import (
	"errors"

	"github.com/vaultkit/xexstore/crypto/gf128"
)

// ErrZeroSequenceDisallowed is returned by Encrypt/Decrypt when seq == 0
// outside of test mode. seq == 0 means the tweak mask equals the raw
// encrypted tweak value with no doubling applied at all, which is a known
// weak point of the XEX/XTS construction; production code paths must use
// seq >= 1. Test mode (xexstore.SetTestMode) exists specifically so
// known-answer test vectors that are defined with a zero sequence number
// can still be exercised.
var ErrZeroSequenceDisallowed = errors.New("xex: seq must be >= 1 outside of test mode")

// testModeFlag abstracts the process-wide test mode switch so this package
// does not need to import the root module (which would be a needless
// dependency edge for a pure cipher implementation). Set at init time from
// the root package via RegisterTestModeFlag.
var testModeFlag = func() bool { return false }

// RegisterTestModeFlag wires this package's seq==0 guard to the process-wide
// test mode flag. Called once from the root xexstore package's init so that
// importing crypto/xex directly still enforces the production guard by
// default.
func RegisterTestModeFlag(f func() bool) {
	testModeFlag = f
}

// tweakMask computes Δ = doubled^seq(E_tweakKey(n)), the tweak mask for the
// seq-th block of the data unit identified by n.
func tweakMask(tweakKey Block128, n [16]byte, seq uint64) [16]byte {
	var delta [16]byte
	tweakKey.Encrypt(delta[:], n[:])
	gf128.DoubleN(&delta, seq)
	return delta
}

func xorBlock(dst, a, delta *[16]byte) {
	for i := range dst {
		dst[i] = a[i] ^ delta[i]
	}
}

func checkSeq(seq uint64) error {
	if seq == 0 && !testModeFlag() {
		return ErrZeroSequenceDisallowed
	}
	return nil
}

// Encrypt computes CC = E_encryptKey(P ⊕ Δ) ⊕ Δ where Δ is derived from n
// and seq under tweakKey. in and out may alias; in is left unchanged when
// they do not.
func Encrypt(out, in *[16]byte, n [16]byte, seq uint64, tweakKey, encryptKey Block128) error {
	if err := checkSeq(seq); err != nil {
		return err
	}

	delta := tweakMask(tweakKey, n, seq)

	var scratch [16]byte
	xorBlock(&scratch, in, &delta)
	encryptKey.Encrypt(scratch[:], scratch[:])
	xorBlock(out, &scratch, &delta)

	return nil
}

// Decrypt computes PP = D_encryptKey(C ⊕ Δ) ⊕ Δ where Δ is derived from n
// and seq under tweakKey. in and out may alias; in is left unchanged when
// they do not.
func Decrypt(out, in *[16]byte, n [16]byte, seq uint64, tweakKey, encryptKey Block128) error {
	if err := checkSeq(seq); err != nil {
		return err
	}

	delta := tweakMask(tweakKey, n, seq)

	var scratch [16]byte
	xorBlock(&scratch, in, &delta)
	encryptKey.Decrypt(scratch[:], scratch[:])
	xorBlock(out, &scratch, &delta)

	return nil
}
