// Package keystate manages the wallet's master key: the 32-byte blob split
// into an encrypt_key half and a tweak_key half that crypto/xex consumes.
//
// The key lives in a memguard enclave, never as a plain Go byte slice that
// the garbage collector or a process dump could retain. SetKey, GetKey,
// EncryptAndTweakKeys, and ClearKey are the only ways in or out; ClearKey
// writes a scratch buffer in two passes (0xFF then 0x00) and seals the
// all-zero result into fresh enclaves that replace the old ones.
package keystate
