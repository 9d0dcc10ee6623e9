// Package xexstore provides an encrypted random-access block storage layer
// for resource-constrained devices.
//
// It sits between application code issuing byte-granular reads and writes at
// arbitrary offsets and a raw non-volatile storage device that only reads and
// writes 16-byte aligned blocks. Every byte persisted through this layer is
// encrypted under a tweakable block cipher (XEX) keyed by a 256-bit master
// key held only in volatile memory; the backing device never sees plaintext
// nor the key.
//
// The cryptographic core lives in crypto/gf128 and crypto/xex. The
// block-translation layer that turns byte-granular I/O into aligned block
// operations lives in storage. Master key custody lives in keystate.
package xexstore
