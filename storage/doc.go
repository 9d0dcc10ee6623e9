// Package storage translates byte-granular, unaligned application reads and
// writes into aligned 16-byte block operations against a raw, non-volatile
// store, encrypting every block through crypto/xex with the block's
// starting storage address as the tweak input.
//
// The adapter never sees an application call that spans fewer than one
// full block round trip through the backing RawStore: even a one-byte
// write inside an already-full block is a read-modify-write of that whole
// block, which is what gives every stored byte the tweakable-cipher's
// bit-flipping resistance instead of plain CTR's malleability.
package storage
