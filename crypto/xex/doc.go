// Package xex implements Rogaway's XEX tweakable block cipher mode over a
// 16-byte block cipher primitive, as used by XTS-AES (IEEE P1619,
// NIST SP 800-38E).
//
// XEX turns a fixed-key block cipher into a family of independent
// permutations indexed by a tweak: C = E_K(P ⊕ Δ) ⊕ Δ, where Δ is derived
// by encrypting a "data unit" identifier under a second, independent key
// and then doubling it in GF(2^128) (see crypto/gf128) once per block
// position within the data unit.
package xex
