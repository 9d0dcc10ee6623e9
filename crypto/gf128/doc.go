// Package gf128 implements GF(2^128) doubling under the reducing
// polynomial x^128 + x^7 + x^2 + x + 1 — the tweak-mask generator used by
// crypto/xex to derive a distinct mask for each block position from a
// single encrypted tweak value.
package gf128
