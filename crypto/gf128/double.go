package gf128

// reducingByte is the low-order byte of the reduction polynomial
// x^128 + x^7 + x^2 + x + 1, applied to byte 0 of the little-endian
// representation when the top bit carries out of byte 15.
const reducingByte = 0x87

// Double multiplies the 16-byte little-endian value in buf by x in
// GF(2^128), in place, under the reduction polynomial
// x^128 + x^7 + x^2 + x + 1.
//
// buf[0] holds the least significant byte. The shift carries the top bit
// of each byte into the low bit of the next byte; the conditional
// reduction on overflow is computed branch-free (mask-and-XOR on the
// carry bit) so the operation does not leak the carried bit through
// timing.
func Double(buf *[16]byte) {
	var carry byte
	for i := 0; i < 16; i++ {
		next := buf[i] >> 7
		buf[i] = (buf[i] << 1) | carry
		carry = next
	}

	// mask is 0xFF when the top bit of byte 15 carried out, 0x00 otherwise.
	mask := -carry
	buf[0] ^= mask & reducingByte
}

// DoubleN applies Double to buf n times in place. It is used to derive the
// n-th tweak mask in a data unit from the base mask without recomputing the
// block cipher encryption of the tweak value for every block position.
func DoubleN(buf *[16]byte, n uint64) {
	for i := uint64(0); i < n; i++ {
		Double(buf)
	}
}
