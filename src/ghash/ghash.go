// Package ghash implements the GF(2^128) multiply-accumulate step
// GCM uses to authenticate associated data and ciphertext: the
// universal hash commonly called GHASH.
//
// Grounded on the addmul() routine of the GMUCERG/AESGCM SUPERCOP
// reference (crypto_aead/aes128gcmv1/ref/encrypt.c): a schoolbook
// 128x128 bit multiply into a 256 bit product, folded down with the
// field polynomial x^128 + x^7 + x^2 + x + 1. No carry-less-multiply
// instruction and no precomputed multiplication table are used.
package ghash

import "github.com/GMUCERG/AESGCM/src/consts"

// AddMul folds x into the accumulator a and multiplies the result by
// h in GF(2)[x]/(x^128 + x^7 + x^2 + x + 1):
//
//	a <- (a XOR x_padded) * h
//
// a and h must be 16 bytes. x may be shorter than 16 bytes, in which
// case it is treated as implicitly right-zero-padded to 16 — only the
// bytes actually present in x are folded into a, which has the same
// effect as XORing in a zero-padded copy.
//
// Bits are numbered MSB-first within each byte, byte 0 first (the
// GCM "bit-reversed" convention): bit i of a 16 byte block B is
// B[i/8] bit (7 - i%8).
func AddMul(a []byte, x []byte, h []byte) {
	for i := range x {
		a[i] ^= x[i]
	}

	var abits, hbits [128]byte
	for i := 0; i < 128; i++ {
		abits[i] = (a[i/8] >> uint(7-i%8)) & 1
		hbits[i] = (h[i/8] >> uint(7-i%8)) & 1
	}

	var prod [256]byte
	for i := 0; i < 128; i++ {
		for j := 0; j < 128; j++ {
			prod[i+j] ^= abits[i] & hbits[j]
		}
	}

	// Reduce bits 255..128 back into 127..0 using x^128 = x^7+x^2+x+1.
	for i := 127; i >= 0; i-- {
		prod[i+0] ^= prod[i+128]
		prod[i+1] ^= prod[i+128]
		prod[i+2] ^= prod[i+128]
		prod[i+7] ^= prod[i+128]
		prod[i+128] ^= prod[i+128]
	}

	for i := 0; i < consts.BLOCK_SIZE; i++ {
		a[i] = 0
	}
	for i := 0; i < 128; i++ {
		a[i/8] |= prod[i] << uint(7-i%8)
	}
}
