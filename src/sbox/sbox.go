// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package sbox computes the AES S-box transform algebraically, byte
// by byte, with no precomputed 256-entry table. A table lookup's
// cache-access pattern depends on the byte being substituted; since
// that byte is often key-derived, this package avoids the table
// entirely and computes the multiplicative inverse through a fixed
// addition chain instead.
package sbox

import "github.com/GMUCERG/AESGCM/src/galois"

// SubByte returns the AES S-box of c: the multiplicative inverse of c
// in GF(2^8) (with 0 mapped to 0), followed by the S-box's affine
// transformation over GF(2).
//
// The inverse c^254 is reached by the addition chain
// 3, 7, 63, 127, 254, using only squarings and at most one multiply
// per step (by c, or by c^7 for the step from 7 to 63).
//
// https://en.wikipedia.org/wiki/Rijndael_S-box
func SubByte(c byte) byte {
	c3 := galois.Multiply(galois.Square(c), c)
	c7 := galois.Multiply(galois.Square(c3), c)
	c63 := galois.Multiply(galois.Square(galois.Square(galois.Square(c7))), c7)
	c127 := galois.Multiply(galois.Square(c63), c)
	c254 := galois.Square(c127)

	var f [8]byte
	for i := 0; i < 8; i++ {
		f[i] = (c254 >> uint(i)) & 1
	}

	var h [8]byte
	h[0] = f[0] ^ f[4] ^ f[5] ^ f[6] ^ f[7] ^ 1
	h[1] = f[1] ^ f[5] ^ f[6] ^ f[7] ^ f[0] ^ 1
	h[2] = f[2] ^ f[6] ^ f[7] ^ f[0] ^ f[1]
	h[3] = f[3] ^ f[7] ^ f[0] ^ f[1] ^ f[2]
	h[4] = f[4] ^ f[0] ^ f[1] ^ f[2] ^ f[3]
	h[5] = f[5] ^ f[1] ^ f[2] ^ f[3] ^ f[4] ^ 1
	h[6] = f[6] ^ f[2] ^ f[3] ^ f[4] ^ f[5] ^ 1
	h[7] = f[7] ^ f[3] ^ f[4] ^ f[5] ^ f[6]

	var result byte
	for i := 0; i < 8; i++ {
		result |= h[i] << uint(i)
	}

	return result
}
