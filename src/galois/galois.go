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

// Package galois implements GF(2^8) arithmetic used by AES, computed
// bit by bit rather than through a precomputed multiplication table.
package galois

// Multiply returns a*b in GF(2^8) modulo the AES reduction polynomial
// m(x) = x^8 + x^4 + x^3 + x + 1. The product is formed by schoolbook
// polynomial multiplication into 15 bits and then folded back into the
// low 8 bits using the identity x^8 = x^4 + x^3 + x + 1.
//
// https://en.wikipedia.org/wiki/Finite_field_arithmetic
func Multiply(a byte, b byte) byte {
	var f, g [8]byte
	var h [15]byte

	for i := 0; i < 8; i++ {
		f[i] = (a >> uint(i)) & 1
		g[i] = (b >> uint(i)) & 1
	}

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			h[i+j] ^= f[i] & g[j]
		}
	}

	for i := 6; i >= 0; i-- {
		h[i+0] ^= h[i+8]
		h[i+1] ^= h[i+8]
		h[i+3] ^= h[i+8]
		h[i+4] ^= h[i+8]
		h[i+8] ^= h[i+8]
	}

	var result byte
	for i := 0; i < 8; i++ {
		result |= h[i] << uint(i)
	}

	return result
}

// Square returns a*a in GF(2^8).
func Square(a byte) byte {
	return Multiply(a, a)
}

// Xtime returns a*2 in GF(2^8), the step used to derive successive
// AES round constants.
func Xtime(a byte) byte {
	return Multiply(a, 2)
}

// Gadd is addition in GF(2^8), which is simply XOR.
func Gadd(a byte, b byte) byte {
	return a ^ b
}

// XorBlocks XORs two equal-length byte slices and returns the result.
func XorBlocks(a []byte, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = Gadd(a[i], b[i])
	}
	return out
}
