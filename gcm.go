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

// Package aesgcm implements AES-128-GCM authenticated encryption from
// first principles: a table-free AES-128 block cipher drives a
// counter-mode keystream, authenticated with a table-free GHASH.
//
// None of crypto/aes, crypto/cipher, crypto/subtle or
// golang.org/x/crypto are used for the core cipher logic; this
// package is the reference math, not a production fast path.
package aesgcm

import (
	"errors"

	"github.com/GMUCERG/AESGCM/src/consts"
	"github.com/GMUCERG/AESGCM/src/core"
	"github.com/GMUCERG/AESGCM/src/counter"
	g "github.com/GMUCERG/AESGCM/src/galois"
	"github.com/GMUCERG/AESGCM/src/ghash"
)

// ErrAuthFailed is returned by Open when the ciphertext, associated
// data or nonce has been tampered with, or when an input's length
// does not match the GCM contract. No plaintext is returned alongside
// this error.
var ErrAuthFailed = errors.New("aesgcm: message authentication failed")

// AES128GCM is an AES-128-GCM instance bound to a single 16 byte key.
type AES128GCM struct {
	cipher *core.AES128
	h      [consts.BLOCK_SIZE]byte
}

// New derives the GHASH subkey H = AES_K(0^16) and returns an
// AES128GCM ready to Seal and Open messages under k. k must be 16
// bytes.
func New(k []byte) (*AES128GCM, error) {
	c, err := core.New(k)
	if err != nil {
		return nil, err
	}

	var zero [consts.BLOCK_SIZE]byte
	h, err := c.EncryptBlock(zero[:])
	if err != nil {
		return nil, err
	}

	a := &AES128GCM{cipher: c}
	copy(a.h[:], h)
	return a, nil
}

// Clear wipes the round keys and the GHASH subkey from memory.
func (a *AES128GCM) Clear() {
	a.cipher.Clear()
	for i := range a.h {
		a.h[i] = 0
	}
}

// buildJ assembles the 16 byte counter block J = nonce || ctr, where
// ctr is the big-endian encoding of c.
func buildJ(nonce []byte, c *counter.Counter) []byte {
	j := make([]byte, consts.BLOCK_SIZE)
	copy(j[:consts.NONCE_SIZE], nonce)
	copy(j[consts.NONCE_SIZE:], c.Bytes[:])
	return j
}

// ghashAll runs GHASH over associated data, ciphertext, and the
// 16 byte length block encoding len(ad) and len(ct) in bits, and
// returns the resulting 16 byte tag input.
func ghashAll(h []byte, ad []byte, ct []byte) []byte {
	var acc [consts.BLOCK_SIZE]byte

	for off := 0; off < len(ad); off += consts.BLOCK_SIZE {
		end := off + consts.BLOCK_SIZE
		if end > len(ad) {
			end = len(ad)
		}
		ghash.AddMul(acc[:], ad[off:end], h)
	}

	for off := 0; off < len(ct); off += consts.BLOCK_SIZE {
		end := off + consts.BLOCK_SIZE
		if end > len(ct) {
			end = len(ct)
		}
		ghash.AddMul(acc[:], ct[off:end], h)
	}

	var lenBlock [consts.BLOCK_SIZE]byte
	putBELen64(lenBlock[0:8], uint64(len(ad))*8)
	putBELen64(lenBlock[8:16], uint64(len(ct))*8)
	ghash.AddMul(acc[:], lenBlock[:], h)

	return acc[:]
}

// putBELen64 writes v as an 8 byte big-endian bit length.
func putBELen64(dst []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

// keystream produces len(in) bytes of AES-CTR keystream
// starting at counter value 2 (counter value 1 is reserved for the
// tag mask), XORs it with in, and returns the result. The same
// routine serves both Seal (in = plaintext) and Open (in =
// ciphertext), since CTR mode XOR is its own inverse.
func (a *AES128GCM) keystream(nonce []byte, in []byte) ([]byte, error) {
	ctr, err := counter.NewCounter([]byte{0, 0, 0, 2})
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(in))
	for off := 0; off < len(in); off += consts.BLOCK_SIZE {
		j := buildJ(nonce, ctr)
		mask, err := a.cipher.EncryptBlock(j)
		if err != nil {
			return nil, err
		}

		end := off + consts.BLOCK_SIZE
		if end > len(in) {
			end = len(in)
		}

		chunk := g.XorBlocks(in[off:end], mask[:end-off])
		copy(out[off:end], chunk)

		ctr.Increment()
	}

	return out, nil
}

// tag computes the GCM authentication tag over nonce, ad and ct.
func (a *AES128GCM) tag(nonce []byte, ad []byte, ct []byte) ([]byte, error) {
	t0Ctr, err := counter.NewCounter([]byte{0, 0, 0, 1})
	if err != nil {
		return nil, err
	}

	j0 := buildJ(nonce, t0Ctr)
	t0, err := a.cipher.EncryptBlock(j0)
	if err != nil {
		return nil, err
	}

	s := ghashAll(a.h[:], ad, ct)
	return g.XorBlocks(t0, s), nil
}

// Seal encrypts plaintext under nonce with ad bound as associated
// data, and returns ciphertext || tag. nonce must be 12 bytes.
func (a *AES128GCM) Seal(nonce []byte, plaintext []byte, ad []byte) ([]byte, error) {
	if len(nonce) != consts.NONCE_SIZE {
		return nil, errors.New("aesgcm: invalid nonce size")
	}

	ct, err := a.keystream(nonce, plaintext)
	if err != nil {
		return nil, err
	}

	t, err := a.tag(nonce, ad, ct)
	if err != nil {
		return nil, err
	}

	return append(ct, t...), nil
}

// Open verifies and decrypts sealed (ciphertext || tag) under nonce
// with ad bound as associated data.
//
// The tag is recomputed over the received ciphertext and compared in
// constant time before any plaintext byte is produced: a caller never
// observes plaintext derived from a ciphertext that fails
// authentication.
func (a *AES128GCM) Open(nonce []byte, sealed []byte, ad []byte) ([]byte, error) {
	if len(nonce) != consts.NONCE_SIZE {
		return nil, ErrAuthFailed
	}

	if len(sealed) < consts.TAG_SIZE {
		return nil, ErrAuthFailed
	}

	ct := sealed[:len(sealed)-consts.TAG_SIZE]
	gotTag := sealed[len(sealed)-consts.TAG_SIZE:]

	wantTag, err := a.tag(nonce, ad, ct)
	if err != nil {
		return nil, ErrAuthFailed
	}

	if !ctEq(gotTag, wantTag) {
		return nil, ErrAuthFailed
	}

	return a.keystream(nonce, ct)
}

// ctEq reports whether a and b are equal, in time that depends only
// on their (equal) length, never on where they first differ.
//
// Grounded directly on the SUPERCOP C reference's crypto_verify_16:
// fold the XOR of every byte pair through a data-independent bit
// trick rather than returning early on the first mismatch.
func ctEq(a []byte, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtleZero(a, b) == 0
}

// subtleZero returns 0 if a and b are equal and 1 if they differ,
// computed without any data-dependent branch.
func subtleZero(a []byte, b []byte) byte {
	var d byte
	for i := range a {
		d |= a[i] ^ b[i]
	}

	// Fold every set bit of d down into bit 0 without branching.
	d |= d >> 4
	d |= d >> 2
	d |= d >> 1
	return d & 1
}
