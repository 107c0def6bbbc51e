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

// This package has been heavily inspired by Sam Trenholme's blog.
// I highly recommend giving it a read:
// https://www.samiam.org/key-schedule.html

// Package key implements the AES-128 key schedule.
package key

import (
	"errors"

	"github.com/GMUCERG/AESGCM/src/consts"
	"github.com/GMUCERG/AESGCM/src/galois"
	"github.com/GMUCERG/AESGCM/src/sbox"
)

type ExpandedKey [consts.EXP_KEY_SIZE]byte

// Rcon returns the round constant for key-schedule round idx
// (1-based; Rcon(0) is 0). It starts at 1 and applies Xtime idx-1
// times, giving the 01, 02, 04, ... 1B, 36 sequence for idx 1..10.
func Rcon(idx byte) byte {
	if idx == 0 {
		return 0
	}

	var rcon byte = 1
	for idx != 1 {
		rcon = galois.Xtime(rcon)
		idx--
	}

	return rcon
}

// RotWord cyclically rotates a 4 byte word one position to the left.
func RotWord(word [consts.WORD_SIZE]byte) [consts.WORD_SIZE]byte {
	var rotated [consts.WORD_SIZE]byte

	for i := 0; i < consts.WORD_SIZE-1; i++ {
		rotated[i] = word[i+1]
	}

	rotated[consts.WORD_SIZE-1] = word[0]
	return rotated
}

// SubWord applies the S-box to every byte of a 4 byte word.
func SubWord(word [consts.WORD_SIZE]byte) [consts.WORD_SIZE]byte {
	var subw [consts.WORD_SIZE]byte

	for i := 0; i < consts.WORD_SIZE; i++ {
		subw[i] = sbox.SubByte(word[i])
	}

	return subw
}

// scheduleCore is the g() function of FIPS-197: RotWord, SubWord, then
// XOR the round constant into the first byte.
func scheduleCore(word [consts.WORD_SIZE]byte, idx byte) [consts.WORD_SIZE]byte {
	word = RotWord(word)
	word = SubWord(word)
	word[0] ^= Rcon(idx)
	return word
}

// ExpandKey derives the 11 AES-128 round keys (176 bytes) from a
// 16 byte key.
//
// https://en.wikipedia.org/wiki/AES_key_schedule
func ExpandKey(k []byte) (*ExpandedKey, error) {
	if len(k) != consts.KEY_SIZE {
		return nil, errors.New("key: invalid key size")
	}

	var xKey ExpandedKey
	copy(xKey[:], k)

	var tmpKey [consts.WORD_SIZE]byte
	c := consts.KEY_SIZE
	var idx byte = 1

	for c < consts.EXP_KEY_SIZE {
		for a := 0; a < consts.WORD_SIZE; a++ {
			tmpKey[a] = xKey[a+c-consts.WORD_SIZE]
		}

		if c%consts.KEY_SIZE == 0 {
			tmpKey = scheduleCore(tmpKey, idx)
			idx++
		}

		for a := 0; a < consts.WORD_SIZE; a++ {
			xKey[c] = xKey[c-consts.KEY_SIZE] ^ tmpKey[a]
			c++
		}
	}

	return &xKey, nil
}
