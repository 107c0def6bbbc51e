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

// Package core implements the AES-128 block cipher: key schedule plus
// the 10 round forward encryption of a single 16 byte block.
//
// GCM only ever drives AES forward, as a counter-mode keystream
// generator, so no inverse round functions (InvSubBytes, InvShiftRows,
// InvMixColumns) are implemented here.
package core

import (
	"errors"

	"github.com/GMUCERG/AESGCM/src/consts"
	g "github.com/GMUCERG/AESGCM/src/galois"
	"github.com/GMUCERG/AESGCM/src/key"
	"github.com/GMUCERG/AESGCM/src/sbox"
)

// AES128 holds the round keys expanded from a 16 byte key.
type AES128 struct {
	expandedKey *key.ExpandedKey
}

// New expands k into the AES-128 round keys. k must be 16 bytes.
func New(k []byte) (*AES128, error) {
	xKey, err := key.ExpandKey(k)
	if err != nil {
		return nil, err
	}

	return &AES128{expandedKey: xKey}, nil
}

// Clear wipes the expanded round keys from memory.
func (a *AES128) Clear() {
	for i := range a.expandedKey {
		a.expandedKey[i] = 0x00
	}
}

// SubBytes returns a state with every byte replaced by its S-box
// substitution.
//
// https://en.wikipedia.org/wiki/Advanced_Encryption_Standard
func (a *AES128) subBytes(state []byte) []byte {
	subState := make([]byte, consts.BLOCK_SIZE)
	for i := range state {
		subState[i] = sbox.SubByte(state[i])
	}
	return subState
}

// ShiftRows cyclically rotates row i of the state left by i positions.
//
// https://en.wikipedia.org/wiki/Advanced_Encryption_Standard
func (a *AES128) shiftRows(state []byte) []byte {
	shifted := make([]byte, len(state))
	copy(shifted, state)

	for i := 1; i < 4; i++ {
		shifted[i+4*0] = state[i+4*((i+0)%4)]
		shifted[i+4*1] = state[i+4*((i+1)%4)]
		shifted[i+4*2] = state[i+4*((i+2)%4)]
		shifted[i+4*3] = state[i+4*((i+3)%4)]
	}

	return shifted
}

// MixColumns performs a matrix multiplication inside GF(2^8) on every
// column of the state.
//
// https://en.wikipedia.org/wiki/Rijndael_MixColumns
func (a *AES128) mixColumns(state []byte) []byte {
	mixed := make([]byte, len(state))

	for i := 0; i < 4; i++ {
		a0 := state[4*i+0]
		a1 := state[4*i+1]
		a2 := state[4*i+2]
		a3 := state[4*i+3]

		mixed[4*i+0] = g.Xtime(a0^a1) ^ a1 ^ a2 ^ a3
		mixed[4*i+1] = g.Xtime(a1^a2) ^ a2 ^ a3 ^ a0
		mixed[4*i+2] = g.Xtime(a2^a3) ^ a3 ^ a0 ^ a1
		mixed[4*i+3] = g.Xtime(a3^a0) ^ a0 ^ a1 ^ a2
	}

	return mixed
}

// AddRoundKey XORs the state with round roundIdx's 16 byte round key.
func (a *AES128) addRoundKey(state []byte, roundIdx int) []byte {
	roundKey := a.expandedKey[roundIdx*consts.BLOCK_SIZE : (roundIdx+1)*consts.BLOCK_SIZE]

	newState := make([]byte, len(state))
	for i, b := range state {
		newState[i] = g.Gadd(b, roundKey[i])
	}

	return newState
}

// EncryptBlock performs the 10 round AES-128 encryption of a single
// 16 byte block, preceded by an initial AddRoundKey and with
// MixColumns omitted in the final round.
//
// https://en.wikipedia.org/wiki/Advanced_Encryption_Standard
func (a *AES128) EncryptBlock(in []byte) ([]byte, error) {
	if len(in) != consts.BLOCK_SIZE {
		return nil, errors.New("core: invalid block size")
	}

	state := make([]byte, consts.BLOCK_SIZE)
	copy(state, in)

	state = a.addRoundKey(state, 0)

	for roundIdx := 1; roundIdx < consts.NR; roundIdx++ {
		state = a.subBytes(state)
		state = a.shiftRows(state)
		state = a.mixColumns(state)
		state = a.addRoundKey(state, roundIdx)
	}

	state = a.subBytes(state)
	state = a.shiftRows(state)
	state = a.addRoundKey(state, consts.NR)

	return state, nil
}
