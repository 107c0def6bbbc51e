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

package aesgcm

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeHex decodes a hex literal, failing the test on error. An
// empty literal decodes to a non-nil, zero-length slice.
func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// NIST SP 800-38D GCM test vectors, reproduced from the published
// AES-128 test case set.
var nistVectors = []struct {
	name string
	key  string
	iv   string
	aad  string
	pt   string
	ct   string
}{
	{
		name: "T1 empty AAD empty plaintext",
		key:  "00000000000000000000000000000000",
		iv:   "000000000000000000000000",
		aad:  "",
		pt:   "",
		ct:   "58e2fccefa7e3061367f1d57a4e7455a",
	},
	{
		name: "T2 empty AAD one block plaintext",
		key:  "00000000000000000000000000000000",
		iv:   "000000000000000000000000",
		aad:  "",
		pt:   "00000000000000000000000000000000",
		ct:   "0388dace60b6a392f328c2b971b2fe78ab6e47d42cec13bdf53a67b21257bddf",
	},
	{
		name: "T3 empty AAD multi-block plaintext",
		key:  "feffe9928665731c6d6a8f9467308308",
		iv:   "cafebabefacedbaddecaf888",
		aad:  "",
		pt:   "d9313225f88406e5a55909c5aff5269a86a7a9531534f7da2e4c303d8a318a721c3c0c95956809532fcf0e2449a6b525b16aedf5aa0de657ba637b391aafd255",
		ct:   "42831ec2217774244b7221b784d0d49ce3aa212f2c02a4e035c17e2329aca12e21d514b25466931c7d8f6a5aac84aa051ba30b396a0aac973d58e091473f59854d5c2af327cd64a62cf35abd2ba6fab4",
	},
	{
		name: "T4 with AAD and partial final block",
		key:  "feffe9928665731c6d6a8f9467308308",
		iv:   "cafebabefacedbaddecaf888",
		aad:  "feedfacedeadbeeffeedfacedeadbeefabaddad2",
		pt:   "d9313225f88406e5a55909c5aff5269a86a7a9531534f7da2e4c303d8a318a721c3c0c95956809532fcf0e2449a6b525b16aedf5aa0de657ba637b39",
		ct:   "42831ec2217774244b7221b784d0d49ce3aa212f2c02a4e035c17e2329aca12e21d514b25466931c7d8f6a5aac84aa051ba30b396a0aac973d58e0915bc94fbc3221a5db94fae95ae7121a47",
	},
}

func TestSealAgainstNISTVectors(t *testing.T) {
	for _, v := range nistVectors {
		t.Run(v.name, func(t *testing.T) {
			key := decodeHex(t, v.key)
			key = key[:16]
			nonce := decodeHex(t, v.iv)
			aad := decodeHex(t, v.aad)
			pt := decodeHex(t, v.pt)
			want := decodeHex(t, v.ct)

			cipher, err := New(key)
			require.NoError(t, err)

			got, err := cipher.Seal(nonce, pt, aad)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestOpenAgainstNISTVectors(t *testing.T) {
	for _, v := range nistVectors {
		t.Run(v.name, func(t *testing.T) {
			key := decodeHex(t, v.key)
			key = key[:16]
			nonce := decodeHex(t, v.iv)
			aad := decodeHex(t, v.aad)
			sealed := decodeHex(t, v.ct)
			wantPt := decodeHex(t, v.pt)

			cipher, err := New(key)
			require.NoError(t, err)

			got, err := cipher.Open(nonce, sealed, aad)
			require.NoError(t, err)
			assert.Equal(t, wantPt, got)
		})
	}
}

// T5: flipping any bit of a sealed message must make Open fail.
func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	key := decodeHex(t, "feffe9928665731c6d6a8f9467308308")[:16]
	nonce := decodeHex(t, "cafebabefacedbaddecaf888")
	aad := decodeHex(t, "feedfacedeadbeeffeedfacedeadbeefabaddad2")

	cipher, err := New(key)
	require.NoError(t, err)

	sealed, err := cipher.Seal(nonce, []byte("attack at dawn, rendezvous 0300"), aad)
	require.NoError(t, err)

	for _, byteIdx := range []int{0, len(sealed) / 2, len(sealed) - 1} {
		tampered := append([]byte(nil), sealed...)
		tampered[byteIdx] ^= 0x01

		_, err := cipher.Open(nonce, tampered, aad)
		assert.ErrorIs(t, err, ErrAuthFailed)
	}
}

func TestOpenRejectsWrongAssociatedData(t *testing.T) {
	key := make([]byte, 16)
	nonce := make([]byte, 12)

	cipher, err := New(key)
	require.NoError(t, err)

	sealed, err := cipher.Seal(nonce, []byte("payload"), []byte("header v1"))
	require.NoError(t, err)

	_, err = cipher.Open(nonce, sealed, []byte("header v2"))
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestSealIsDeterministic(t *testing.T) {
	key := decodeHex(t, "feffe9928665731c6d6a8f9467308308")[:16]
	nonce := decodeHex(t, "cafebabefacedbaddecaf888")
	aad := []byte("fixed header")
	pt := []byte("the quick brown fox jumps over the lazy dog")

	cipher, err := New(key)
	require.NoError(t, err)

	first, err := cipher.Seal(nonce, pt, aad)
	require.NoError(t, err)

	second, err := cipher.Seal(nonce, pt, aad)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLengthContract(t *testing.T) {
	key := make([]byte, 16)
	nonce := make([]byte, 12)
	cipher, err := New(key)
	require.NoError(t, err)

	for _, n := range []int{0, 1, 15, 16, 17, 100} {
		pt := make([]byte, n)
		sealed, err := cipher.Seal(nonce, pt, nil)
		require.NoError(t, err)
		assert.Len(t, sealed, n+16)

		opened, err := cipher.Open(nonce, sealed, nil)
		require.NoError(t, err)
		assert.Len(t, opened, n)
		assert.Equal(t, pt, opened)
	}
}

func TestEmptyMessageYieldsTagOnly(t *testing.T) {
	key := make([]byte, 16)
	nonce := make([]byte, 12)
	cipher, err := New(key)
	require.NoError(t, err)

	sealed, err := cipher.Seal(nonce, nil, nil)
	require.NoError(t, err)
	assert.Len(t, sealed, 16)
}

func TestSealRejectsBadNonceSize(t *testing.T) {
	cipher, err := New(make([]byte, 16))
	require.NoError(t, err)

	_, err = cipher.Seal(make([]byte, 11), []byte("x"), nil)
	assert.Error(t, err)
}

func TestOpenRejectsShortInput(t *testing.T) {
	cipher, err := New(make([]byte, 16))
	require.NoError(t, err)

	_, err = cipher.Open(make([]byte, 12), make([]byte, 4), nil)
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestCtEqComparesContentsAndLength(t *testing.T) {
	assert.True(t, ctEq([]byte{1, 2, 3}, []byte{1, 2, 3}))
	assert.False(t, ctEq([]byte{1, 2, 3}, []byte{1, 2, 4}))
	assert.False(t, ctEq([]byte{1, 2}, []byte{1, 2, 3}))
}
