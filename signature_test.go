// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import (
	"errors"
	"testing"

	"github.com/hooklift/assert"
)

func TestBuildSignaturesExactMultiple(t *testing.T) {
	sigs := BuildSignatures([]byte("ABCDEFGH"), 4)
	assert.Equals(t, 2, len(sigs))
	assert.Equals(t, Signature{ID: 0, Pos: 0, Hash: Hash([]byte("ABCD")), Size: 4}, sigs[0])
	assert.Equals(t, Signature{ID: 1, Pos: 4, Hash: Hash([]byte("EFGH")), Size: 4}, sigs[1])
}

func TestBuildSignaturesShortTail(t *testing.T) {
	sigs := BuildSignatures([]byte("ABCDEFGHI"), 4)
	assert.Equals(t, 3, len(sigs))
	assert.Equals(t, uint32(4), sigs[0].Size)
	assert.Equals(t, uint32(4), sigs[1].Size)
	assert.Equals(t, uint32(1), sigs[2].Size)
	assert.Equals(t, uint32(8), sigs[2].Pos)
}

func TestBuildSignaturesSingleShortChunk(t *testing.T) {
	sigs := BuildSignatures([]byte("AB"), 4)
	assert.Equals(t, 1, len(sigs))
	assert.Equals(t, uint32(2), sigs[0].Size)
}

func TestBuildSignaturesEmptyInput(t *testing.T) {
	sigs := BuildSignatures(nil, 4)
	assert.Equals(t, 1, len(sigs))
	assert.Equals(t, uint32(0), sigs[0].Size)
	assert.Equals(t, uint32(0), sigs[0].Hash)
}

func TestSignaturesOrderedByID(t *testing.T) {
	sigs := BuildSignatures([]byte("0123456789abcdef"), 4)
	for i, sig := range sigs {
		assert.Equals(t, uint32(i), sig.ID)
		assert.Equals(t, uint32(i*4), sig.Pos)
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	sigs := BuildSignatures([]byte("the quick brown fox jumps over the lazy dog"), 6)

	enc, err := EncodeSignatures(sigs)
	assert.Ok(t, err)

	got, err := DecodeSignatures(enc)
	assert.Ok(t, err)

	assert.Equals(t, len(sigs), len(got))
	for i := range sigs {
		assert.Equals(t, sigs[i], got[i])
	}
}

func TestSignatureFileRoundTripOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/v1.sig.bin"

	sigs := BuildSignatures([]byte("0123456789"), 3)
	assert.Ok(t, SaveSignatureFile(path, sigs))

	got, err := LoadSignatureFile(path)
	assert.Ok(t, err)
	assert.Equals(t, len(sigs), len(got))
	for i := range sigs {
		assert.Equals(t, sigs[i], got[i])
	}
}

func TestSignatureFileRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/v1.sig.bin"

	sigs := BuildSignatures([]byte("0123456789"), 3)
	assert.Ok(t, SaveSignatureFile(path, sigs))

	h, err := LoadFile(path)
	assert.Ok(t, err)
	h.Data[0] ^= 0xFF // flip the first byte of the magic

	_, err = DecodeSignatures(h.Data)
	assert.Cond(t, errors.Is(err, ErrBadSignatureFormat), "expected ErrBadSignatureFormat from a flipped magic byte")
}
