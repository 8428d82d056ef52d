// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import "bytes"

// GenerateDeltas scans v2 against v1's signatures and returns the ordered
// KEEP/ADD instruction stream that reconstructs v2 from v1.
//
// A write cursor (offset) and scan cursor (scanPtr) walk forward through v2
// as each v1 signature, in order, is located via a rolling-hash search. A
// signature that cannot be found at or after the scan cursor is dropped; V1
// block ordering is never violated to chase a lower-offset match. Any bytes
// of v2 left over past the last matched block are emitted as a closing ADD
// so nothing trailing the final match gets truncated on restore.
func GenerateDeltas(v1, v2 []byte, sigs []Signature) []Delta {
	var deltas []Delta
	var offset, scanPtr uint32
	var id uint32

	for _, sig := range sigs {
		remaining := uint32(len(v2)) - scanPtr
		block := v1[sig.Pos : sig.Pos+sig.Size]
		pos := search(v2[scanPtr:], remaining, sig.Hash, sig.Size, block)

		if pos >= remaining {
			continue // signature not found past the scan cursor; drop it
		}

		if pos > 0 {
			data := make([]byte, pos)
			copy(data, v2[offset:offset+pos])
			deltas = append(deltas, Delta{ID: id, Command: CommandAdd, Pos: offset, Size: pos, Data: data})
			id++
		}

		offset += pos
		deltas = append(deltas, Delta{ID: id, Command: CommandKeep, Pos: sig.Pos, Size: sig.Size})
		id++

		offset += sig.Size
		scanPtr = offset
	}

	if offset < uint32(len(v2)) {
		tailSize := uint32(len(v2)) - offset
		data := make([]byte, tailSize)
		copy(data, v2[offset:])
		deltas = append(deltas, Delta{ID: id, Command: CommandAdd, Pos: offset, Size: tailSize, Data: data})
	}

	return deltas
}

// search finds the smallest offset in [0, size-blockSize] at which buffer's
// window both hash-matches targetHash and is byte-identical to blockBytes,
// or returns size if no such offset exists. The byte-exact check guards
// against accepting a hash collision as a match.
func search(buffer []byte, size, targetHash, blockSize uint32, blockBytes []byte) uint32 {
	if blockSize > size {
		return size
	}
	if blockSize == 0 {
		// An empty block always "matches" at offset 0, but only when the
		// caller has bytes left to consume it against (checked by the
		// caller: pos < remaining). Returning 0 here lets the caller's
		// remaining==0 case correctly treat it as no-match.
		return 0
	}

	window := buffer[0:blockSize]
	h := Hash(window)
	if h == targetHash && bytes.Equal(window, blockBytes) {
		return 0
	}

	end := size - blockSize
	for offset := uint32(1); offset <= end; offset++ {
		trailing := buffer[offset+blockSize-1]
		h = RollingHash(window, trailing, h)
		window = buffer[offset : offset+blockSize]
		if h == targetHash && bytes.Equal(window, blockBytes) {
			return offset
		}
	}

	return size
}
