// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

// BuildSignatures splits data into chunkSize-sized blocks and returns one
// Signature per block, in ascending id/pos order.
//
// The final block always comes out of the trailing slot below, sized to
// however many bytes are actually left (in (0, chunkSize] for any
// non-empty input), rather than being computed as a separate modulus step.
// That keeps an input whose length is an exact multiple of chunkSize from
// losing its last block: a naive `len(data) % chunkSize` trailing size
// would come out to 0 in that case and silently drop it, leaving those
// bytes unmatchable on the V2 side. An empty input gets a single, empty
// sentinel signature with Hash 0.
func BuildSignatures(data []byte, chunkSize uint32) []Signature {
	if chunkSize == 0 {
		return nil
	}

	size := uint32(len(data))
	if size == 0 {
		return []Signature{{ID: 0, Pos: 0, Hash: 0, Size: 0}}
	}

	var sigs []Signature
	var id, pos uint32

	for pos+chunkSize < size {
		block := data[pos : pos+chunkSize]
		sigs = append(sigs, Signature{
			ID:   id,
			Pos:  pos,
			Hash: Hash(block),
			Size: chunkSize,
		})
		id++
		pos += chunkSize
	}

	tail := data[pos:size]
	sigs = append(sigs, Signature{
		ID:   id,
		Pos:  pos,
		Hash: Hash(tail),
		Size: uint32(len(tail)),
	})

	return sigs
}
