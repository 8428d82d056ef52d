// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import (
	"math/rand"
	"testing"

	"github.com/hooklift/assert"
)

// TestRollingHashEquivalence walks a byte string one position at a time,
// checking that incrementally rolling the hash forward always lands on the
// same value a from-scratch Hash call over the shifted window would
// produce.
func TestRollingHashEquivalence(t *testing.T) {
	data := []byte("aaabcdefghij")
	n := 4

	h := Hash(data[0:n])
	for p := 0; p+n+1 <= len(data); p++ {
		window := data[p : p+n]
		trailing := data[p+n]

		rolled := RollingHash(window, trailing, h)
		want := Hash(data[p+1 : p+1+n])

		assert.Equals(t, want, rolled)
		h = rolled
	}
}

func TestRollingHashRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + r.Intn(32)
		data := make([]byte, n+1+r.Intn(16))
		r.Read(data)

		for p := 0; p+n+1 <= len(data); p++ {
			h := Hash(data[p : p+n])
			rolled := RollingHash(data[p:p+n], data[p+n], h)
			want := Hash(data[p+1 : p+1+n])
			assert.Equals(t, want, rolled)
		}
	}
}

func TestHashEmptyRangeIsZero(t *testing.T) {
	assert.Equals(t, uint32(0), Hash(nil))
	assert.Equals(t, uint32(0), Hash([]byte{}))
}
