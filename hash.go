// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import "sync"

// Rolling checksum parameters. B is the polynomial base, M the modulus
// (the largest prime below 2^32), chosen so that B*M still fits in 64 bits
// and every reduction is a single division.
const (
	bshift = 8
	base   = uint64(1) << bshift
	modulus = uint64(4294967291)
)

// powerCache memoizes B^(n-1) mod M per block length, since the same
// chunk size is reused for every block of a given signature set. Recomputing
// this power from scratch on every rolling update would be quadratic in the
// block size, so it is cached per length instead.
var powerCache sync.Map // map[uint32]uint64

func powerFor(n uint32) uint64 {
	if v, ok := powerCache.Load(n); ok {
		return v.(uint64)
	}
	p := uint64(1)
	for i := uint32(1); i < n; i++ {
		p = (p << bshift) % modulus
	}
	powerCache.Store(n, p)
	return p
}

// Hash computes the polynomial hash of data left-to-right:
// ((...(b0*B + b1)*B + b2)...)*B + b_{n-1}) mod M, truncated to 32 bits.
// The hash of an empty slice is 0.
func Hash(data []byte) uint32 {
	var h uint64
	for _, b := range data {
		h = (h*base + uint64(b)) % modulus
	}
	return uint32(h)
}

// RollingHash advances a hash computed over window (length n, hash
// prevHash) by one byte: it slides the window forward so that window[0]
// leaves and trailing enters. trailing is an explicit parameter rather than
// read past the end of window, so the byte being rolled in is always the
// caller's to name.
//
// RollingHash(window, trailing, Hash(window)) == Hash(append(window[1:], trailing))
func RollingHash(window []byte, trailing byte, prevHash uint32) uint32 {
	n := uint32(len(window))
	if n == 0 {
		return uint32(uint64(trailing) % modulus)
	}
	power := powerFor(n)
	h := uint64(prevHash) + modulus
	h -= (power * uint64(window[0])) % modulus
	h = (h * base) % modulus
	h = (h + uint64(trailing)) % modulus
	return uint32(h)
}
