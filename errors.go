// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import "errors"

// Sentinel errors identifying the taxonomy of failures this engine can
// raise. Callers are expected to wrap these with github.com/pkg/errors at
// the call site for context, and compare against the sentinel with
// errors.Is further up the stack.
var (
	// ErrBadSignatureFormat is returned when a signature file's magic
	// number does not match.
	ErrBadSignatureFormat = errors.New("deltasync: bad signature file format")

	// ErrBadDeltaFormat is returned when a delta file's magic number does
	// not match.
	ErrBadDeltaFormat = errors.New("deltasync: bad delta file format")

	// ErrMalformedLength is returned when a file is shorter than its own
	// framing declares, or a declared length is zero where data is
	// expected.
	ErrMalformedLength = errors.New("deltasync: unexpected length")

	// ErrInvalidCommand is returned when a delta record carries a command
	// tag other than ADD or KEEP.
	ErrInvalidCommand = errors.New("deltasync: invalid command")

	// ErrCompression is returned when the deflate/inflate adapter fails.
	ErrCompression = errors.New("deltasync: compression failure")
)
