// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/pkg/errors"
)

// compress deflates in at flate.BestCompression and returns the compressed
// bytes, writing through a growable buffer so an incompressible payload
// never gets clipped to some fixed preallocated size.
func compress(in []byte) ([]byte, error) {
	var out bytes.Buffer
	w, err := flate.NewWriter(&out, flate.BestCompression)
	if err != nil {
		return nil, errors.Wrap(ErrCompression, err.Error())
	}
	if _, err := w.Write(in); err != nil {
		return nil, errors.Wrap(ErrCompression, err.Error())
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(ErrCompression, err.Error())
	}
	return out.Bytes(), nil
}

// decompress inflates in, which is expected to decode to exactly sizeHint
// bytes per the surrounding framing (signature/delta file headers carry the
// decompressed length up front).
func decompress(in []byte, sizeHint int) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(in))
	defer r.Close()

	buf := bytes.NewBuffer(make([]byte, 0, sizeHint))
	if _, err := io.Copy(buf, r); err != nil {
		return nil, errors.Wrap(ErrCompression, err.Error())
	}
	return buf.Bytes(), nil
}
