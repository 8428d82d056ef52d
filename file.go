// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileHandle is an owned byte buffer read in full from disk: acquired by
// LoadFile, released once the caller is done with it. Go's GC does that
// work here; there is no explicit Close, the buffer simply falls out of
// scope.
type FileHandle struct {
	Data []byte
}

// Size returns the handle's buffer length.
func (h *FileHandle) Size() uint32 {
	return uint32(len(h.Data))
}

// LoadFile reads the whole file at path into memory.
func LoadFile(path string) (*FileHandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "deltasync: failed opening %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "deltasync: failed stating %s", path)
	}

	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(f, buf); err != nil && info.Size() > 0 {
		return nil, errors.Wrapf(err, "deltasync: failed reading %s", path)
	}

	return &FileHandle{Data: buf}, nil
}

// SaveFile creates or truncates the file at path and writes data to it.
func SaveFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "deltasync: failed creating %s", path)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errors.Wrapf(err, "deltasync: failed writing %s", path)
	}
	return nil
}
