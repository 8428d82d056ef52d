// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// ToolVersion identifies the encoding of the manifest format itself, not
// the program's release version.
const ToolVersion = 1

// Manifest is a small JSON side-file recording enough metadata about a
// Backup invocation to support a read-only integrity check (Verify)
// without re-diffing anything.
type Manifest struct {
	ToolVersion     int    `json:"toolVersion"`
	ChunkSize       uint32 `json:"chunkSize"`
	V1Size          uint32 `json:"v1Size"`
	V2Size          uint32 `json:"v2Size"`
	V2Digest        uint64 `json:"v2Digest"`
	CreatedUnixNano int64  `json:"createdUnixNano"`
}

// BuildManifest computes a Manifest for a completed backup.
func BuildManifest(chunkSize uint32, v1, v2 []byte, createdUnixNano int64) Manifest {
	return Manifest{
		ToolVersion:     ToolVersion,
		ChunkSize:       chunkSize,
		V1Size:          uint32(len(v1)),
		V2Size:          uint32(len(v2)),
		V2Digest:        xxhash.Sum64(v2),
		CreatedUnixNano: createdUnixNano,
	}
}

// SaveManifest writes m as JSON to path.
func SaveManifest(path string, m Manifest) error {
	enc, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "deltasync: failed encoding manifest")
	}
	return SaveFile(path, enc)
}

// LoadManifest reads and parses the manifest file at path.
func LoadManifest(path string) (Manifest, error) {
	h, err := LoadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := json.Unmarshal(h.Data, &m); err != nil {
		return Manifest{}, errors.Wrap(err, "deltasync: failed decoding manifest")
	}
	return m, nil
}

// Verify recomputes the xxhash64 digest of the bytes at path and compares
// it against m.V2Digest, returning nil on a match.
func Verify(path string, m Manifest) error {
	h, err := LoadFile(path)
	if err != nil {
		return err
	}
	digest := xxhash.Sum64(h.Data)
	if digest != m.V2Digest {
		return errors.Errorf("deltasync: digest mismatch for %s: got %x, want %x", path, digest, m.V2Digest)
	}
	return nil
}

// ManifestPath returns the conventional manifest path for a V2 file.
func ManifestPath(v2Path string) string {
	return v2Path + ".manifest.json"
}
