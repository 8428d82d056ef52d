// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// signatureMagic identifies a signature file on disk.
const signatureMagic = 0xC000FFEE

const signatureRecordSize = 16 // id, pos, hash, size, each u32

// EncodeSignatures serializes sigs into the on-disk signature file format:
// a big-endian magic + count header followed by a deflate-compressed,
// big-endian payload of fixed-size records.
func EncodeSignatures(sigs []Signature) ([]byte, error) {
	payload := make([]byte, len(sigs)*signatureRecordSize)
	for i, sig := range sigs {
		rec := payload[i*signatureRecordSize:]
		binary.BigEndian.PutUint32(rec[0:4], sig.ID)
		binary.BigEndian.PutUint32(rec[4:8], sig.Pos)
		binary.BigEndian.PutUint32(rec[8:12], sig.Hash)
		binary.BigEndian.PutUint32(rec[12:16], sig.Size)
	}

	compressed, err := compress(payload)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	header := make([]byte, 8)
	binary.BigEndian.PutUint32(header[0:4], signatureMagic)
	binary.BigEndian.PutUint32(header[4:8], uint32(len(sigs)))
	out.Write(header)
	out.Write(compressed)
	return out.Bytes(), nil
}

// DecodeSignatures parses a signature file previously produced by
// EncodeSignatures.
func DecodeSignatures(raw []byte) ([]Signature, error) {
	if len(raw) < 8 {
		return nil, errors.Wrap(ErrMalformedLength, "signature file shorter than header")
	}

	magic := binary.BigEndian.Uint32(raw[0:4])
	if magic != signatureMagic {
		return nil, errors.Wrap(ErrBadSignatureFormat, "signature file magic mismatch")
	}
	count := binary.BigEndian.Uint32(raw[4:8])

	payloadLen := int(count) * signatureRecordSize
	if payloadLen == 0 && count != 0 {
		return nil, errors.Wrap(ErrMalformedLength, "unexpected length")
	}

	compressed := raw[8:]
	payload, err := decompress(compressed, payloadLen)
	if err != nil {
		return nil, err
	}
	if len(payload) < payloadLen {
		return nil, errors.Wrap(ErrMalformedLength, "signature payload truncated")
	}

	sigs := make([]Signature, count)
	for i := range sigs {
		rec := payload[i*signatureRecordSize:]
		sigs[i] = Signature{
			ID:   binary.BigEndian.Uint32(rec[0:4]),
			Pos:  binary.BigEndian.Uint32(rec[4:8]),
			Hash: binary.BigEndian.Uint32(rec[8:12]),
			Size: binary.BigEndian.Uint32(rec[12:16]),
		}
	}
	return sigs, nil
}

// SaveSignatureFile serializes sigs and writes them to path.
func SaveSignatureFile(path string, sigs []Signature) error {
	enc, err := EncodeSignatures(sigs)
	if err != nil {
		return err
	}
	return SaveFile(path, enc)
}

// LoadSignatureFile reads and parses the signature file at path.
func LoadSignatureFile(path string) ([]Signature, error) {
	h, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeSignatures(h.Data)
}
