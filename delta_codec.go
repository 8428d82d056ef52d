// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"
)

// deltaMagic identifies a delta file on disk.
const deltaMagic = 0xDEADBEEF

const deltaRecordHeaderSize = 16 // id, command, pos, size, each u32

// EncodeDeltas serializes deltas into the on-disk delta file format: a
// big-endian magic + count + payload-length header followed by a
// deflate-compressed, big-endian payload. Each record is the 16-byte fixed
// header; ADD records are immediately followed by their literal bytes,
// KEEP records carry none.
func EncodeDeltas(deltas []Delta) ([]byte, error) {
	payloadLen := len(deltas) * deltaRecordHeaderSize
	for _, d := range deltas {
		if d.Command == CommandAdd {
			payloadLen += int(d.Size)
		}
	}

	payload := make([]byte, payloadLen)
	var cursor int
	for _, d := range deltas {
		rec := payload[cursor:]
		binary.BigEndian.PutUint32(rec[0:4], d.ID)
		binary.BigEndian.PutUint32(rec[4:8], uint32(d.Command))
		binary.BigEndian.PutUint32(rec[8:12], d.Pos)
		binary.BigEndian.PutUint32(rec[12:16], d.Size)
		cursor += deltaRecordHeaderSize

		if d.Command == CommandAdd {
			copy(payload[cursor:cursor+int(d.Size)], d.Data)
			cursor += int(d.Size)
		}
	}

	compressed, err := compress(payload)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	header := make([]byte, 12)
	binary.BigEndian.PutUint32(header[0:4], deltaMagic)
	binary.BigEndian.PutUint32(header[4:8], uint32(len(deltas)))
	binary.BigEndian.PutUint32(header[8:12], uint32(payloadLen))
	out.Write(header)
	out.Write(compressed)
	return out.Bytes(), nil
}

// DecodeDeltas parses a delta file previously produced by EncodeDeltas. Each
// ADD record's payload is copied into its own freshly allocated buffer, so
// no two Delta.Data slices ever alias the same backing array.
func DecodeDeltas(raw []byte) ([]Delta, error) {
	if len(raw) < 12 {
		return nil, errors.Wrap(ErrMalformedLength, "delta file shorter than header")
	}

	magic := binary.BigEndian.Uint32(raw[0:4])
	if magic != deltaMagic {
		return nil, errors.Wrap(ErrBadDeltaFormat, "delta file magic mismatch")
	}
	count := binary.BigEndian.Uint32(raw[4:8])
	payloadLen := binary.BigEndian.Uint32(raw[8:12])

	if payloadLen == 0 && count != 0 {
		return nil, errors.Wrap(ErrMalformedLength, "unexpected length")
	}

	compressed := raw[12:]
	payload, err := decompress(compressed, int(payloadLen))
	if err != nil {
		return nil, err
	}
	if uint32(len(payload)) < payloadLen {
		return nil, errors.Wrap(ErrMalformedLength, "delta payload truncated")
	}

	deltas := make([]Delta, 0, count)
	var cursor int
	for i := uint32(0); i < count; i++ {
		if cursor+deltaRecordHeaderSize > len(payload) {
			return nil, errors.Wrap(ErrMalformedLength, "delta record truncated")
		}
		rec := payload[cursor:]
		d := Delta{
			ID:      binary.BigEndian.Uint32(rec[0:4]),
			Command: Command(binary.BigEndian.Uint32(rec[4:8])),
			Pos:     binary.BigEndian.Uint32(rec[8:12]),
			Size:    binary.BigEndian.Uint32(rec[12:16]),
		}
		cursor += deltaRecordHeaderSize

		switch d.Command {
		case CommandAdd:
			if cursor+int(d.Size) > len(payload) {
				return nil, errors.Wrap(ErrMalformedLength, "delta payload truncated")
			}
			d.Data = make([]byte, d.Size)
			copy(d.Data, payload[cursor:cursor+int(d.Size)])
			cursor += int(d.Size)
		case CommandKeep:
			// no trailing bytes
		default:
			return nil, errors.Wrap(ErrInvalidCommand, d.Command.String())
		}

		deltas = append(deltas, d)
	}

	return deltas, nil
}

// SaveDeltaFile serializes deltas and writes them to path.
func SaveDeltaFile(path string, deltas []Delta) error {
	enc, err := EncodeDeltas(deltas)
	if err != nil {
		return err
	}
	return SaveFile(path, enc)
}

// LoadDeltaFile reads and parses the delta file at path.
func LoadDeltaFile(path string) ([]Delta, error) {
	h, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeDeltas(h.Data)
}
