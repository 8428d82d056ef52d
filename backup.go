// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// SignatureSuffix and DeltaSuffix name the derived artifacts Backup writes
// next to its inputs.
const (
	SignatureSuffix = ".sig.bin"
	DeltaSuffix     = ".deltas.bin"
)

// Backup builds a signature index for v1Path and a delta stream that
// reconstructs v2Path from v1Path, writing both plus a manifest to disk:
// load V1, build signatures, save the signature file, load V2 and the saved
// signature file, generate deltas, save the delta file.
func Backup(v1Path, v2Path string, chunkSize uint32) error {
	v1, err := LoadFile(v1Path)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "deltasync: loaded %s (%s)\n", v1Path, humanize.Bytes(uint64(v1.Size())))

	sigs := BuildSignatures(v1.Data, chunkSize)
	fmt.Fprintf(os.Stderr, "deltasync: built %d signatures for %s\n", len(sigs), v1Path)

	sigPath := v1Path + SignatureSuffix
	if err := SaveSignatureFile(sigPath, sigs); err != nil {
		return errors.Wrapf(err, "deltasync: failed saving signature file %s", sigPath)
	}
	fmt.Fprintf(os.Stderr, "deltasync: saved signature file to %s\n", sigPath)

	v2, err := LoadFile(v2Path)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "deltasync: loaded %s (%s)\n", v2Path, humanize.Bytes(uint64(v2.Size())))

	sigs, err = LoadSignatureFile(sigPath)
	if err != nil {
		return errors.Wrapf(err, "deltasync: failed loading signature file %s", sigPath)
	}

	deltas := GenerateDeltas(v1.Data, v2.Data, sigs)
	fmt.Fprintf(os.Stderr, "deltasync: generated %d deltas\n", len(deltas))

	deltaPath := v2Path + DeltaSuffix
	if err := SaveDeltaFile(deltaPath, deltas); err != nil {
		return errors.Wrapf(err, "deltasync: failed saving delta file %s", deltaPath)
	}
	fmt.Fprintf(os.Stderr, "deltasync: saved delta file to %s\n", deltaPath)

	manifest := BuildManifest(chunkSize, v1.Data, v2.Data, time.Now().UnixNano())
	manifestPath := ManifestPath(v2Path)
	if err := SaveManifest(manifestPath, manifest); err != nil {
		return errors.Wrapf(err, "deltasync: failed saving manifest %s", manifestPath)
	}
	fmt.Fprintf(os.Stderr, "deltasync: saved manifest to %s\n", manifestPath)

	return nil
}

// Restore reconstructs V2 at destPath from v1Path plus the delta file at
// deltaPath.
func Restore(v1Path, deltaPath, destPath string) error {
	v1, err := LoadFile(v1Path)
	if err != nil {
		return err
	}

	deltas, err := LoadDeltaFile(deltaPath)
	if err != nil {
		return errors.Wrapf(err, "deltasync: failed loading delta file %s", deltaPath)
	}
	fmt.Fprintf(os.Stderr, "deltasync: loaded %d deltas from %s\n", len(deltas), deltaPath)

	dest, err := os.Create(destPath)
	if err != nil {
		return errors.Wrapf(err, "deltasync: failed creating %s", destPath)
	}
	defer dest.Close()

	if err := Replay(dest, v1.Data, deltas); err != nil {
		return errors.Wrapf(err, "deltasync: failed replaying deltas into %s", destPath)
	}
	fmt.Fprintf(os.Stderr, "deltasync: restored %s\n", destPath)

	return nil
}
