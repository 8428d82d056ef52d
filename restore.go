// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package deltasync

import (
	"io"

	"github.com/pkg/errors"
)

// Replay writes v2's reconstructed bytes to dst by walking deltas in order:
// ADD writes its literal payload, KEEP copies a byte range out of v1. The
// output is append-only; there is no seeking or random access into dst.
func Replay(dst io.Writer, v1 []byte, deltas []Delta) error {
	for _, d := range deltas {
		switch d.Command {
		case CommandAdd:
			if _, err := dst.Write(d.Data); err != nil {
				return errors.Wrap(err, "deltasync: failed writing ADD delta")
			}
		case CommandKeep:
			if _, err := dst.Write(v1[d.Pos : d.Pos+d.Size]); err != nil {
				return errors.Wrap(err, "deltasync: failed writing KEEP delta")
			}
		default:
			return errors.Wrap(ErrInvalidCommand, d.Command.String())
		}
	}
	return nil
}
