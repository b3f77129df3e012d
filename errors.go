// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import "errors"

// Errors returned by the codec. Functions wrap these sentinels with
// additional detail, so test with [errors.Is].
var (
	// ErrSerialize indicates that we cannot serialize a message. The
	// encoders in this package are total, so nothing returns it today;
	// it is reserved for future encoders that can fail.
	ErrSerialize = errors.New("dnswire: cannot serialize message")

	// ErrDeserialize indicates malformed wire data: a buffer shorter
	// than a field requires, an unrecognized type or class code, or a
	// label length that overruns the buffer.
	ErrDeserialize = errors.New("dnswire: cannot deserialize message")

	// ErrInvalidLabel indicates that a name label is not valid text.
	ErrInvalidLabel = errors.New("dnswire: label is not valid text")
)
