// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnswire implements the RFC 1035 wire format for DNS messages.
//
// [ParseHeader], [ParseQuestion], [ParseType], and [ParseClass] unpack the
// fixed 12-byte header, the label-encoded question section, and the record
// type/class enumerations from raw bytes. [*Header], [*Question], and
// [*ResourceRecord] pack back to bytes via their Pack methods.
//
// The codec is deliberately hand-written and minimal: big-endian
// throughout, no name-compression pointer resolution, no EDNS0 options.
// It is stateless and safe for concurrent use.
package dnswire
