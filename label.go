// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import "unicode/utf8"

// Label is a single length-prefixed segment of a domain name.
//
// Construct using [NewLabel], which validates the text. The zero value
// is the empty label, which only appears on the wire as a name
// terminator and is never stored inside a [Question] name.
//
// The codec does not enforce the 63-byte-per-label or 255-byte-per-name
// limits from RFC 1035: the wire length prefix is a single byte, so a
// label longer than 255 bytes cannot round-trip. Callers constructing
// names programmatically own that invariant.
type Label struct {
	text string
}

// NewLabel constructs a [Label] from raw wire bytes. It returns an
// error wrapping [ErrInvalidLabel] when the bytes are not valid UTF-8.
func NewLabel(raw []byte) (Label, error) {
	if !utf8.Valid(raw) {
		return Label{}, ErrInvalidLabel
	}
	return Label{text: string(raw)}, nil
}

// Length returns the byte length of the label text, which is also the
// value of its wire length prefix.
func (l Label) Length() int {
	return len(l.text)
}

// String returns the label text.
func (l Label) String() string {
	return l.text
}
