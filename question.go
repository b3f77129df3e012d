// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"fmt"
	"strings"
)

// Question is the query section of a DNS message: the requested name as
// an ordered sequence of labels, plus the question type and class.
//
// The terminating zero-length label exists only on the wire; it is
// never stored in Name.
type Question struct {
	// Name is the requested domain name, one [Label] per segment.
	Name []Label

	// Type is the question type.
	Type Type

	// Class is the question class.
	Class Class
}

// ParseQuestion unpacks a [*Question] from buf, which must start at the
// first byte after the message header (the caller slices off the header).
//
// The decoder reads length-prefixed labels until the terminating zero
// byte, then two bytes of type and two bytes of class. It fails with an
// error wrapping [ErrDeserialize] or [ErrInvalidLabel] — without ever
// reading past buf — when a label length overruns the buffer, the
// terminator or the type/class fields are missing, the type or class
// code is unknown, or a label is not valid text.
//
// Name-compression pointers (RFC 1035 section 4.1.4) are not supported:
// a pointer byte is read as a literal length, which exceeds the 63-byte
// label maximum and in practice fails the bounds check. Following a
// pointer would require the whole message and a cursor, not this
// post-header slice.
func ParseQuestion(buf []byte) (*Question, error) {
	var labels []Label
	idx := 0
	for {
		if idx >= len(buf) {
			return nil, fmt.Errorf("%w: name is missing its terminating zero byte", ErrDeserialize)
		}
		length := int(buf[idx])
		idx++
		if length == 0 {
			break
		}
		if idx+length > len(buf) {
			return nil, fmt.Errorf("%w: label length %d overruns the buffer", ErrDeserialize, length)
		}
		label, err := NewLabel(buf[idx : idx+length])
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
		idx += length
	}

	qtype, err := ParseType(buf[idx:])
	if err != nil {
		return nil, err
	}
	idx += 2

	qclass, err := ParseClass(buf[idx:])
	if err != nil {
		return nil, err
	}

	return &Question{
		Name:  labels,
		Type:  qtype,
		Class: qclass,
	}, nil
}

// Pack serializes the question: each label as its length prefix followed
// by its bytes, a terminating zero byte, then the type and class codes.
func (q *Question) Pack() []byte {
	buf := make([]byte, 0, MaxMessageSize)
	for _, label := range q.Name {
		buf = append(buf, byte(label.Length()))
		buf = append(buf, label.String()...)
	}
	buf = append(buf, 0)
	buf = append(buf, q.Type.Pack()...)
	buf = append(buf, q.Class.Pack()...)
	return buf
}

// String returns the dotted form of the question name.
func (q *Question) String() string {
	segments := make([]string, 0, len(q.Name))
	for _, label := range q.Name {
		segments = append(segments, label.String())
	}
	return strings.Join(segments, ".")
}
