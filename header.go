// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"encoding/binary"
	"fmt"
)

// HeaderLen is the fixed length of the DNS message header.
const HeaderLen = 12

// MaxMessageSize is the maximum DNS message size without EDNS0.
const MaxMessageSize = 512

// Opcodes and response codes used by this package.
const (
	OpcodeQuery uint8 = 0

	RcodeNoError        uint8 = 0
	RcodeNotImplemented uint8 = 4
)

// Header is the fixed 12-byte DNS message header.
//
// Construct directly or unpack from the wire using [ParseHeader].
type Header struct {
	// ID is the opaque transaction identifier, copied verbatim
	// from a query into its response.
	ID uint16

	// QR is false for a query and true for a response.
	QR bool

	// Opcode is the request kind; zero is a standard query.
	Opcode uint8

	// AA indicates an authoritative answer.
	AA bool

	// TC indicates a truncated message.
	TC bool

	// RD indicates that recursion is desired.
	RD bool

	// RA indicates that recursion is available.
	RA bool

	// Z is reserved for future use. Only the low three bits
	// survive a pack/parse cycle (see [*Header.Pack]).
	Z uint8

	// Rcode is the response code; zero means no error.
	Rcode uint8

	// QDCount is the number of entries in the question section.
	QDCount uint16

	// ANCount is the number of resource records in the answer section.
	ANCount uint16

	// NSCount is the number of name server resource records
	// in the authority section.
	NSCount uint16

	// ARCount is the number of resource records in the additional section.
	ARCount uint16
}

// ParseHeader unpacks a [*Header] from the first [HeaderLen] bytes of buf,
// ignoring any trailing bytes. It returns an error wrapping
// [ErrDeserialize] when buf is shorter than [HeaderLen].
func ParseHeader(buf []byte) (*Header, error) {
	if len(buf) < HeaderLen {
		return nil, fmt.Errorf("%w: got %d bytes, header needs %d", ErrDeserialize, len(buf), HeaderLen)
	}
	return &Header{
		ID:      binary.BigEndian.Uint16(buf[0:2]),
		QR:      buf[2]&0b1000_0000 != 0,
		Opcode:  (buf[2] & 0b0111_1000) >> 3,
		AA:      buf[2]&0b0000_0100 != 0,
		TC:      buf[2]&0b0000_0010 != 0,
		RD:      buf[2]&0b0000_0001 != 0,
		RA:      buf[3]&0b1000_0000 != 0,
		Z:       (buf[3] & 0b0111_1000) >> 4,
		Rcode:   buf[3] & 0b0000_1111,
		QDCount: binary.BigEndian.Uint16(buf[4:6]),
		ANCount: binary.BigEndian.Uint16(buf[6:8]),
		NSCount: binary.BigEndian.Uint16(buf[8:10]),
		ARCount: binary.BigEndian.Uint16(buf[10:12]),
	}, nil
}

// Pack serializes the header into exactly [HeaderLen] big-endian bytes.
//
// The Z field is packed at bit offset 4 and parsed with a four-bit-wide
// mask, which makes bit 3 of the low flags byte unrepresentable: that
// single bit is the only part of a well-formed header that does not
// survive a parse/pack cycle. The shift/mask pair here and in
// [ParseHeader] must stay identical so the field remains self-consistent.
func (h *Header) Pack() []byte {
	buf := make([]byte, 0, HeaderLen)
	buf = binary.BigEndian.AppendUint16(buf, h.ID)
	buf = append(buf, bit(h.QR)<<7|h.Opcode<<3|bit(h.AA)<<2|bit(h.TC)<<1|bit(h.RD))
	buf = append(buf, bit(h.RA)<<7|h.Z<<4|h.Rcode)
	buf = binary.BigEndian.AppendUint16(buf, h.QDCount)
	buf = binary.BigEndian.AppendUint16(buf, h.ANCount)
	buf = binary.BigEndian.AppendUint16(buf, h.NSCount)
	buf = binary.BigEndian.AppendUint16(buf, h.ARCount)
	return buf
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
