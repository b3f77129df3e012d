// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"encoding/binary"
	"fmt"
)

// Type is a resource record type or question type code.
type Type uint16

// Resource record types and question types from RFC 1035.
const (
	TypeA     Type = 1
	TypeNS    Type = 2
	TypeMD    Type = 3
	TypeMF    Type = 4
	TypeCNAME Type = 5
	TypeSOA   Type = 6
	TypeMB    Type = 7
	TypeMG    Type = 8
	TypeMR    Type = 9
	TypeNULL  Type = 10
	TypeWKS   Type = 11
	TypePTR   Type = 12
	TypeHINFO Type = 13
	TypeMINFO Type = 14
	TypeMX    Type = 15
	TypeTXT   Type = 16

	// Question-section only.
	TypeAXFR  Type = 252
	TypeMAILB Type = 253
	TypeMAILA Type = 254
	TypeANY   Type = 255
)

// typeDescriptions is the single source of truth for which type codes
// exist; both directions of the mapping consult it.
var typeDescriptions = map[Type]string{
	TypeA:     "a host address",
	TypeNS:    "an authoritative name server",
	TypeMD:    "a mail destination (Obsolete - use MX)",
	TypeMF:    "a mail forwarder (Obsolete - use MX)",
	TypeCNAME: "the canonical name for an alias",
	TypeSOA:   "marks the start of a zone of authority",
	TypeMB:    "a mailbox domain name (EXPERIMENTAL)",
	TypeMG:    "a mail group member (EXPERIMENTAL)",
	TypeMR:    "a mail rename domain name (EXPERIMENTAL)",
	TypeNULL:  "a null RR (EXPERIMENTAL)",
	TypeWKS:   "a well known service description",
	TypePTR:   "a domain name pointer",
	TypeHINFO: "host information",
	TypeMINFO: "mailbox or mail list information",
	TypeMX:    "mail exchange",
	TypeTXT:   "text strings",
	TypeAXFR:  "a request for a transfer of an entire zone",
	TypeMAILB: "a request for mailbox-related records (MB, MG or MR)",
	TypeMAILA: "a request for mail agent RRs (Obsolete - see MX)",
	TypeANY:   "a request for all records",
}

// ParseType reads a big-endian type code from the first two bytes of buf.
// It returns an error wrapping [ErrDeserialize] when buf is too short or
// the code is not a known type; it never defaults.
func ParseType(buf []byte) (Type, error) {
	if len(buf) < 2 {
		return 0, fmt.Errorf("%w: got %d bytes, type needs 2", ErrDeserialize, len(buf))
	}
	t := Type(binary.BigEndian.Uint16(buf))
	if _, ok := typeDescriptions[t]; !ok {
		return 0, fmt.Errorf("%w: unknown type code %d", ErrDeserialize, uint16(t))
	}
	return t, nil
}

// Pack serializes the type code as two big-endian bytes.
func (t Type) Pack() []byte {
	return binary.BigEndian.AppendUint16(nil, uint16(t))
}

// String returns the RFC 1035 description of the type. Diagnostics
// only; not part of the wire contract.
func (t Type) String() string {
	if descr, ok := typeDescriptions[t]; ok {
		return descr
	}
	return fmt.Sprintf("unknown type %d", uint16(t))
}

// Class is a resource record class or question class code.
type Class uint16

// Resource record classes and question classes from RFC 1035.
const (
	ClassIN Class = 1
	ClassCS Class = 2
	ClassCH Class = 3
	ClassHS Class = 4

	// Question-section only.
	ClassANY Class = 255
)

var classDescriptions = map[Class]string{
	ClassIN:  "the Internet",
	ClassCS:  "the CSNET class (Obsolete)",
	ClassCH:  "the CHAOS class",
	ClassHS:  "Hesiod",
	ClassANY: "any class",
}

// ParseClass reads a big-endian class code from the first two bytes of
// buf. It returns an error wrapping [ErrDeserialize] when buf is too
// short or the code is not a known class; it never defaults.
func ParseClass(buf []byte) (Class, error) {
	if len(buf) < 2 {
		return 0, fmt.Errorf("%w: got %d bytes, class needs 2", ErrDeserialize, len(buf))
	}
	c := Class(binary.BigEndian.Uint16(buf))
	if _, ok := classDescriptions[c]; !ok {
		return 0, fmt.Errorf("%w: unknown class code %d", ErrDeserialize, uint16(c))
	}
	return c, nil
}

// Pack serializes the class code as two big-endian bytes.
func (c Class) Pack() []byte {
	return binary.BigEndian.AppendUint16(nil, uint16(c))
}

// String returns a description of the class. Diagnostics only.
func (c Class) String() string {
	if descr, ok := classDescriptions[c]; ok {
		return descr
	}
	return fmt.Sprintf("unknown class %d", uint16(c))
}
