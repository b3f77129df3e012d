// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strings"

	"golang.org/x/net/idna"
)

// ResourceRecord is a DNS answer, authority, or additional entry.
//
// Unlike [Question], the owner name is a dotted string rather than a
// label slice, because records in this package are only ever synthesized
// programmatically and never parsed from the wire.
//
// The caller must keep RDLength equal to len(RData); [*ResourceRecord.Pack]
// emits both verbatim without checking. [NewARecord] maintains the
// invariant for the common case.
type ResourceRecord struct {
	// Name is the dotted owner name, e.g. "www.example.com".
	Name string

	// Type is the record type.
	Type Type

	// Class is the record class.
	Class Class

	// TTL is the time to live in seconds.
	TTL uint32

	// RDLength is the length of RData in bytes.
	RDLength uint16

	// RData is the opaque record data.
	RData []byte
}

// NewARecord constructs an address record for the given owner name.
//
// The name is IDNA-normalized to its ASCII form, so it may contain
// non-ASCII characters. The address must be IPv4.
func NewARecord(name string, addr netip.Addr, ttl uint32) (*ResourceRecord, error) {
	punyName, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return nil, err
	}
	if !addr.Is4() {
		return nil, fmt.Errorf("%w: %s is not an IPv4 address", ErrSerialize, addr)
	}
	rdata := addr.As4()
	return &ResourceRecord{
		Name:     punyName,
		Type:     TypeA,
		Class:    ClassIN,
		TTL:      ttl,
		RDLength: uint16(len(rdata)),
		RData:    rdata[:],
	}, nil
}

// Pack serializes the record: the owner name split on '.' with each
// segment length-prefixed, a terminating zero byte, then type, class,
// TTL, RDLength, and the raw RData bytes, all big-endian.
func (rr *ResourceRecord) Pack() []byte {
	buf := make([]byte, 0, MaxMessageSize)
	for segment := range strings.SplitSeq(rr.Name, ".") {
		buf = append(buf, byte(len(segment)))
		buf = append(buf, segment...)
	}
	buf = append(buf, 0)
	buf = append(buf, rr.Type.Pack()...)
	buf = append(buf, rr.Class.Pack()...)
	buf = binary.BigEndian.AppendUint32(buf, rr.TTL)
	buf = binary.BigEndian.AppendUint16(buf, rr.RDLength)
	buf = append(buf, rr.RData...)
	return buf
}
