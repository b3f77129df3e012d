// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"net/netip"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/dns/dnsmessage"
)

// Queries packed by miekg/dns must parse with this codec.
func TestParseQueryPackedByMiekg(t *testing.T) {
	msg := new(dns.Msg)
	msg.SetQuestion("www.example.com.", dns.TypeA)
	msg.Id = 7

	raw, err := msg.Pack()
	require.NoError(t, err)

	header, err := ParseHeader(raw)
	require.NoError(t, err)
	require.Equal(t, uint16(7), header.ID)
	require.False(t, header.QR)
	require.Equal(t, OpcodeQuery, header.Opcode)
	require.True(t, header.RD)
	require.Equal(t, uint16(1), header.QDCount)

	question, err := ParseQuestion(raw[HeaderLen:])
	require.NoError(t, err)
	require.Equal(t, "www.example.com", question.String())
	require.Equal(t, TypeA, question.Type)
	require.Equal(t, ClassIN, question.Class)
}

// Queries packed by x/net/dns/dnsmessage must parse with this codec.
func TestParseQueryPackedByDNSMessage(t *testing.T) {
	msg := dnsmessage.Message{
		Header: dnsmessage.Header{ID: 99, RecursionDesired: true},
		Questions: []dnsmessage.Question{{
			Name:  dnsmessage.MustNewName("mail.example.net."),
			Type:  dnsmessage.TypeMX,
			Class: dnsmessage.ClassINET,
		}},
	}

	raw, err := msg.Pack()
	require.NoError(t, err)

	header, err := ParseHeader(raw)
	require.NoError(t, err)
	require.Equal(t, uint16(99), header.ID)
	require.True(t, header.RD)
	require.Equal(t, uint16(1), header.QDCount)

	question, err := ParseQuestion(raw[HeaderLen:])
	require.NoError(t, err)
	require.Equal(t, "mail.example.net", question.String())
	require.Equal(t, TypeMX, question.Type)
	require.Equal(t, ClassIN, question.Class)
}

// Responses packed by this codec must unpack with miekg/dns.
func TestMiekgUnpacksPackedResponse(t *testing.T) {
	header := &Header{
		ID:      0x1234,
		QR:      true,
		RD:      true,
		QDCount: 1,
		ANCount: 1,
	}
	question := &Question{
		Name:  mustName(t, "www", "example", "com"),
		Type:  TypeA,
		Class: ClassIN,
	}
	answer, err := NewARecord("www.example.com", netip.MustParseAddr("192.0.2.1"), 60)
	require.NoError(t, err)

	raw := header.Pack()
	raw = append(raw, question.Pack()...)
	raw = append(raw, answer.Pack()...)

	msg := new(dns.Msg)
	require.NoError(t, msg.Unpack(raw))

	require.True(t, msg.Response)
	require.Equal(t, uint16(0x1234), msg.Id)
	require.Len(t, msg.Question, 1)
	require.Equal(t, "www.example.com.", msg.Question[0].Name)
	require.Equal(t, dns.TypeA, msg.Question[0].Qtype)

	require.Len(t, msg.Answer, 1)
	a, ok := msg.Answer[0].(*dns.A)
	require.True(t, ok)
	require.Equal(t, "www.example.com.", a.Hdr.Name)
	require.Equal(t, uint32(60), a.Hdr.Ttl)
	require.Equal(t, "192.0.2.1", a.A.String())
}
