// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeaderStandardQuery(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

	header, err := ParseHeader(raw)
	require.NoError(t, err)

	require.Equal(t, uint16(1), header.ID)
	require.False(t, header.QR)
	require.Equal(t, uint8(0), header.Opcode)
	require.False(t, header.AA)
	require.False(t, header.TC)
	require.True(t, header.RD)
	require.False(t, header.RA)
	require.Equal(t, uint8(0), header.Z)
	require.Equal(t, uint8(0), header.Rcode)
	require.Equal(t, uint16(1), header.QDCount)
	require.Equal(t, uint16(0), header.ANCount)
	require.Equal(t, uint16(0), header.NSCount)
	require.Equal(t, uint16(0), header.ARCount)
}

func TestHeaderPackResponse(t *testing.T) {
	header := &Header{
		ID:      1,
		QR:      true,
		Opcode:  0,
		AA:      false,
		TC:      false,
		RD:      true,
		RA:      false,
		Z:       0,
		Rcode:   0,
		QDCount: 1,
		ANCount: 1,
		NSCount: 0,
		ARCount: 0,
	}

	expect := []byte{0x00, 0x01, 0x81, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}
	require.Equal(t, expect, header.Pack())
}

func TestParseHeaderShortBuffer(t *testing.T) {
	for size := 0; size < HeaderLen; size++ {
		_, err := ParseHeader(make([]byte, size))
		require.ErrorIs(t, err, ErrDeserialize, "size %d", size)
	}
}

func TestParseHeaderIgnoresTrailingBytes(t *testing.T) {
	raw := []byte{0x12, 0x34, 0x85, 0x80, 0x00, 0x01, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00}
	withTrailer := append(append([]byte{}, raw...), 0xde, 0xad, 0xbe, 0xef)

	header, err := ParseHeader(withTrailer)
	require.NoError(t, err)
	require.Equal(t, raw, header.Pack())
}

func TestHeaderFieldRoundTrip(t *testing.T) {
	headers := []Header{
		{},
		{ID: 0xffff, QR: true, Opcode: 15, AA: true, TC: true, RD: true, RA: true, Z: 7, Rcode: 15,
			QDCount: 0xffff, ANCount: 0xffff, NSCount: 0xffff, ARCount: 0xffff},
		{ID: 42, Opcode: 2, RD: true, Z: 5, Rcode: 3, QDCount: 1},
		{ID: 0x1234, QR: true, AA: true, RA: true, Rcode: 4, QDCount: 1, ANCount: 1, NSCount: 2, ARCount: 3},
	}

	for _, header := range headers {
		parsed, err := ParseHeader(header.Pack())
		require.NoError(t, err)
		require.Equal(t, &header, parsed)
	}
}

func TestHeaderByteRoundTrip(t *testing.T) {
	// Bit 3 of byte 3 is the one documented bit that Pack cannot
	// represent, so it stays clear here.
	raws := [][]byte{
		{0x00, 0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0xab, 0xcd, 0xff, 0xf7, 0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0xff, 0xff, 0x7a, 0xd1, 0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0},
	}

	for _, raw := range raws {
		header, err := ParseHeader(raw)
		require.NoError(t, err)
		require.Equal(t, raw, header.Pack())
	}
}
