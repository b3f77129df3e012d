// SPDX-License-Identifier: GPL-3.0-or-later

// Package hexdump formats byte buffers for debug output: sixteen bytes
// per line as hex, followed by a printable-ASCII column.
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

const lineWidth = 16

// Dump returns the hex/ASCII dump of buf. The dump of an empty buffer
// is the empty string.
func Dump(buf []byte) string {
	var sb strings.Builder
	for offset := 0; offset < len(buf); offset += lineWidth {
		chunk := buf[offset:min(offset+lineWidth, len(buf))]
		fmt.Fprintf(&sb, "%08x: ", offset)
		for _, b := range chunk {
			fmt.Fprintf(&sb, "%02x ", b)
		}
		for i := len(chunk); i < lineWidth; i++ {
			sb.WriteString("   ")
		}
		sb.WriteString("  ")
		for _, b := range chunk {
			if b >= 32 && b <= 126 {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Fdump writes the hex/ASCII dump of buf to w.
func Fdump(w io.Writer, buf []byte) error {
	_, err := io.WriteString(w, Dump(buf))
	return err
}
