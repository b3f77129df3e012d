// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLabel(t *testing.T) {
	label, err := NewLabel([]byte("example"))
	require.NoError(t, err)
	require.Equal(t, "example", label.String())
	require.Equal(t, 7, label.Length())
}

func TestNewLabelNonASCII(t *testing.T) {
	// Valid UTF-8 is accepted; Length reports bytes, not runes.
	label, err := NewLabel([]byte("bücher"))
	require.NoError(t, err)
	require.Equal(t, 7, label.Length())
}

func TestNewLabelInvalidText(t *testing.T) {
	_, err := NewLabel([]byte{0xff, 0xfe})
	require.ErrorIs(t, err, ErrInvalidLabel)
}
