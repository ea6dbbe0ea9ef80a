package driver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LoveWonYoung/nixnet/status"
)

func TestASCII(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{name: "empty", input: []string{""}},
		{name: "plain", input: []string{"CAN1", "NIXNET_example"}},
		{name: "punctuation", input: []string{"a,b:c/d\\e"}},
		{name: "non-ascii", input: []string{"ok", "Frême"}, wantErr: true},
		{name: "embedded nul", input: []string{"a\x00b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ASCII(tt.input...)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, status.ErrNonASCII))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCString(t *testing.T) {
	buf, err := CString("CAN1")
	require.NoError(t, err)
	require.Equal(t, []byte{'C', 'A', 'N', '1', 0}, buf)

	buf, err = CString("")
	require.NoError(t, err)
	require.Equal(t, []byte{0}, buf)

	_, err = CString("µ")
	require.ErrorIs(t, err, status.ErrNonASCII)
}

func TestGoString(t *testing.T) {
	for _, tc := range []struct {
		in   []byte
		want string
	}{
		{[]byte("abc\x00garbage"), "abc"},
		{[]byte("abc"), "abc"},
		{[]byte{0, 'x'}, ""},
		{[]byte{'o', 'k', 0, 0xE9}, "ok"},
		{nil, ""},
	} {
		got, err := GoString(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestGoString_NonASCII(t *testing.T) {
	_, err := GoString([]byte("caf\xe9\x00"))
	require.ErrorIs(t, err, status.ErrNonASCII)
}
