package frames

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LoveWonYoung/nixnet/status"
)

func TestSize(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 24}, {1, 24}, {8, 24}, {9, 32}, {16, 32}, {64, 80}, {255, 272},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Size(tt.n), "payload %d", tt.n)
	}
}

func TestEncodeLayout(t *testing.T) {
	buf, err := Encode([]Frame{{
		Timestamp:  0x0102030405060708,
		Identifier: 0x123,
		Type:       TypeCANData,
		Flags:      FlagTransmitEcho,
		Info:       7,
		Payload:    []byte{0xAA, 0xBB, 0xCC},
	}})
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0x23, 0x01, 0x00, 0x00,
		0x00, 0x80, 0x07, 0x03,
		0xAA, 0xBB, 0xCC, 0, 0, 0, 0, 0,
	}, buf)
}

func TestRoundTrip(t *testing.T) {
	in := []Frame{
		CAN(0x7FF, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
		CAN(0x18DAF110, []byte{0x02, 0x10, 0x03}),
		CANFD(0x100, make([]byte, 12), true),
		{Type: TypeCANRemote, Identifier: 0x55, Payload: []byte{}},
	}
	buf, err := Encode(in)
	require.NoError(t, err)
	require.Len(t, buf, 24+24+32+24)

	out, err := Decode(buf)
	require.NoError(t, err)
	require.Len(t, out, 4)
	require.Equal(t, in[0], out[0])
	require.True(t, out[1].Extended())
	require.Equal(t, uint32(0x18DAF110), out[1].ID())
	require.Equal(t, TypeCANFDBRSData, out[2].Type)
	require.Len(t, out[2].Payload, 12)
	require.Empty(t, out[3].Payload)
}

func TestDecodeRejectsTruncation(t *testing.T) {
	buf, err := Encode([]Frame{CAN(1, []byte{1})})
	require.NoError(t, err)

	_, err = Decode(buf[:20])
	require.ErrorIs(t, err, status.ErrInvalidArgument)

	_, err = Decode(append(buf, 0, 0, 0))
	require.ErrorIs(t, err, status.ErrInvalidArgument)

	out, err := Decode(nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestEncodeRejectsOversizedPayload(t *testing.T) {
	_, err := Encode([]Frame{{Payload: make([]byte, 256)}})
	require.ErrorIs(t, err, status.ErrInvalidArgument)
}

func TestFrameHelpers(t *testing.T) {
	f := Frame{Identifier: 0x3A1, Flags: FlagTransmitEcho, Payload: []byte{0x27, 0x0E}}
	require.True(t, f.Echo())
	require.False(t, f.Extended())
	require.Equal(t, "TX CAN       ID=0x3A1, DLC=02, Data=27 0E", f.String())

	f.Timestamp = 116444736000000000 + 10_000_000
	require.Equal(t, time.Unix(1, 0).UTC(), f.Time())

	require.True(t, TypeCANFDData.IsCAN())
	require.False(t, TypeLINData.IsCAN())
	require.Equal(t, "type(0x99)", Type(0x99).String())
}

func TestDLC(t *testing.T) {
	tests := []struct {
		n   int
		dlc byte
	}{
		{0, 0}, {8, 8}, {9, 9}, {12, 9}, {13, 10}, {20, 11}, {24, 12}, {25, 13}, {33, 14}, {64, 15},
	}
	for _, tt := range tests {
		dlc, err := LengthToDLC(tt.n)
		require.NoError(t, err)
		require.Equal(t, tt.dlc, dlc, "length %d", tt.n)
	}
	_, err := LengthToDLC(65)
	require.ErrorIs(t, err, status.ErrInvalidArgument)

	require.Equal(t, 48, DLCToLength(14))

	padded, err := PadCANFD([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}, 0xCC)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 0xCC, 0xCC, 0xCC}, padded)
}
