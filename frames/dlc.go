package frames

import (
	"fmt"

	"github.com/LoveWonYoung/nixnet/status"
)

var dlcLengths = [16]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 12, 16, 20, 24, 32, 48, 64}

// DLCToLength converts a CAN FD DLC code to the payload length.
func DLCToLength(dlc byte) int {
	return dlcLengths[dlc&0x0F]
}

// LengthToDLC returns the smallest DLC code whose length holds n bytes.
func LengthToDLC(n int) (byte, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("CAN FD payload of %d bytes: %w", n, status.ErrInvalidArgument)
	}
	for dlc, l := range dlcLengths {
		if n <= l {
			return byte(dlc), nil
		}
	}
	return 15, nil
}

// PadCANFD pads data with pad up to the next valid CAN FD length.
func PadCANFD(data []byte, pad byte) ([]byte, error) {
	dlc, err := LengthToDLC(len(data))
	if err != nil {
		return nil, err
	}
	out := append([]byte{}, data...)
	for len(out) < DLCToLength(dlc) {
		out = append(out, pad)
	}
	return out, nil
}
