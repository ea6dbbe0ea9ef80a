// Package frames encodes and decodes the driver's raw frame buffers.
//
// Each frame is a 16 byte header followed by its payload:
//
//	timestamp      u64   100 ns ticks since 1601-01-01 UTC
//	identifier     u32   bit 29 set for extended CAN ids
//	type           u8
//	flags          u8
//	info           u8
//	payload length u8
//	payload              padded with zeros to a multiple of 8, at least 8
//
// All fields are little endian.
package frames

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/LoveWonYoung/nixnet/props"
	"github.com/LoveWonYoung/nixnet/status"
)

const (
	// HeaderSize is the fixed part of every frame.
	HeaderSize = 16
	// MaxPayload is the largest payload the length byte can describe.
	MaxPayload = 255
	// ExtendedIDBit marks a 29 bit CAN identifier.
	ExtendedIDBit uint32 = 0x20000000
)

// Type is the frame type byte.
type Type uint8

const (
	TypeCANData           Type = 0x00
	TypeCANRemote         Type = 0x01
	TypeCANBusError       Type = 0x02
	TypeCAN20Data         Type = 0x08
	TypeCANFDData         Type = 0x10
	TypeCANFDBRSData      Type = 0x18
	TypeFlexRayData       Type = 0x20
	TypeFlexRayNull       Type = 0x21
	TypeFlexRaySymbol     Type = 0x22
	TypeLINData           Type = 0x40
	TypeLINBusError       Type = 0x41
	TypeLINNoResponse     Type = 0x42
	TypeJ1939Data         Type = 0xC0
	TypeSpecialDelay      Type = 0xE0
	TypeSpecialLogTrigger Type = 0xE1
	TypeSpecialStartTrig  Type = 0xE2
)

var typeNames = map[Type]string{
	TypeCANData:           "CAN",
	TypeCANRemote:         "CAN-RTR",
	TypeCANBusError:       "CAN-ERR",
	TypeCAN20Data:         "CAN2.0",
	TypeCANFDData:         "CANFD",
	TypeCANFDBRSData:      "CANFD-BRS",
	TypeFlexRayData:       "FR",
	TypeFlexRayNull:       "FR-NULL",
	TypeFlexRaySymbol:     "FR-SYM",
	TypeLINData:           "LIN",
	TypeLINBusError:       "LIN-ERR",
	TypeLINNoResponse:     "LIN-NORESP",
	TypeJ1939Data:         "J1939",
	TypeSpecialDelay:      "DELAY",
	TypeSpecialLogTrigger: "LOGTRIG",
	TypeSpecialStartTrig:  "STARTTRIG",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("type(0x%02X)", uint8(t))
}

// IsCAN reports whether t carries a CAN payload.
func (t Type) IsCAN() bool {
	switch t {
	case TypeCANData, TypeCANRemote, TypeCAN20Data, TypeCANFDData, TypeCANFDBRSData:
		return true
	}
	return false
}

// Flags is the frame flags byte.
type Flags uint8

const (
	FlagFlexRayStartup  Flags = 0x01
	FlagFlexRaySync     Flags = 0x02
	FlagFlexRayPreamble Flags = 0x04
	FlagLINEventSlot    Flags = 0x01
	FlagFlexRayChA      Flags = 0x10
	FlagFlexRayChB      Flags = 0x20
	FlagTransmitEcho    Flags = 0x80
)

// Frame is one decoded raw frame.
type Frame struct {
	Timestamp  uint64
	Identifier uint32
	Type       Type
	Flags      Flags
	Info       uint8
	Payload    []byte
}

// ID returns the identifier without the extended bit.
func (f Frame) ID() uint32 {
	return f.Identifier &^ ExtendedIDBit
}

func (f Frame) Extended() bool {
	return f.Identifier&ExtendedIDBit != 0
}

func (f Frame) Echo() bool {
	return f.Flags&FlagTransmitEcho != 0
}

// Time converts the timestamp to UTC.
func (f Frame) Time() time.Time {
	return props.TimeFromTicks(f.Timestamp)
}

func (f Frame) String() string {
	dir := "RX"
	if f.Echo() {
		dir = "TX"
	}
	return fmt.Sprintf("%s %-9s ID=0x%03X, DLC=%02d, Data=% 02X", dir, f.Type, f.ID(), len(f.Payload), f.Payload)
}

// Size returns the encoded size of a frame with n payload bytes.
func Size(n int) int {
	area := (n + 7) &^ 7
	if area < 8 {
		area = 8
	}
	return HeaderSize + area
}

// Decode splits buf into frames. A buffer that ends inside a frame is
// rejected as a whole.
func Decode(buf []byte) ([]Frame, error) {
	var out []Frame
	for off := 0; off < len(buf); {
		if len(buf)-off < HeaderSize {
			return nil, fmt.Errorf("truncated header at offset %d: %w", off, status.ErrInvalidArgument)
		}
		h := buf[off : off+HeaderSize]
		n := int(h[15])
		size := Size(n)
		if len(buf)-off < size {
			return nil, fmt.Errorf("truncated payload at offset %d (need %d bytes, have %d): %w",
				off, size, len(buf)-off, status.ErrInvalidArgument)
		}
		out = append(out, Frame{
			Timestamp:  binary.LittleEndian.Uint64(h[0:]),
			Identifier: binary.LittleEndian.Uint32(h[8:]),
			Type:       Type(h[12]),
			Flags:      Flags(h[13]),
			Info:       h[14],
			Payload:    append([]byte{}, buf[off+HeaderSize:off+HeaderSize+n]...),
		})
		off += size
	}
	return out, nil
}

// Encode lays frames out back to back.
func Encode(fs []Frame) ([]byte, error) {
	total := 0
	for i, f := range fs {
		if len(f.Payload) > MaxPayload {
			return nil, fmt.Errorf("frame %d: payload of %d bytes: %w", i, len(f.Payload), status.ErrInvalidArgument)
		}
		total += Size(len(f.Payload))
	}
	buf := make([]byte, 0, total)
	for _, f := range fs {
		buf = binary.LittleEndian.AppendUint64(buf, f.Timestamp)
		buf = binary.LittleEndian.AppendUint32(buf, f.Identifier)
		buf = append(buf, byte(f.Type), byte(f.Flags), f.Info, byte(len(f.Payload)))
		buf = append(buf, f.Payload...)
		for pad := Size(len(f.Payload)) - HeaderSize - len(f.Payload); pad > 0; pad-- {
			buf = append(buf, 0)
		}
	}
	return buf, nil
}

// CAN builds a CAN data frame. Identifiers above 0x7FF are sent extended.
func CAN(id uint32, data []byte) Frame {
	f := Frame{Identifier: id, Type: TypeCANData, Payload: data}
	if id > 0x7FF {
		f.Identifier |= ExtendedIDBit
	}
	return f
}

// CANFD builds a CAN FD frame, with bit rate switching if brs is set.
func CANFD(id uint32, data []byte, brs bool) Frame {
	f := CAN(id, data)
	f.Type = TypeCANFDData
	if brs {
		f.Type = TypeCANFDBRSData
	}
	return f
}
