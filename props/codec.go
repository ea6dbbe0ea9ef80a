package props

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/status"
)

// Space selects which set of native property primitives a Codec uses.
type Space int

const (
	// SessionSpace covers sessions, systems, devices and interfaces.
	SessionSpace Space = iota
	// DatabaseSpace covers databases and their objects.
	DatabaseSpace
)

func (s Space) String() string {
	if s == DatabaseSpace {
		return "database"
	}
	return "session"
}

// Codec reads and writes typed properties in one addressing space. Every
// accessor either succeeds completely or returns the classified error and a
// zero value.
type Codec struct {
	native     driver.Native
	classifier *status.Classifier
	space      Space
}

// NewCodec binds a codec to a native layer and classifier.
func NewCodec(n driver.Native, c *status.Classifier, space Space) *Codec {
	return &Codec{native: n, classifier: c, space: space}
}

// Space returns the addressing space of the codec.
func (c *Codec) Space() Space {
	return c.space
}

func (c *Codec) op(fn string, id uint32) string {
	prefix := "nx"
	if c.space == DatabaseSpace {
		prefix = "nxdb"
	}
	return fmt.Sprintf("%s%s(0x%08X)", prefix, fn, id)
}

func (c *Codec) get(h driver.Handle, id uint32, buf []byte) error {
	var code status.Code
	if c.space == DatabaseSpace {
		code = c.native.DbGetProperty(h, id, buf)
	} else {
		code = c.native.GetProperty(h, id, buf)
	}
	return c.classifier.Check(code, c.op("GetProperty", id))
}

func (c *Codec) set(h driver.Handle, id uint32, buf []byte) error {
	var code status.Code
	if c.space == DatabaseSpace {
		code = c.native.DbSetProperty(h, id, buf)
	} else {
		code = c.native.SetProperty(h, id, buf)
	}
	return c.classifier.Check(code, c.op("SetProperty", id))
}

func (c *Codec) fetch(h driver.Handle, id uint32) ([]byte, error) {
	f := SizedFetch{
		Size: func() (uint32, status.Code) {
			if c.space == DatabaseSpace {
				return c.native.DbGetPropertySize(h, id)
			}
			return c.native.GetPropertySize(h, id)
		},
		Fetch: func(buf []byte) status.Code {
			if c.space == DatabaseSpace {
				return c.native.DbGetProperty(h, id, buf)
			}
			return c.native.GetProperty(h, id, buf)
		},
	}
	return f.Run(c.classifier, c.op("GetProperty", id))
}

func (c *Codec) GetU8(h driver.Handle, id U8) (uint8, error) {
	buf := make([]byte, 1)
	if err := c.get(h, uint32(id), buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (c *Codec) SetU8(h driver.Handle, id U8, v uint8) error {
	return c.set(h, uint32(id), []byte{v})
}

// GetBool reads a one byte flag. Any nonzero byte is true.
func (c *Codec) GetBool(h driver.Handle, id Bool) (bool, error) {
	v, err := c.GetU8(h, U8(id))
	return v != 0, err
}

func (c *Codec) SetBool(h driver.Handle, id Bool, v bool) error {
	var b uint8
	if v {
		b = 1
	}
	return c.SetU8(h, U8(id), b)
}

func (c *Codec) GetU32(h driver.Handle, id U32) (uint32, error) {
	buf := make([]byte, 4)
	if err := c.get(h, uint32(id), buf); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func (c *Codec) SetU32(h driver.Handle, id U32, v uint32) error {
	return c.set(h, uint32(id), binary.LittleEndian.AppendUint32(nil, v))
}

func (c *Codec) GetU64(h driver.Handle, id U64) (uint64, error) {
	buf := make([]byte, 8)
	if err := c.get(h, uint32(id), buf); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}

func (c *Codec) SetU64(h driver.Handle, id U64, v uint64) error {
	return c.set(h, uint32(id), binary.LittleEndian.AppendUint64(nil, v))
}

func (c *Codec) GetF64(h driver.Handle, id F64) (float64, error) {
	v, err := c.GetU64(h, U64(id))
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (c *Codec) SetF64(h driver.Handle, id F64, v float64) error {
	return c.SetU64(h, U64(id), math.Float64bits(v))
}

// GetTime reads a driver timestamp: 100 ns ticks since 1601-01-01 UTC.
func (c *Codec) GetTime(h driver.Handle, id Time) (time.Time, error) {
	v, err := c.GetU64(h, U64(id))
	if err != nil {
		return time.Time{}, err
	}
	return TimeFromTicks(v), nil
}

func (c *Codec) SetTime(h driver.Handle, id Time, t time.Time) error {
	return c.SetU64(h, U64(id), TicksFromTime(t))
}

// GetRef reads a single handle. driver.NoHandle means the reference is unset.
func (c *Codec) GetRef(h driver.Handle, id Ref) (driver.Handle, error) {
	v, err := c.GetU32(h, U32(id))
	return driver.Handle(v), err
}

func (c *Codec) SetRef(h driver.Handle, id Ref, ref driver.Handle) error {
	return c.SetU32(h, U32(id), uint32(ref))
}

// GetString reads a variable length ASCII property.
func (c *Codec) GetString(h driver.Handle, id String) (string, error) {
	buf, err := c.fetch(h, uint32(id))
	if err != nil {
		return "", err
	}
	return driver.GoString(buf)
}

// SetString writes s followed by a NUL terminator.
func (c *Codec) SetString(h driver.Handle, id String, s string) error {
	buf, err := driver.CString(s)
	if err != nil {
		return err
	}
	return c.set(h, uint32(id), buf)
}

// GetStringArray reads a comma separated list. An empty value yields a
// single empty element; names containing commas cannot be represented.
func (c *Codec) GetStringArray(h driver.Handle, id StringArray) ([]string, error) {
	buf, err := c.fetch(h, uint32(id))
	if err != nil {
		return nil, err
	}
	s, err := driver.GoString(buf)
	if err != nil {
		return nil, err
	}
	return strings.Split(s, ","), nil
}

func (c *Codec) SetStringArray(h driver.Handle, id StringArray, v []string) error {
	buf, err := driver.CString(strings.Join(v, ","))
	if err != nil {
		return err
	}
	return c.set(h, uint32(id), buf)
}

func (c *Codec) GetRefArray(h driver.Handle, id RefArray) ([]driver.Handle, error) {
	buf, err := c.fetch(h, uint32(id))
	if err != nil {
		return nil, err
	}
	return decodeRefs(buf), nil
}

func (c *Codec) SetRefArray(h driver.Handle, id RefArray, v []driver.Handle) error {
	buf := make([]byte, 0, 4*len(v))
	for _, r := range v {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(r))
	}
	return c.set(h, uint32(id), buf)
}

// CountRefs returns the number of handles in a ref array using only the size
// query.
func (c *Codec) CountRefs(h driver.Handle, id RefArray) (int, error) {
	var (
		n    uint32
		code status.Code
	)
	if c.space == DatabaseSpace {
		n, code = c.native.DbGetPropertySize(h, uint32(id))
	} else {
		n, code = c.native.GetPropertySize(h, uint32(id))
	}
	if err := c.classifier.Check(code, c.op("GetPropertySize", uint32(id))); err != nil {
		return 0, err
	}
	return int(n / 4), nil
}

func (c *Codec) GetU32Array(h driver.Handle, id U32Array) ([]uint32, error) {
	buf, err := c.fetch(h, uint32(id))
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(buf)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return out, nil
}

func (c *Codec) SetU32Array(h driver.Handle, id U32Array, v []uint32) error {
	buf := make([]byte, 0, 4*len(v))
	for _, x := range v {
		buf = binary.LittleEndian.AppendUint32(buf, x)
	}
	return c.set(h, uint32(id), buf)
}

func (c *Codec) GetU8Array(h driver.Handle, id U8Array) ([]byte, error) {
	buf, err := c.fetch(h, uint32(id))
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return []byte{}, nil
	}
	return buf, nil
}

func (c *Codec) SetU8Array(h driver.Handle, id U8Array, v []byte) error {
	return c.set(h, uint32(id), append([]byte{}, v...))
}

func decodeRefs(buf []byte) []driver.Handle {
	out := make([]driver.Handle, len(buf)/4)
	for i := range out {
		out[i] = driver.Handle(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return out
}

// ticksTo1970 is the number of 100 ns ticks between 1601-01-01 and the Unix
// epoch.
const ticksTo1970 = 116444736000000000

// TimeFromTicks converts a driver timestamp to UTC time.
func TimeFromTicks(ticks uint64) time.Time {
	d := int64(ticks) - ticksTo1970
	return time.Unix(d/1e7, (d%1e7)*100).UTC()
}

// TicksFromTime converts t to a driver timestamp.
func TicksFromTime(t time.Time) uint64 {
	return uint64(t.Unix()*1e7 + int64(t.Nanosecond())/100 + ticksTo1970)
}
