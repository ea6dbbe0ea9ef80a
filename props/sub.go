package props

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/LoveWonYoung/nixnet/driver"
	"github.com/LoveWonYoung/nixnet/status"
)

// SubCodec addresses properties by session handle plus the index of an item
// in the session list. The native primitive only carries scalars and
// strings, so no array accessors exist here.
type SubCodec struct {
	native     driver.Native
	classifier *status.Classifier
}

func NewSubCodec(n driver.Native, c *status.Classifier) *SubCodec {
	return &SubCodec{native: n, classifier: c}
}

func subOp(fn string, index, id uint32) string {
	return fmt.Sprintf("nx%s(%d, 0x%08X)", fn, index, id)
}

func (s *SubCodec) get(h driver.Handle, index, id uint32, buf []byte) error {
	return s.classifier.Check(s.native.GetSubProperty(h, index, id, buf), subOp("GetSubProperty", index, id))
}

func (s *SubCodec) set(h driver.Handle, index, id uint32, buf []byte) error {
	return s.classifier.Check(s.native.SetSubProperty(h, index, id, buf), subOp("SetSubProperty", index, id))
}

func (s *SubCodec) GetU32(h driver.Handle, index uint32, id U32) (uint32, error) {
	buf := make([]byte, 4)
	if err := s.get(h, index, uint32(id), buf); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func (s *SubCodec) SetU32(h driver.Handle, index uint32, id U32, v uint32) error {
	return s.set(h, index, uint32(id), binary.LittleEndian.AppendUint32(nil, v))
}

func (s *SubCodec) GetF64(h driver.Handle, index uint32, id F64) (float64, error) {
	buf := make([]byte, 8)
	if err := s.get(h, index, uint32(id), buf); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
}

func (s *SubCodec) SetF64(h driver.Handle, index uint32, id F64, v float64) error {
	return s.set(h, index, uint32(id), binary.LittleEndian.AppendUint64(nil, math.Float64bits(v)))
}

func (s *SubCodec) GetString(h driver.Handle, index uint32, id String) (string, error) {
	f := SizedFetch{
		Size: func() (uint32, status.Code) {
			return s.native.GetSubPropertySize(h, index, uint32(id))
		},
		Fetch: func(buf []byte) status.Code {
			return s.native.GetSubProperty(h, index, uint32(id), buf)
		},
	}
	buf, err := f.Run(s.classifier, subOp("GetSubProperty", index, uint32(id)))
	if err != nil {
		return "", err
	}
	return driver.GoString(buf)
}

func (s *SubCodec) SetString(h driver.Handle, index uint32, id String, v string) error {
	buf, err := driver.CString(v)
	if err != nil {
		return err
	}
	return s.set(h, index, uint32(id), buf)
}
