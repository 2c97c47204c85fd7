package imglib

import (
	"encoding/binary"
	"io"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the cost of reflection in `binary.Size` on every call.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed is a generic `Codec` for any struct `Payload` composed of fixed-size fields.
// Fields are laid out back to back in declaration order with no alignment gaps, which
// is exactly the packed layout of the bitmap headers.
//
// Constraint: `Payload` MUST NOT contain slices, maps or strings.
type Fixed[Payload any] struct {
	Payload Payload
}

var _ Codec = (*Fixed[struct{}])(nil)

// Size returns the fixed size of the payload in bytes.
func (c *Fixed[Payload]) Size() int {
	payloadType := reflect.TypeOf((*Payload)(nil)).Elem()

	if size, ok := sizeCache.Load(payloadType); ok {
		return size
	}

	size := binary.Size(&c.Payload)
	sizeCache.Store(payloadType, size)
	return size
}

// ReadFrom implements `io.ReaderFrom`, decoding the record straight from a stream.
func (c *Fixed[Payload]) ReadFrom(r io.Reader) (int64, error) {
	if err := binary.Read(r, Order, &c.Payload); err != nil {
		return 0, err
	}
	return int64(c.Size()), nil
}

// WriteTo implements `io.WriterTo`, encoding the record straight into a stream.
func (c *Fixed[Payload]) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, Order, &c.Payload); err != nil {
		return 0, err
	}
	return int64(c.Size()), nil
}
