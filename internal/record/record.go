// Package record defines the wire representation of one sensor measurement.
//
// The layout is a fixed tuple {id: u16, value: f64, ts: i64-seconds} in host
// byte order. SBUF never imports this package: it treats a Record as an
// opaque payload, copied by value, and never inspects its fields.
package record

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Size is the encoded length of a Record in bytes: 2 (ID) + 8 (Value) + 8 (TS).
const Size = 18

// Record is one sensor reading: the id of the reporting sensor, its measured
// value, and the Unix timestamp (seconds) at which it was taken.
type Record struct {
	ID    uint16
	Value float64
	TS    int64
}

// Codec encodes and decodes Records using the host's native byte order,
// matching spec §6 ("Endianness is host").
type Codec struct{}

// Encode writes r's wire representation to w.
func (Codec) Encode(w io.Writer, r Record) error {
	var buf [Size]byte
	binary.NativeEndian.PutUint16(buf[0:2], r.ID)
	binary.NativeEndian.PutUint64(buf[2:10], math.Float64bits(r.Value))
	binary.NativeEndian.PutUint64(buf[10:18], uint64(r.TS))
	_, err := w.Write(buf[:])
	if err != nil {
		return fmt.Errorf("record: encode: %w", err)
	}
	return nil
}

// Decode reads one Record's wire representation from r.
func (Codec) Decode(r io.Reader) (Record, error) {
	var buf [Size]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Record{}, err
	}
	return Record{
		ID:    binary.NativeEndian.Uint16(buf[0:2]),
		Value: math.Float64frombits(binary.NativeEndian.Uint64(buf[2:10])),
		TS:    int64(binary.NativeEndian.Uint64(buf[10:18])),
	}, nil
}
