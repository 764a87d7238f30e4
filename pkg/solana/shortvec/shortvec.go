// Package shortvec implements the compact length prefix used by transaction
// messages: 7 bits per byte, little endian, at most 3 bytes.
package shortvec

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

const maxEncodedSize = 3

// ErrTooLong is returned for lengths that do not fit in a uint16.
var ErrTooLong = errors.Errorf("len exceeds %d", math.MaxUint16)

// AppendLen appends the encoding of n to dst.
func AppendLen(dst []byte, n int) ([]byte, error) {
	if n < 0 || n > math.MaxUint16 {
		return dst, ErrTooLong
	}

	for n >= 0x80 {
		dst = append(dst, byte(n&0x7f)|0x80)
		n >>= 7
	}
	return append(dst, byte(n)), nil
}

// Size returns the number of bytes EncodeLen writes for n.
func Size(n int) int {
	size := 1
	for n >= 0x80 {
		n >>= 7
		size++
	}
	return size
}

// EncodeLen encodes the specified len into the writer.
//
// If len > math.MaxUint16, an error is returned.
func EncodeLen(w io.Writer, len int) (n int, err error) {
	var buf [maxEncodedSize]byte

	encoded, err := AppendLen(buf[:0], len)
	if err != nil {
		return 0, err
	}
	return w.Write(encoded)
}

// DecodeLen decodes a shortvec encoded len from the reader.
func DecodeLen(r io.Reader) (val int, err error) {
	var buf [1]byte

	for i := 0; ; i++ {
		if i == maxEncodedSize {
			return 0, errors.Errorf("invalid size: more than %d bytes", maxEncodedSize)
		}

		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}

		val |= int(buf[0]&0x7f) << (i * 7)
		if buf[0]&0x80 == 0 {
			return val, nil
		}
	}
}
