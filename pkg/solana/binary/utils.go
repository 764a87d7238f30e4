package binary

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrShortBuffer is returned by the Get* helpers when the source does not hold
// enough bytes for the value being read.
var ErrShortBuffer = errors.New("binary: short buffer")

func PutKey32(dst []byte, src []byte, offset *int) {
	copy(dst, src)
	*offset += ed25519.PublicKeySize
}

func PutUint8(dst []byte, v uint8, offset *int) {
	dst[0] = v
	*offset += 1
}

func PutBool(dst []byte, v bool, offset *int) {
	if v {
		dst[0] = 1
	} else {
		dst[0] = 0
	}
	*offset += 1
}

func PutBytes(dst []byte, src []byte, offset *int) {
	copy(dst, src)
	*offset += len(src)
}

// PutOptionalUint64 writes a presence byte followed, when v is set, by the
// little endian value. An absent value occupies only the presence byte.
func PutOptionalUint64(dst []byte, v *uint64, offset *int) {
	if v == nil {
		dst[0] = 0
		*offset += 1
		return
	}

	dst[0] = 1
	binary.LittleEndian.PutUint64(dst[1:], *v)
	*offset += OptionalUint64Size(v)
}

// OptionalUint64Size is the number of bytes PutOptionalUint64 writes for v.
func OptionalUint64Size(v *uint64) int {
	if v == nil {
		return 1
	}
	return 1 + 8
}

func GetKey32(src []byte, dst *ed25519.PublicKey, offset *int) error {
	if len(src) < ed25519.PublicKeySize {
		return errors.Wrap(ErrShortBuffer, "key32")
	}
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src)
	*offset += ed25519.PublicKeySize
	return nil
}

func GetUint8(src []byte, dst *uint8, offset *int) error {
	if len(src) < 1 {
		return errors.Wrap(ErrShortBuffer, "uint8")
	}
	*dst = src[0]
	*offset += 1
	return nil
}

func GetBool(src []byte, dst *bool, offset *int) error {
	if len(src) < 1 {
		return errors.Wrap(ErrShortBuffer, "bool")
	}
	switch src[0] {
	case 0:
		*dst = false
	case 1:
		*dst = true
	default:
		return errors.Errorf("invalid bool value: %d", src[0])
	}
	*offset += 1
	return nil
}

func GetBytes(src []byte, dst *[]byte, length int, offset *int) error {
	if len(src) < length {
		return errors.Wrapf(ErrShortBuffer, "bytes (want %d, have %d)", length, len(src))
	}
	*dst = make([]byte, length)
	copy(*dst, src)
	*offset += length
	return nil
}

func GetOptionalUint64(src []byte, dst **uint64, offset *int) error {
	if len(src) < 1 {
		return errors.Wrap(ErrShortBuffer, "option")
	}

	switch src[0] {
	case 0:
		*dst = nil
		*offset += 1
		return nil
	case 1:
		if len(src) < 1+8 {
			return errors.Wrap(ErrShortBuffer, "optional uint64")
		}
		val := binary.LittleEndian.Uint64(src[1:])
		*dst = &val
		*offset += 1 + 8
		return nil
	default:
		return errors.Errorf("invalid option presence byte: %d", src[0])
	}
}
