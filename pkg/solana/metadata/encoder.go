package metadata

import (
	"github.com/pkg/errors"

	"github.com/code-payments/nft-cpi/pkg/solana/binary"
)

// field is one entry of an instruction layout: a named value of T with an
// explicit encoded width.
type field[T any] struct {
	name string
	size func(v *T) int
	put  func(dst []byte, v *T, offset *int) error
}

// encode writes the discriminant followed by every field of layout, in order.
func encode[T any](discriminant InstructionType, layout []field[T], v *T) ([]byte, error) {
	size := 1
	for _, f := range layout {
		size += f.size(v)
	}

	var offset int
	data := make([]byte, size)

	putInstructionType(data, discriminant, &offset)
	for _, f := range layout {
		if err := f.put(data[offset:], v, &offset); err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s", f.name)
		}
	}

	if offset != size {
		return nil, errors.Errorf("encoded %d bytes, expected %d", offset, size)
	}
	return data, nil
}

// shortStringField encodes [u8 length][bytes]. Values longer than
// MaxFieldLength fail unless legacyWrap is set, in which case the length byte
// wraps and every byte is still written.
func shortStringField[T any](name string, get func(v *T) string, legacyWrap bool) field[T] {
	return field[T]{
		name: name,
		size: func(v *T) int {
			return 1 + len(get(v))
		},
		put: func(dst []byte, v *T, offset *int) error {
			s := get(v)
			if len(s) > MaxFieldLength && !legacyWrap {
				return errors.Wrapf(ErrOversizedField, "%s is %d bytes", name, len(s))
			}

			binary.PutUint8(dst, uint8(len(s)), offset)
			binary.PutBytes(dst[1:], []byte(s), offset)
			return nil
		},
	}
}

func uint8Field[T any](name string, get func(v *T) uint8) field[T] {
	return field[T]{
		name: name,
		size: func(*T) int { return 1 },
		put: func(dst []byte, v *T, offset *int) error {
			binary.PutUint8(dst, get(v), offset)
			return nil
		},
	}
}

func boolField[T any](name string, get func(v *T) bool) field[T] {
	return field[T]{
		name: name,
		size: func(*T) int { return 1 },
		put: func(dst []byte, v *T, offset *int) error {
			binary.PutBool(dst, get(v), offset)
			return nil
		},
	}
}

// absentField encodes an optional value that is never supplied: a single
// zero presence byte.
func absentField[T any](name string) field[T] {
	return field[T]{
		name: name,
		size: func(*T) int { return 1 },
		put: func(dst []byte, _ *T, offset *int) error {
			binary.PutUint8(dst, 0, offset)
			return nil
		},
	}
}

func optionalUint64Field[T any](name string, get func(v *T) *uint64) field[T] {
	return field[T]{
		name: name,
		size: func(v *T) int {
			return binary.OptionalUint64Size(get(v))
		},
		put: func(dst []byte, v *T, offset *int) error {
			binary.PutOptionalUint64(dst, get(v), offset)
			return nil
		},
	}
}

// creatorsField encodes [u8 count] followed by count CreatorSize entries.
func creatorsField[T any](name string, get func(v *T) []Creator) field[T] {
	return field[T]{
		name: name,
		size: func(v *T) int {
			return 1 + CreatorSize*len(get(v))
		},
		put: func(dst []byte, v *T, offset *int) error {
			creators := get(v)
			if len(creators) > MaxCreators {
				return errors.Wrapf(ErrTooManyCreators, "%d creators", len(creators))
			}

			start := *offset
			binary.PutUint8(dst, uint8(len(creators)), offset)
			for i, c := range creators {
				raw, err := c.marshal()
				if err != nil {
					return errors.Wrapf(err, "creator %d", i)
				}
				binary.PutBytes(dst[*offset-start:], raw, offset)
			}
			return nil
		},
	}
}
