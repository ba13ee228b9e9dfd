// Package ubjson decodes the subset of Universal Binary JSON that Slippi
// replay metadata uses: objects, arrays, strings, booleans, and the five
// big-endian integer widths. All integers normalize to int64.
package ubjson

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrTruncated reports a document that ends mid-value.
	ErrTruncated = errors.New("ubjson: truncated document")
	// ErrMarker reports a type marker outside the supported subset.
	ErrMarker = errors.New("ubjson: unsupported type marker")
)

// ToMap decodes an already-opened object, consuming key/value pairs up to
// and including the closing brace.
func ToMap(buf []byte) (map[string]any, error) {
	d := &decoder{buf: buf}
	return d.object()
}

type decoder struct {
	buf []byte
	pos int
}

func (d *decoder) next() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, ErrTruncated
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) take(n int) ([]byte, error) {
	if n < 0 || len(d.buf)-d.pos < n {
		return nil, ErrTruncated
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// object reads pairs until the closing brace. Keys are length-prefixed
// strings with no 'S' marker.
func (d *decoder) object() (map[string]any, error) {
	m := make(map[string]any)
	for {
		marker, err := d.next()
		if err != nil {
			return nil, err
		}
		if marker == '}' {
			return m, nil
		}
		n, err := d.intValue(marker)
		if err != nil {
			return nil, fmt.Errorf("object key: %w", err)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative key length", ErrMarker)
		}
		key, err := d.take(int(n))
		if err != nil {
			return nil, err
		}
		val, err := d.value()
		if err != nil {
			return nil, err
		}
		m[string(key)] = val
	}
}

func (d *decoder) array() ([]any, error) {
	var vals []any
	for {
		if d.pos < len(d.buf) && d.buf[d.pos] == ']' {
			d.pos++
			return vals, nil
		}
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
}

func (d *decoder) value() (any, error) {
	marker, err := d.next()
	if err != nil {
		return nil, err
	}
	switch marker {
	case 'U', 'i', 'I', 'l', 'L':
		return d.intValue(marker)
	case 'S':
		lenMarker, err := d.next()
		if err != nil {
			return nil, err
		}
		n, err := d.intValue(lenMarker)
		if err != nil {
			return nil, fmt.Errorf("string length: %w", err)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative string length", ErrMarker)
		}
		b, err := d.take(int(n))
		if err != nil {
			return nil, err
		}
		return string(b), nil
	case 'T':
		return true, nil
	case 'F':
		return false, nil
	case '{':
		return d.object()
	case '[':
		return d.array()
	default:
		return nil, fmt.Errorf("%w: %#02x", ErrMarker, marker)
	}
}

// intValue decodes the integer whose type marker has been consumed.
func (d *decoder) intValue(marker byte) (int64, error) {
	switch marker {
	case 'U':
		b, err := d.next()
		return int64(b), err
	case 'i':
		b, err := d.next()
		return int64(int8(b)), err
	case 'I':
		b, err := d.take(2)
		if err != nil {
			return 0, err
		}
		return int64(int16(binary.BigEndian.Uint16(b))), nil
	case 'l':
		b, err := d.take(4)
		if err != nil {
			return 0, err
		}
		return int64(int32(binary.BigEndian.Uint32(b))), nil
	case 'L':
		b, err := d.take(8)
		if err != nil {
			return 0, err
		}
		return int64(binary.BigEndian.Uint64(b)), nil
	default:
		return 0, fmt.Errorf("%w: %#02x is not an integer", ErrMarker, marker)
	}
}
