/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package vmarshal

import "fmt"
import "unsafe"

// Kind is the physical representation of one native argument.
type Kind uint8

const (
	KindInvalid Kind = iota // never produced; keeps Signature(0) free as sentinel
	Word32
	Word64
	Float64
)

// PointerKind is the kind of a native pointer on this host; it is used for the
// trailing data argument and for every pointer-like value.
var PointerKind = wordKind(unsafe.Sizeof(uintptr(0)))

// LongKind is the kind of a C long on this host.
var LongKind = wordKind(longSize)

func wordKind(size uintptr) Kind {
	switch size {
	case 4:
		return Word32
	case 8:
		return Word64
	}
	panic(fmt.Sprintf("vmarshal: unsupported word size %d", size))
}

// Letter returns the one-letter shape code: W, L or D.
func (k Kind) Letter() byte {
	switch k {
	case Word32:
		return 'W'
	case Word64:
		return 'L'
	case Float64:
		return 'D'
	}
	return '?'
}

func (k Kind) String() string {
	switch k {
	case Word32:
		return "word32"
	case Word64:
		return "word64"
	case Float64:
		return "float64"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// KindFromLetter is the inverse of Letter.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'W', 'w':
		return Word32
	case 'L', 'l':
		return Word64
	case 'D', 'd':
		return Float64
	}
	return KindInvalid
}

// ParseShape parses a letter string like "WDW" into kinds.
func ParseShape(shape string) ([]Kind, error) {
	if len(shape) > MaxArgs {
		return nil, fmt.Errorf("%w: shape %q has %d arguments", ErrTooManyArgs, shape, len(shape))
	}
	kinds := make([]Kind, len(shape))
	for i := 0; i < len(shape); i++ {
		kinds[i] = KindFromLetter(shape[i])
		if kinds[i] == KindInvalid {
			return nil, fmt.Errorf("%w: %q in shape %q", ErrInvalidKind, shape[i], shape)
		}
	}
	return kinds, nil
}

// ShapeOf renders kinds in letter form.
func ShapeOf(kinds []Kind) string {
	b := make([]byte, len(kinds))
	for i, k := range kinds {
		b[i] = k.Letter()
	}
	return string(b)
}
