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
import "github.com/launix-de/vmarshal/value"

// Classify reduces a value to its physical kind and raw bit pattern. Word32
// payloads are zero extended, Float64 carries the IEEE-754 bits and pointer-like
// values carry their address. Derived types are classified by their
// fundamental. Anything else is a schema error and panics.
func Classify(v value.Value) (Kind, uint64) {
	switch f := v.Fundamental(); f {
	case value.TypeBoolean, value.TypeChar, value.TypeUChar, value.TypeInt,
		value.TypeUInt, value.TypeEnum, value.TypeFlags:
		return Word32, uint64(uint32(v.Bits()))
	case value.TypeInt64, value.TypeUInt64:
		return Word64, v.Bits()
	case value.TypeLong, value.TypeULong:
		if LongKind == Word32 {
			return Word32, uint64(uint32(v.Bits()))
		}
		return Word64, v.Bits()
	case value.TypeDouble:
		return Float64, v.Bits()
	case value.TypeString, value.TypeParam, value.TypeBoxed, value.TypePointer, value.TypeObject:
		return PointerKind, uint64(uintptr(v.Pointer()))
	default:
		panic(fmt.Errorf("%w: %s (fundamental %s)", ErrUnclassifiable, value.TypeName(v.Type()), value.TypeName(f)))
	}
}

// ClassifyType returns the kind values of type t classify to.
func ClassifyType(t value.Type) (Kind, bool) {
	switch value.Fundamental(t) {
	case value.TypeBoolean, value.TypeChar, value.TypeUChar, value.TypeInt,
		value.TypeUInt, value.TypeEnum, value.TypeFlags:
		return Word32, true
	case value.TypeInt64, value.TypeUInt64:
		return Word64, true
	case value.TypeLong, value.TypeULong:
		return LongKind, true
	case value.TypeDouble:
		return Float64, true
	case value.TypeString, value.TypeParam, value.TypeBoxed, value.TypePointer, value.TypeObject:
		return PointerKind, true
	}
	return KindInvalid, false
}
