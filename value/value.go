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
package value

import "fmt"
import "math"
import "unsafe"

// Value is a compact tagged value container. Scalars live in bits, pointer-like
// values in ptr. The value never owns the memory ptr points to.
type Value struct {
	typ  Type
	bits uint64
	ptr  unsafe.Pointer
}

// Invalid is the zero Value.
var Invalid Value

//
// Constructors
//

func NewBool(b bool) Value {
	if b {
		return Value{TypeBoolean, 1, nil}
	}
	return Value{TypeBoolean, 0, nil}
}

func NewChar(c int8) Value { return Value{TypeChar, uint64(int64(c)), nil} }

func NewUChar(c uint8) Value { return Value{TypeUChar, uint64(c), nil} }

func NewInt(i int32) Value { return Value{TypeInt, uint64(int64(i)), nil} }

func NewUInt(i uint32) Value { return Value{TypeUInt, uint64(i), nil} }

func NewLong(i int64) Value { return Value{TypeLong, uint64(i), nil} }

func NewULong(i uint64) Value { return Value{TypeULong, i, nil} }

func NewInt64(i int64) Value { return Value{TypeInt64, uint64(i), nil} }

func NewUInt64(i uint64) Value { return Value{TypeUInt64, i, nil} }

func NewFloat(f float32) Value { return Value{TypeFloat, uint64(math.Float32bits(f)), nil} }

func NewDouble(f float64) Value { return Value{TypeDouble, math.Float64bits(f), nil} }

// NewEnum creates an enum value of type t, which must derive from TypeEnum.
func NewEnum(t Type, v int32) Value {
	mustDerive(t, TypeEnum)
	return Value{t, uint64(int64(v)), nil}
}

// NewFlags creates a flags value of type t, which must derive from TypeFlags.
func NewFlags(t Type, v uint32) Value {
	mustDerive(t, TypeFlags)
	return Value{t, uint64(v), nil}
}

// NewString wraps a NUL terminated C string. p must not point into the Go heap.
func NewString(p unsafe.Pointer) Value { return Value{TypeString, 0, p} }

func NewParam(p unsafe.Pointer) Value { return Value{TypeParam, 0, p} }

func NewPointer(p unsafe.Pointer) Value { return Value{TypePointer, 0, p} }

// NewBoxed wraps a boxed instance of type t (derived from TypeBoxed).
func NewBoxed(t Type, p unsafe.Pointer) Value {
	mustDerive(t, TypeBoxed)
	return Value{t, 0, p}
}

// NewObject wraps an object reference of type t (derived from TypeObject).
func NewObject(t Type, p unsafe.Pointer) Value {
	mustDerive(t, TypeObject)
	return Value{t, 0, p}
}

func mustDerive(t Type, fundamental Type) {
	if Fundamental(t) != fundamental {
		panic(fmt.Sprintf("value: type %s does not derive from %s", TypeName(t), TypeName(fundamental)))
	}
}

//
// Accessors
//

func (v Value) Type() Type { return v.typ }

func (v Value) Fundamental() Type { return Fundamental(v.typ) }

func (v Value) IsValid() bool { return v.typ != TypeInvalid }

// Bits returns the raw scalar payload (zero for pointer-like values).
func (v Value) Bits() uint64 { return v.bits }

// Pointer returns the payload of pointer-like values.
func (v Value) Pointer() unsafe.Pointer { return v.ptr }

// IsPointerLike reports whether the value is carried as an address.
func (v Value) IsPointerLike() bool {
	switch v.Fundamental() {
	case TypeString, TypeParam, TypeBoxed, TypePointer, TypeObject:
		return true
	}
	return false
}

func (v Value) Bool() bool {
	if v.IsPointerLike() {
		return v.ptr != nil
	}
	switch v.Fundamental() {
	case TypeFloat:
		return math.Float32frombits(uint32(v.bits)) != 0
	case TypeDouble:
		return math.Float64frombits(v.bits) != 0
	}
	return v.bits != 0
}

func (v Value) Int64() int64 {
	switch v.Fundamental() {
	case TypeFloat:
		return int64(math.Float32frombits(uint32(v.bits)))
	case TypeDouble:
		return int64(math.Float64frombits(v.bits))
	case TypeString, TypeParam, TypeBoxed, TypePointer, TypeObject:
		return int64(uintptr(v.ptr))
	}
	return int64(v.bits)
}

func (v Value) Uint64() uint64 {
	switch v.Fundamental() {
	case TypeFloat, TypeDouble:
		return uint64(v.Float64())
	case TypeString, TypeParam, TypeBoxed, TypePointer, TypeObject:
		return uint64(uintptr(v.ptr))
	}
	return v.bits
}

func (v Value) Float64() float64 {
	switch v.Fundamental() {
	case TypeFloat:
		return float64(math.Float32frombits(uint32(v.bits)))
	case TypeDouble:
		return math.Float64frombits(v.bits)
	case TypeUInt, TypeUChar, TypeULong, TypeUInt64, TypeFlags:
		return float64(v.bits)
	}
	return float64(v.Int64())
}

func (v Value) String() string {
	switch v.Fundamental() {
	case TypeInvalid:
		return "<invalid>"
	case TypeBoolean:
		if v.bits != 0 {
			return "true"
		}
		return "false"
	case TypeFloat, TypeDouble:
		return fmt.Sprintf("%s(%g)", TypeName(v.typ), v.Float64())
	case TypeUChar, TypeUInt, TypeULong, TypeUInt64, TypeFlags:
		return fmt.Sprintf("%s(%d)", TypeName(v.typ), v.bits)
	case TypeString, TypeParam, TypeBoxed, TypePointer, TypeObject:
		return fmt.Sprintf("%s(%p)", TypeName(v.typ), v.ptr)
	}
	return fmt.Sprintf("%s(%d)", TypeName(v.typ), int64(v.bits))
}
