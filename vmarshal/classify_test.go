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

import (
	"math"
	"testing"
	"unsafe"

	"github.com/launix-de/vmarshal/value"
)

func TestClassify(t *testing.T) {
	var x [2]uint64
	p := unsafe.Pointer(&x[0])
	cases := []struct {
		name string
		v    value.Value
		kind Kind
		bits uint64
	}{
		{"bool", value.NewBool(true), Word32, 1},
		{"char", value.NewChar(-1), Word32, 0xffffffff},
		{"uchar", value.NewUChar(200), Word32, 200},
		{"int", value.NewInt(-2), Word32, 0xfffffffe},
		{"uint", value.NewUInt(7), Word32, 7},
		{"int64", value.NewInt64(-1), Word64, math.MaxUint64},
		{"uint64", value.NewUInt64(1 << 40), Word64, 1 << 40},
		{"double", value.NewDouble(3.25), Float64, math.Float64bits(3.25)},
		{"string", value.NewString(p), PointerKind, uint64(uintptr(p))},
		{"param", value.NewParam(p), PointerKind, uint64(uintptr(p))},
		{"pointer", value.NewPointer(p), PointerKind, uint64(uintptr(p))},
		{"null pointer", value.NewPointer(nil), PointerKind, 0},
	}
	for _, c := range cases {
		kind, bits := Classify(c.v)
		if kind != c.kind || bits != c.bits {
			t.Errorf("Classify(%s) = %v %#x, want %v %#x", c.name, kind, bits, c.kind, c.bits)
		}
		if k, ok := ClassifyType(c.v.Type()); !ok || k != c.kind {
			t.Errorf("ClassifyType(%s) = %v %v", c.name, k, ok)
		}
	}
}

func TestClassifyLong(t *testing.T) {
	kind, bits := Classify(value.NewLong(-1))
	if kind != LongKind {
		t.Errorf("long classified as %v, platform long is %v", kind, LongKind)
	}
	want := uint64(math.MaxUint64)
	if LongKind == Word32 {
		want = 0xffffffff
	}
	if bits != want {
		t.Errorf("long bits = %#x", bits)
	}
}

func TestClassifyDerived(t *testing.T) {
	color := value.RegisterType("TestClassifyColor", value.TypeEnum)
	kind, bits := Classify(value.NewEnum(color, 3))
	if kind != Word32 || bits != 3 {
		t.Errorf("enum = %v %#x", kind, bits)
	}
	mode := value.RegisterType("TestClassifyMode", value.TypeFlags)
	kind, bits = Classify(value.NewFlags(mode, 0x80000001))
	if kind != Word32 || bits != 0x80000001 {
		t.Errorf("flags = %v %#x", kind, bits)
	}
	widget := value.RegisterType("TestClassifyWidget", value.TypeObject)
	button := value.RegisterType("TestClassifyButton", widget)
	var x uint64
	kind, bits = Classify(value.NewObject(button, unsafe.Pointer(&x)))
	if kind != PointerKind || bits != uint64(uintptr(unsafe.Pointer(&x))) {
		t.Errorf("object = %v %#x", kind, bits)
	}
}

func TestClassifyRejects(t *testing.T) {
	expectPanicErr(t, "float", ErrUnclassifiable, func() {
		Classify(value.NewFloat(1.5))
	})
	expectPanicErr(t, "invalid", ErrUnclassifiable, func() {
		Classify(value.Invalid)
	})
	if _, ok := ClassifyType(value.TypeFloat); ok {
		t.Error("float must not have a kind")
	}
	if _, ok := ClassifyType(value.TypeInvalid); ok {
		t.Error("invalid must not have a kind")
	}
}
