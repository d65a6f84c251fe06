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

import (
	"sync"
	"testing"
	"unsafe"
)

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func TestFundamentals(t *testing.T) {
	for ty := TypeBoolean; ty < numFundamentals; ty++ {
		if !IsFundamental(ty) {
			t.Errorf("%d should be fundamental", ty)
		}
		if Fundamental(ty) != ty {
			t.Errorf("Fundamental(%s) = %d", TypeName(ty), Fundamental(ty))
		}
		if TypeFromName(TypeName(ty)) != ty {
			t.Errorf("name roundtrip failed for %s", TypeName(ty))
		}
	}
	if IsFundamental(TypeInvalid) {
		t.Error("invalid must not be fundamental")
	}
	if Fundamental(Type(9999)) != TypeInvalid {
		t.Error("unknown type should reduce to invalid")
	}
}

func TestRegisterDerived(t *testing.T) {
	event := RegisterType("TestMidiEvent", TypeBoxed)
	if event < FirstDerived {
		t.Fatalf("derived id %d below FirstDerived", event)
	}
	if RegisterType("TestMidiEvent", TypeBoxed) != event {
		t.Error("re-registration must return the same id")
	}
	sub := RegisterType("TestMidiNoteEvent", event)
	if Fundamental(sub) != TypeBoxed {
		t.Errorf("Fundamental(sub) = %s", TypeName(Fundamental(sub)))
	}
	if !IsA(sub, event) || !IsA(sub, TypeBoxed) || IsA(sub, TypeObject) {
		t.Error("IsA chain broken")
	}
	if Parent(sub) != event || Parent(TypeBoxed) != TypeInvalid {
		t.Error("Parent broken")
	}
	if TypeName(sub) != "TestMidiNoteEvent" {
		t.Errorf("TypeName = %q", TypeName(sub))
	}
	expectPanic(t, "parent mismatch", func() { RegisterType("TestMidiEvent", TypeObject) })
	expectPanic(t, "invalid parent", func() { RegisterType("TestOrphan", Type(12345)) })
	expectPanic(t, "empty name", func() { RegisterType("", TypeEnum) })
}

func TestRegisterConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	ids := make([]Type, 16)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = RegisterType("TestConcurrentFlags", TypeFlags)
		}(i)
	}
	wg.Wait()
	for _, id := range ids {
		if id != ids[0] {
			t.Fatalf("concurrent registration produced different ids: %v", ids)
		}
	}
}

func TestScalarValues(t *testing.T) {
	if !NewBool(true).Bool() || NewBool(false).Bool() {
		t.Error("bool")
	}
	if NewChar(-3).Int64() != -3 || NewUChar(250).Uint64() != 250 {
		t.Error("char")
	}
	if NewInt(-2134567).Int64() != -2134567 {
		t.Error("int")
	}
	if NewUInt(0xffffffff).Uint64() != 0xffffffff {
		t.Error("uint")
	}
	if NewInt64(-2598768763298128732).Int64() != -2598768763298128732 {
		t.Error("int64")
	}
	if NewDouble(-426.9112e-267).Float64() != -426.9112e-267 {
		t.Error("double")
	}
	if NewFloat(1.5).Float64() != 1.5 {
		t.Error("float")
	}
	if NewLong(-7).Fundamental() != TypeLong || NewULong(7).Fundamental() != TypeULong {
		t.Error("long types")
	}
	if Invalid.IsValid() || Invalid.String() != "<invalid>" {
		t.Error("zero value must be invalid")
	}
}

func TestEnumFlagsAndPointers(t *testing.T) {
	yesNo := RegisterType("TestYesNo", TypeEnum)
	e := NewEnum(yesNo, 2)
	if e.Type() != yesNo || e.Fundamental() != TypeEnum || e.Int64() != 2 {
		t.Errorf("enum value %v", e)
	}
	expectPanic(t, "enum of flags type", func() { NewEnum(TypeFlags, 1) })
	expectPanic(t, "object of boxed type", func() { NewObject(TypeBoxed, nil) })

	var cell uint64
	p := unsafe.Pointer(&cell)
	for _, v := range []Value{NewString(p), NewParam(p), NewPointer(p), NewBoxed(TypeBoxed, p), NewObject(TypeObject, p)} {
		if !v.IsPointerLike() || v.Pointer() != p || !v.Bool() {
			t.Errorf("pointer-like value %v broken", v)
		}
	}
	if NewInt(1).IsPointerLike() {
		t.Error("int is not pointer-like")
	}
}
