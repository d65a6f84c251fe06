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
package signal

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/launix-de/vmarshal/value"
	"github.com/launix-de/vmarshal/vmarshal"
)

func TestDeclare(t *testing.T) {
	r := NewRegistry()
	if err := r.Declare("changed", value.TypeInt, value.TypeDouble); err != nil {
		t.Fatal(err)
	}
	if err := r.Declare("changed", value.TypeInt, value.TypeDouble); err != nil {
		t.Errorf("identical redeclaration: %v", err)
	}
	if err := r.Declare("changed", value.TypeInt); !errors.Is(err, ErrRedeclared) {
		t.Errorf("conflicting redeclaration: %v", err)
	}
	six := make([]value.Type, vmarshal.MaxArgs+1)
	for i := range six {
		six[i] = value.TypeInt
	}
	if err := r.Declare("wide", six...); !errors.Is(err, vmarshal.ErrTooManyArgs) {
		t.Errorf("too many params: %v", err)
	}
	if err := r.Declare("floaty", value.TypeFloat); !errors.Is(err, vmarshal.ErrUnclassifiable) {
		t.Errorf("float param: %v", err)
	}
	d, ok := r.Lookup("changed")
	if !ok || d.String() != "changed(int, double)" {
		t.Errorf("Lookup = %v %v", d, ok)
	}
	if _, ok := r.Lookup("wide"); ok {
		t.Error("failed declaration was stored")
	}
	if n := len(r.Declarations()); n != 1 {
		t.Errorf("%d declarations", n)
	}
}

func TestEmitValidation(t *testing.T) {
	r := NewRegistry()
	color := value.RegisterType("TestSignalColor", value.TypeEnum)
	r.Declare("painted", color, value.TypeInt)
	var x uint64
	inst := value.NewPointer(unsafe.Pointer(&x))

	if err := r.Emit(inst, "missing"); !errors.Is(err, ErrUnknownSignal) {
		t.Errorf("unknown: %v", err)
	}
	if err := r.Emit(inst, "painted", value.NewEnum(color, 1)); !errors.Is(err, ErrArgCount) {
		t.Errorf("count: %v", err)
	}
	if err := r.Emit(inst, "painted", value.NewInt(1), value.NewInt(2)); !errors.Is(err, ErrArgType) {
		t.Errorf("type: %v", err)
	}
	if err := r.Emit(value.NewInt(1), "painted", value.NewEnum(color, 1), value.NewInt(2)); !errors.Is(err, ErrArgType) {
		t.Errorf("scalar instance: %v", err)
	}
	// no handlers connected: valid emission is a no-op
	if err := r.Emit(inst, "painted", value.NewEnum(color, 1), value.NewInt(2)); err != nil {
		t.Error(err)
	}
}

func TestConnectBookkeeping(t *testing.T) {
	r := NewRegistry()
	r.Declare("clicked")
	var a, b uint64
	fn := unsafe.Pointer(&a) // never called here
	if _, err := r.Connect(unsafe.Pointer(&a), "nope", Closure{Callback: fn}); !errors.Is(err, ErrUnknownSignal) {
		t.Errorf("connect unknown: %v", err)
	}
	if _, err := r.Connect(unsafe.Pointer(&a), "clicked", Closure{}); !errors.Is(err, vmarshal.ErrNilFunction) {
		t.Errorf("connect nil: %v", err)
	}
	id1, _ := r.Connect(unsafe.Pointer(&a), "clicked", Closure{Callback: fn})
	id2, _ := r.Connect(unsafe.Pointer(&a), "clicked", Closure{Callback: fn})
	r.Connect(unsafe.Pointer(&b), "clicked", Closure{Callback: fn})
	if id1 == id2 {
		t.Error("handler ids must be unique")
	}
	if n := r.HandlerCount(unsafe.Pointer(&a), "clicked"); n != 2 {
		t.Errorf("a has %d handlers", n)
	}
	if !r.Block(id1) || !r.Block(id1) || !r.Unblock(id1) || !r.Unblock(id1) || r.Unblock(id1) {
		t.Error("nested block accounting broken")
	}
	if !r.Disconnect(id1) || r.Disconnect(id1) {
		t.Error("disconnect must succeed exactly once")
	}
	if r.Block(id1) {
		t.Error("blocked a disconnected handler")
	}
	if n := r.HandlerCount(unsafe.Pointer(&a), "clicked"); n != 1 {
		t.Errorf("a has %d handlers after disconnect", n)
	}
	if n := r.HandlerCount(unsafe.Pointer(&b), "clicked"); n != 1 {
		t.Errorf("b has %d handlers", n)
	}
}

func TestMarshalRejects(t *testing.T) {
	c := &Closure{}
	for name, params := range map[string][]value.Value{
		"empty":    nil,
		"scalar":   {value.NewInt(1)},
		"too many": make([]value.Value, vmarshal.MaxArgs+2),
	} {
		func() {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, ErrBadParams) {
					t.Errorf("%s: expected ErrBadParams, got %v", name, err)
				}
			}()
			Marshal(c, params)
		}()
	}
}
