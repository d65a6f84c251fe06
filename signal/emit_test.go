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
//go:build cgo

package signal

import (
	"math"
	"testing"

	"github.com/launix-de/vmarshal/value"
	"github.com/launix-de/vmarshal/vmarshal/probe"
)

func TestMarshalPlain(t *testing.T) {
	inst, data := probe.NewRecord(), probe.NewRecord()
	c := &Closure{Callback: probe.Func("WD"), Data: data.Ptr()}
	Marshal(c, []value.Value{value.NewObject(value.TypeObject, inst.Ptr()), value.NewInt(5), value.NewDouble(0.5)})
	if inst.Calls() != 1 || data.Calls() != 0 {
		t.Fatalf("calls: instance %d, data %d", inst.Calls(), data.Calls())
	}
	if inst.Ctx() != uintptr(inst.Ptr()) || inst.Data() != uintptr(data.Ptr()) {
		t.Error("instance must come first, data last")
	}
	if a := inst.Args(); len(a) != 2 || a[0] != 5 || a[1] != math.Float64bits(0.5) {
		t.Errorf("args = %#x", a)
	}
}

func TestMarshalSwap(t *testing.T) {
	inst, data := probe.NewRecord(), probe.NewRecord()
	c := &Closure{Callback: probe.Func("W"), Data: data.Ptr(), Swap: true}
	Marshal(c, []value.Value{value.NewPointer(inst.Ptr()), value.NewUInt(77)})
	if data.Calls() != 1 || inst.Calls() != 0 {
		t.Fatalf("calls: instance %d, data %d", inst.Calls(), data.Calls())
	}
	if data.Ctx() != uintptr(data.Ptr()) || data.Data() != uintptr(inst.Ptr()) {
		t.Error("swap must exchange instance and data")
	}
	if a := data.Args(); len(a) != 1 || a[0] != 77 {
		t.Errorf("args = %v", a)
	}
}

func TestEmitOrderAndBlock(t *testing.T) {
	r := NewRegistry()
	if err := r.Declare("moved", value.TypeInt); err != nil {
		t.Fatal(err)
	}
	inst := probe.NewRecord()
	other := probe.NewRecord()
	// swapped closures let every handler record into its own data record
	recs := []*probe.Record{probe.NewRecord(), probe.NewRecord(), probe.NewRecord()}
	var ids []HandlerID
	for _, rec := range recs {
		id, err := r.Connect(inst.Ptr(), "moved", Closure{probe.Func("W"), rec.Ptr(), true})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	r.Connect(other.Ptr(), "moved", Closure{probe.Func("W"), other.Ptr(), false})

	self := value.NewPointer(inst.Ptr())
	if err := r.Emit(self, "moved", value.NewInt(3)); err != nil {
		t.Fatal(err)
	}
	for i, rec := range recs {
		if rec.Calls() != 1 {
			t.Errorf("handler %d ran %d times", i, rec.Calls())
		}
		if i > 0 && rec.Seq() <= recs[i-1].Seq() {
			t.Errorf("handler %d ran before handler %d", i, i-1)
		}
	}
	if other.Calls() != 0 {
		t.Error("emission leaked to another instance")
	}

	r.Block(ids[1])
	if err := r.Emit(self, "moved", value.NewInt(4)); err != nil {
		t.Fatal(err)
	}
	if recs[0].Calls() != 2 || recs[1].Calls() != 1 || recs[2].Calls() != 2 {
		t.Errorf("blocked handler ran: %d %d %d", recs[0].Calls(), recs[1].Calls(), recs[2].Calls())
	}
	r.Unblock(ids[1])
	r.Disconnect(ids[0])
	r.Emit(self, "moved", value.NewInt(5))
	if recs[0].Calls() != 2 || recs[1].Calls() != 2 || recs[2].Calls() != 3 {
		t.Errorf("after unblock/disconnect: %d %d %d", recs[0].Calls(), recs[1].Calls(), recs[2].Calls())
	}
	if a := recs[2].Args(); len(a) != 1 || a[0] != 5 {
		t.Errorf("last args = %v", a)
	}
}

func TestDisconnectDuringEmission(t *testing.T) {
	r := NewRegistry()
	r.Declare("resized", value.TypeInt)
	inst := probe.NewRecord()
	recs := []*probe.Record{probe.NewRecord(), probe.NewRecord(), probe.NewRecord()}
	var ids []HandlerID
	for _, rec := range recs {
		id, _ := r.Connect(inst.Ptr(), "resized", Closure{probe.Func("W"), rec.Ptr(), true})
		ids = append(ids, id)
	}
	// the emission took its snapshot, then a handler went away before its turn
	snapshot := r.collect(uintptr(inst.Ptr()), "resized")
	r.Disconnect(ids[1])
	late, _ := r.Connect(inst.Ptr(), "resized", Closure{probe.Func("W"), inst.Ptr(), true})
	r.invoke(snapshot, []value.Value{value.NewPointer(inst.Ptr()), value.NewInt(8)})

	if recs[0].Calls() != 1 || recs[2].Calls() != 1 {
		t.Errorf("connected handlers ran %d and %d times", recs[0].Calls(), recs[2].Calls())
	}
	if recs[1].Calls() != 0 {
		t.Error("disconnected handler was called")
	}
	if inst.Calls() != 0 {
		t.Error("handler connected after the snapshot was called")
	}
	r.Disconnect(late)
}
