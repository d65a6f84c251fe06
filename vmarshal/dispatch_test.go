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

package vmarshal_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/launix-de/vmarshal/value"
	"github.com/launix-de/vmarshal/vmarshal"
	"github.com/launix-de/vmarshal/vmarshal/probe"
)

func expectPanic(t *testing.T, name string, want error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if r == nil || !ok || !errors.Is(err, want) {
			t.Errorf("%s: expected panic with %v, got %v", name, want, r)
		}
	}()
	f()
}

func checkRecord(t *testing.T, name string, r *probe.Record, shape string, data *probe.Record, args ...uint64) {
	t.Helper()
	if r.Calls() != 1 {
		t.Errorf("%s: callee ran %d times", name, r.Calls())
	}
	if got, _ := r.Shape(); got != shape {
		t.Errorf("%s: reached probe %q, want %q", name, got, shape)
	}
	if r.Ctx() != uintptr(r.Ptr()) {
		t.Errorf("%s: ctx arrived as %#x", name, r.Ctx())
	}
	want := uintptr(0)
	if data != nil {
		want = uintptr(data.Ptr())
	}
	if r.Data() != want {
		t.Errorf("%s: data arrived as %#x, want %#x", name, r.Data(), want)
	}
	got := r.Args()
	if len(got) != len(args) {
		t.Fatalf("%s: %d args arrived, want %d", name, len(got), len(args))
	}
	for i := range args {
		if got[i] != args[i] {
			t.Errorf("%s: arg %d = %#x, want %#x", name, i, got[i], args[i])
		}
	}
}

func TestDispatchSingleWord(t *testing.T) {
	r, d := probe.NewRecord(), probe.NewRecord()
	vmarshal.Dispatch(probe.Func("W"), r.Ptr(), []value.Value{value.NewInt(42)}, d.Ptr())
	checkRecord(t, "W", r, "W", d, 42)
}

func TestDispatchMixed(t *testing.T) {
	r, d := probe.NewRecord(), probe.NewRecord()
	values := []value.Value{value.NewInt(7), value.NewDouble(3.25), value.NewUInt(9)}
	vmarshal.Dispatch(probe.Func("WDW"), r.Ptr(), values, d.Ptr())
	checkRecord(t, "WDW", r, "WDW", d, 7, math.Float64bits(3.25), 9)
}

func TestDispatchEmptyAndNilData(t *testing.T) {
	r := probe.NewRecord()
	vmarshal.Dispatch(probe.Func(""), r.Ptr(), nil, nil)
	checkRecord(t, "empty", r, "", nil)
}

func TestDispatchPointers(t *testing.T) {
	r, d, target := probe.NewRecord(), probe.NewRecord(), probe.NewRecord()
	shape := strings.Repeat(string(vmarshal.PointerKind.Letter()), 2)
	values := []value.Value{value.NewPointer(target.Ptr()), value.NewString(nil)}
	vmarshal.Dispatch(probe.Func(shape), r.Ptr(), values, d.Ptr())
	checkRecord(t, "pointers", r, shape, d, uint64(uintptr(target.Ptr())), 0)
}

func TestDispatchWidths(t *testing.T) {
	r := probe.NewRecord()
	values := []value.Value{
		value.NewInt(-1),
		value.NewInt64(-1),
		value.NewDouble(math.Inf(-1)),
		value.NewBool(true),
		value.NewUInt64(0x0123456789abcdef),
	}
	vmarshal.Dispatch(probe.Func("WLDWL"), r.Ptr(), values, nil)
	checkRecord(t, "widths", r, "WLDWL", nil,
		0xffffffff, math.MaxUint64, math.Float64bits(math.Inf(-1)), 1, 0x0123456789abcdef)
}

func TestDispatchRejects(t *testing.T) {
	r := probe.NewRecord()
	six := make([]value.Value, vmarshal.MaxArgs+1)
	for i := range six {
		six[i] = value.NewInt(int32(i))
	}
	expectPanic(t, "too many", vmarshal.ErrTooManyArgs, func() {
		vmarshal.Dispatch(probe.Func("W"), r.Ptr(), six, nil)
	})
	expectPanic(t, "float", vmarshal.ErrUnclassifiable, func() {
		vmarshal.Dispatch(probe.Func("W"), r.Ptr(), []value.Value{value.NewFloat(1)}, nil)
	})
	expectPanic(t, "invalid", vmarshal.ErrUnclassifiable, func() {
		vmarshal.Dispatch(probe.Func("W"), r.Ptr(), []value.Value{value.Invalid}, nil)
	})
	expectPanic(t, "nil fn", vmarshal.ErrNilFunction, func() {
		vmarshal.Dispatch(nil, r.Ptr(), nil, nil)
	})
	if r.Calls() != 0 {
		t.Errorf("rejected dispatch reached the callee %d times", r.Calls())
	}
}

func TestVerifyTable(t *testing.T) {
	if err := vmarshal.VerifyTable(); err != nil {
		t.Fatal(err)
	}
	if vmarshal.TableSize() != len(probe.Shapes()) {
		t.Errorf("table has %d entries, probes cover %d shapes", vmarshal.TableSize(), len(probe.Shapes()))
	}
	if len(vmarshal.Signatures()) != vmarshal.TableSize() {
		t.Error("Signatures() disagrees with TableSize()")
	}
}

// rawFor builds distinct argument bits for every position of a shape.
func rawFor(kinds []vmarshal.Kind, salt uint64) []uint64 {
	raw := make([]uint64, len(kinds))
	for i, k := range kinds {
		switch k {
		case vmarshal.Word32:
			raw[i] = 0x80000000 | salt<<8 | uint64(i)
		case vmarshal.Word64:
			raw[i] = 0xfedc000000000000 | salt<<8 | uint64(i)
		case vmarshal.Float64:
			raw[i] = math.Float64bits(float64(salt) + float64(i)/8)
		}
	}
	return raw
}

func TestDispatchAllShapes(t *testing.T) {
	d := probe.NewRecord()
	for n, shape := range probe.Shapes() {
		kinds, err := vmarshal.ParseShape(shape)
		if err != nil {
			t.Fatal(err)
		}
		r := probe.NewRecord()
		raw := rawFor(kinds, uint64(n))
		vmarshal.DispatchRaw(probe.Func(shape), r.Ptr(), kinds, raw, d.Ptr())
		checkRecord(t, shape, r, shape, d, raw...)
	}
}

func TestDispatchConcurrent(t *testing.T) {
	vmarshal.Init()
	shapes := probe.Shapes()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := g; i < len(shapes); i += 8 {
				kinds, _ := vmarshal.ParseShape(shapes[i])
				r := probe.NewRecord()
				raw := rawFor(kinds, uint64(g))
				vmarshal.DispatchRaw(probe.Func(shapes[i]), r.Ptr(), kinds, raw, nil)
				got := r.Args()
				for j := range raw {
					if got[j] != raw[j] {
						t.Errorf("%s: arg %d = %#x, want %#x", shapes[i], j, got[j], raw[j])
					}
				}
			}
		}(g)
	}
	wg.Wait()
}

type bufCloser struct {
	bytes.Buffer
	closed bool
	late   int // writes after Close
}

func (b *bufCloser) Write(p []byte) (int, error) {
	if b.closed {
		b.late++
	}
	return b.Buffer.Write(p)
}

func (b *bufCloser) Close() error {
	b.closed = true
	return nil
}

func TestDispatchTrace(t *testing.T) {
	buf := new(bufCloser)
	old := vmarshal.UseTrace(vmarshal.NewTrace(buf))
	r := probe.NewRecord()
	vmarshal.Dispatch(probe.Func("D"), r.Ptr(), []value.Value{value.NewDouble(1)}, unsafe.Pointer(nil))
	vmarshal.UseTrace(old).Close()
	if !buf.closed {
		t.Error("trace not closed")
	}
	out := buf.String()
	sig := vmarshal.Encode([]vmarshal.Kind{vmarshal.Float64}, vmarshal.PointerKind).String()
	if !strings.HasPrefix(out, "[") || !strings.HasSuffix(out, "]") || strings.Count(out, sig) != 2 {
		t.Errorf("unexpected trace %q", out)
	}
	checkRecord(t, "traced", r, "D", nil, math.Float64bits(1))
}

// dispatchWhile keeps n goroutines dispatching until f returns.
func dispatchWhile(n int, f func()) {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	for g := 0; g < n; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := probe.NewRecord()
			for {
				select {
				case <-stop:
					return
				default:
				}
				vmarshal.Dispatch(probe.Func("W"), r.Ptr(), []value.Value{value.NewInt(1)}, nil)
			}
		}()
	}
	f()
	close(stop)
	wg.Wait()
}

func TestTracePrintWhileDispatching(t *testing.T) {
	old := vmarshal.UseTrace(vmarshal.NewTrace(new(bufCloser)))
	defer func() { vmarshal.UseTrace(old) }()
	dispatchWhile(4, func() {
		for i := 0; i < 200; i++ {
			if err := vmarshal.ChangeSetting("TracePrint", "false"); err != nil {
				t.Fatal(err)
			}
		}
	})
	vmarshal.UseTrace(nil).Close()
}

func TestTraceCloseWhileDispatching(t *testing.T) {
	old := vmarshal.UseTrace(nil)
	defer func() { vmarshal.UseTrace(old) }()
	for round := 0; round < 200; round++ {
		buf := new(bufCloser)
		vmarshal.UseTrace(vmarshal.NewTrace(buf))
		dispatchWhile(4, func() {
			for i := 0; i < 10; i++ {
				vmarshal.Dispatch(probe.Func(""), probe.NewRecord().Ptr(), nil, nil)
			}
			vmarshal.UseTrace(nil).Close()
		})
		if buf.late != 0 {
			t.Fatalf("round %d: %d writes after Close", round, buf.late)
		}
		if !json.Valid(buf.Bytes()) {
			t.Fatalf("round %d: trace is no valid JSON: %q", round, buf.String())
		}
	}
}
