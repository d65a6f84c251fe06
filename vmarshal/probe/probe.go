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

// Package probe provides native callees for every trampoline shape. Each
// probe writes what it received into the Record passed as its context
// pointer, so a caller can check that values arrive bit-exact.
package probe

import "unsafe"

// record layout, shared with the C side in probes_gen.go
const (
	wCalls = iota
	wCtx
	wData
	wShape // index into shapes + 1, 0 = never called
	wNargs
	wSeq
	wArgs
	recordWords = wArgs + MaxArgs
)

// Record receives the arguments of a probe call. It contains no Go pointers,
// so it may be handed to native code as context pointer for the duration of
// a call.
type Record struct {
	w [recordWords]uint64
}

func NewRecord() *Record {
	return new(Record)
}

// Ptr is the context pointer to pass to Dispatch.
func (r *Record) Ptr() unsafe.Pointer {
	return unsafe.Pointer(&r.w[0])
}

func (r *Record) Calls() uint64 { return r.w[wCalls] }

// Seq is the global call sequence number of the last call; it orders calls
// across records.
func (r *Record) Seq() uint64 { return r.w[wSeq] }

func (r *Record) Ctx() uintptr { return uintptr(r.w[wCtx]) }

func (r *Record) Data() uintptr { return uintptr(r.w[wData]) }

// Shape returns the shape of the probe called last.
func (r *Record) Shape() (string, bool) {
	idx := r.w[wShape]
	if idx == 0 || idx > uint64(len(shapes)) {
		return "", false
	}
	return shapes[idx-1], true
}

// Args returns the raw bits of the received arguments; Word32 arguments are
// zero extended, doubles are IEEE-754 bits.
func (r *Record) Args() []uint64 {
	n := r.w[wNargs]
	if n > MaxArgs {
		n = MaxArgs
	}
	return append([]uint64(nil), r.w[wArgs:wArgs+n]...)
}

func (r *Record) Reset() {
	r.w = [recordWords]uint64{}
}

var shapeIndex = func() map[string]int {
	m := make(map[string]int, len(shapes))
	for i, s := range shapes {
		m[s] = i
	}
	return m
}()

// Available reports whether native probes were compiled in (cgo builds).
func Available() bool { return haveProbes }

// Func returns the probe callee for a shape like "WDW" or nil.
func Func(shape string) unsafe.Pointer {
	i, ok := shapeIndex[shape]
	if !ok || !haveProbes {
		return nil
	}
	return probeFunc(i)
}

// Shapes lists every shape a probe exists for.
func Shapes() []string {
	return append([]string(nil), shapes...)
}
