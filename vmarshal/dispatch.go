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

import "errors"
import "fmt"
import "unsafe"
import "github.com/launix-de/vmarshal/value"

// All dispatch failures are programming or build errors. They are raised as
// panics carrying one of these errors so that a recovering caller can use
// errors.Is.
var (
	ErrTooManyArgs    = errors.New("vmarshal: too many arguments")
	ErrInvalidKind    = errors.New("vmarshal: invalid kind")
	ErrUnclassifiable = errors.New("vmarshal: unclassifiable value")
	ErrNoTrampoline   = errors.New("vmarshal: no trampoline for signature")
	ErrNilFunction    = errors.New("vmarshal: nil function pointer")
)

// Dispatch calls the native function fn as
//
//	void fn(void *ctx, T0 values[0], ..., Tn-1 values[n-1], void *data)
//
// where each Ti is the native type of the classified value. It panics when
// more than MaxArgs values are given, when a value cannot be classified or
// when the resulting signature has no trampoline.
func Dispatch(fn, ctx unsafe.Pointer, values []value.Value, data unsafe.Pointer) {
	if len(values) > MaxArgs {
		panic(fmt.Errorf("%w: %d values, at most %d", ErrTooManyArgs, len(values), MaxArgs))
	}
	var kinds [MaxArgs]Kind
	var raw [MaxArgs]uint64
	for i, v := range values {
		kinds[i], raw[i] = Classify(v)
	}
	call(fn, ctx, Encode(kinds[:len(values)], PointerKind), &raw, data)
}

// DispatchRaw is Dispatch for arguments that are already classified.
func DispatchRaw(fn, ctx unsafe.Pointer, kinds []Kind, raw []uint64, data unsafe.Pointer) {
	if len(kinds) > MaxArgs {
		panic(fmt.Errorf("%w: %d arguments, at most %d", ErrTooManyArgs, len(kinds), MaxArgs))
	}
	if len(raw) != len(kinds) {
		panic(fmt.Sprintf("vmarshal: %d kinds but %d raw values", len(kinds), len(raw)))
	}
	var buf [MaxArgs]uint64
	copy(buf[:], raw)
	call(fn, ctx, Encode(kinds, PointerKind), &buf, data)
}

func call(fn, ctx unsafe.Pointer, sig Signature, raw *[MaxArgs]uint64, data unsafe.Pointer) {
	if fn == nil {
		panic(ErrNilFunction)
	}
	tramp, ok := Lookup(sig)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrNoTrampoline, sig))
	}
	if tr := trace.Load(); tr != nil {
		tr.Duration(sig.String(), "vmarshal", func() { tramp(fn, ctx, raw, data) })
		return
	}
	tramp(fn, ctx, raw, data)
}
