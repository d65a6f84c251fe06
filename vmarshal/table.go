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
import "sync"
import "strings"
import "unsafe"

// Trampoline performs the native call for exactly one Signature: it casts fn
// to void (*)(void *ctx, T0, ..., Tn-1, void *data) and passes raw[0..n-1]
// reinterpreted as the native type of each argument kind.
type Trampoline func(fn, ctx unsafe.Pointer, raw *[MaxArgs]uint64, data unsafe.Pointer)

// shapeEntry is one generated table row, see trampolines_gen.go
type shapeEntry struct {
	shape string
	call  Trampoline
}

// the table is written exactly once inside tableOnce and read-only afterwards
var (
	table     [tableSize]Trampoline
	tableOnce sync.Once
	tableLen  int
)

// Init builds the dispatch table. It is safe to call any number of times;
// call it before starting goroutines that dispatch.
func Init() {
	tableOnce.Do(buildTable)
}

func buildTable() {
	for _, e := range generatedShapes {
		kinds, err := ParseShape(e.shape)
		if err != nil {
			panic("vmarshal: generated table is broken: " + err.Error())
		}
		sig := Encode(kinds, PointerKind)
		if table[sig] != nil {
			panic("vmarshal: duplicate trampoline for " + sig.String())
		}
		table[sig] = e.call
		tableLen++
	}
}

// Lookup returns the trampoline registered for sig.
func Lookup(sig Signature) (Trampoline, bool) {
	Init()
	if sig >= tableSize {
		return nil, false
	}
	t := table[sig]
	return t, t != nil
}

// TableSize returns the number of realized signatures.
func TableSize() int {
	Init()
	return tableLen
}

// Signatures lists all realized signatures in ascending order.
func Signatures() []Signature {
	Init()
	result := make([]Signature, 0, tableLen)
	for sig := range table {
		if table[sig] != nil {
			result = append(result, Signature(sig))
		}
	}
	return result
}

// VerifyTable checks that every kind sequence up to MaxArgs has a
// trampoline for the host pointer kind.
func VerifyTable() error {
	Init()
	var missing []string
	forEachShape(func(kinds []Kind) {
		if table[Encode(kinds, PointerKind)] == nil {
			missing = append(missing, ShapeOf(kinds)+"+"+string(PointerKind.Letter()))
		}
	})
	if len(missing) == 0 {
		return nil
	}
	if len(missing) > 8 {
		missing = append(missing[:8], fmt.Sprintf("... (%d more)", len(missing)-8))
	}
	return fmt.Errorf("%w: %s", ErrNoTrampoline, strings.Join(missing, ", "))
}
