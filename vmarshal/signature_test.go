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
	"errors"
	"testing"
)

// expectPanicErr runs f and checks that it panics with an error wrapping want.
func expectPanicErr(t *testing.T, name string, want error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("%s: expected panic", name)
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Errorf("%s: expected %v, got %v", name, want, r)
		}
	}()
	f()
}

func TestEncodeLayout(t *testing.T) {
	// arg0 in the most significant field, trailing pointer in the lowest
	sig := Encode([]Kind{Word32, Float64}, Word64)
	if sig != 0b01_11_10 {
		t.Errorf("Encode(W,D + L) = %#b", sig)
	}
	if Encode(nil, Word64) != 0b10 || Encode(nil, Word32) != 0b01 {
		t.Error("empty sequence must only carry the trailing pointer")
	}
	sig = Encode([]Kind{Word32, Word32, Word32, Word32, Word32}, Word64)
	if sig != 0b01_01_01_01_01_10 {
		t.Errorf("five words = %#b", sig)
	}
	sig = Encode([]Kind{Float64, Word64, Word32}, Word32)
	if sig.String() != "DLW+W" {
		t.Errorf("String() = %q", sig.String())
	}
}

func TestEncodeInjective(t *testing.T) {
	for _, trailing := range []Kind{Word32, Word64} {
		seen := map[Signature]string{}
		forEachShape(func(kinds []Kind) {
			sig := Encode(kinds, trailing)
			shape := ShapeOf(kinds)
			if sig == SignatureInvalid {
				t.Errorf("%q encoded to the invalid sentinel", shape)
			}
			if sig >= tableSize {
				t.Errorf("%q = %#x exceeds table size", shape, sig)
			}
			if other, dup := seen[sig]; dup {
				t.Errorf("%q and %q collide at %#x", shape, other, sig)
			}
			seen[sig] = shape
		})
		if len(seen) != 364 && MaxArgs == 5 {
			t.Errorf("expected 364 distinct signatures, got %d", len(seen))
		}
	}
}

func TestDecodeRoundtrip(t *testing.T) {
	forEachShape(func(kinds []Kind) {
		sig := Encode(kinds, PointerKind)
		got, trailing, ok := Decode(sig)
		if !ok || trailing != PointerKind || ShapeOf(got) != ShapeOf(kinds) {
			t.Errorf("Decode(Encode(%q)) = %q, %v, %v", ShapeOf(kinds), ShapeOf(got), trailing, ok)
		}
		if Encode(got, trailing) != sig {
			t.Errorf("re-encode of %q differs", ShapeOf(kinds))
		}
		if sig.Arity() != len(kinds) || sig.Shape() != ShapeOf(kinds) {
			t.Errorf("Arity/Shape of %q broken", ShapeOf(kinds))
		}
	})
}

func TestDecodeRejects(t *testing.T) {
	for _, sig := range []Signature{
		SignatureInvalid,
		0b01_00,    // trailing field 0
		0b01_00_10, // zero argument field
		1 << (2 * (MaxArgs + 1)),
	} {
		if _, _, ok := Decode(sig); ok {
			t.Errorf("Decode(%#b) should fail", sig)
		}
		if sig.Arity() != -1 {
			t.Errorf("Arity(%#b) should be -1", sig)
		}
	}
}

func TestEncodeRejects(t *testing.T) {
	expectPanicErr(t, "too many", ErrTooManyArgs, func() {
		Encode(make([]Kind, MaxArgs+1), Word64)
	})
	expectPanicErr(t, "zero kind", ErrInvalidKind, func() {
		Encode([]Kind{Word32, KindInvalid}, Word64)
	})
	expectPanicErr(t, "zero trailing", ErrInvalidKind, func() {
		Encode([]Kind{Word32}, KindInvalid)
	})
	expectPanicErr(t, "kind 4", ErrInvalidKind, func() {
		Encode([]Kind{Kind(4)}, Word64)
	})
}

func TestParseShape(t *testing.T) {
	kinds, err := ParseShape("wLd")
	if err != nil || ShapeOf(kinds) != "WLD" {
		t.Errorf("ParseShape(wLd) = %v, %v", kinds, err)
	}
	if _, err := ParseShape("WXW"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("bad letter: %v", err)
	}
	if _, err := ParseShape("WWWWWW"); !errors.Is(err, ErrTooManyArgs) {
		t.Errorf("long shape: %v", err)
	}
	sig, err := EncodeShape("WDW")
	if err != nil || sig != Encode([]Kind{Word32, Float64, Word32}, PointerKind) {
		t.Errorf("EncodeShape = %v, %v", sig, err)
	}
}

func TestPointerKind(t *testing.T) {
	if PointerKind != Word32 && PointerKind != Word64 {
		t.Fatalf("PointerKind = %v", PointerKind)
	}
	if LongKind != Word32 && LongKind != Word64 {
		t.Fatalf("LongKind = %v", LongKind)
	}
	for _, k := range []Kind{Word32, Word64, Float64} {
		if KindFromLetter(k.Letter()) != k {
			t.Errorf("letter roundtrip of %v", k)
		}
	}
}
