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
package probe

import "testing"

func TestShapes(t *testing.T) {
	all := Shapes()
	want := 0
	for n, p := 0, 1; n <= MaxArgs; n, p = n+1, p*3 {
		want += p
	}
	if len(all) != want {
		t.Fatalf("%d shapes, want %d", len(all), want)
	}
	if all[0] != "" || all[1] != "W" || all[len(all)-1] != "DDDDD" {
		t.Errorf("unexpected order: %q %q .. %q", all[0], all[1], all[len(all)-1])
	}
	seen := map[string]bool{}
	for _, s := range all {
		if seen[s] {
			t.Errorf("duplicate shape %q", s)
		}
		seen[s] = true
	}
}

func TestRecordEmpty(t *testing.T) {
	r := NewRecord()
	if r.Calls() != 0 || len(r.Args()) != 0 {
		t.Error("fresh record is not empty")
	}
	if _, ok := r.Shape(); ok {
		t.Error("fresh record reports a shape")
	}
	r.w[wShape] = 3
	r.w[wNargs] = 1
	r.w[wArgs] = 99
	if s, ok := r.Shape(); !ok || s != "L" {
		t.Errorf("Shape() = %q %v", s, ok)
	}
	if a := r.Args(); len(a) != 1 || a[0] != 99 {
		t.Errorf("Args() = %v", a)
	}
	r.Reset()
	if r.w != ([recordWords]uint64{}) {
		t.Error("Reset left data behind")
	}
}

func TestFunc(t *testing.T) {
	if Func("X") != nil {
		t.Error("unknown shape has a probe")
	}
	if Available() && Func("WDW") == nil {
		t.Error("missing probe for WDW")
	}
	if !Available() && Func("W") != nil {
		t.Error("probe without cgo")
	}
}
