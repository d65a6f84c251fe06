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
//go:build cgo && (linux || darwin)

package main

import (
	"strings"
	"testing"
)

func TestSelftestCommand(t *testing.T) {
	out, err := run(t, "selftest")
	if err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	if !strings.HasSuffix(out, " shapes, 0 failed\n") {
		t.Errorf("selftest: %q", out)
	}
	out, err = run(t, "table")
	if err != nil || !strings.Contains(out, "table complete") {
		t.Errorf("table: %q %v", out, err)
	}
}

func TestCallLibc(t *testing.T) {
	defer unloadLibraries()
	// strcpy(dst, src) is fn(ctx, data) without regular arguments
	out, err := run(t, `call strcpy ctx=buf:16 data=str:"hi there"`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `buf 0: "hi there"`) {
		t.Errorf("call: %q", out)
	}
	if _, err := run(t, "call vmarshal_no_such_symbol"); err == nil {
		t.Error("unknown symbol accepted")
	}
	if _, err := run(t, "call strcpy float:1"); err == nil {
		t.Error("float argument accepted")
	}
}
