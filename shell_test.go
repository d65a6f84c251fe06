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
package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/launix-de/vmarshal/value"
	"github.com/launix-de/vmarshal/vmarshal"
)

func TestSplitArgs(t *testing.T) {
	cases := map[string][]string{
		"call f int:1":                {"call", "f", "int:1"},
		"  sig   WDW  ":               {"sig", "WDW"},
		`call puts str:"hello world"`: {"call", "puts", "str:hello world"},
		`call f str:a\"b str:""`:      {"call", "f", `str:a"b`, "str:"},
		"":                            nil,
	}
	for line, want := range cases {
		got, err := splitArgs(line)
		if err != nil {
			t.Errorf("%q: %v", line, err)
			continue
		}
		if strings.Join(got, "|") != strings.Join(want, "|") || len(got) != len(want) {
			t.Errorf("%q = %q, want %q", line, got, want)
		}
	}
	if _, err := splitArgs(`call "open`); err == nil {
		t.Error("unterminated quote accepted")
	}
}

func TestParseArg(t *testing.T) {
	var s callState
	cases := []struct {
		arg  string
		typ  value.Type
		bits uint64
	}{
		{"bool:true", value.TypeBoolean, 1},
		{"char:-1", value.TypeChar, math.MaxUint64},
		{"uchar:0xff", value.TypeUChar, 255},
		{"int:-2", value.TypeInt, uint64(math.MaxUint64 - 1)},
		{"uint:42", value.TypeUInt, 42},
		{"long:7", value.TypeLong, 7},
		{"uint64:0x0123456789abcdef", value.TypeUInt64, 0x0123456789abcdef},
		{"enum:3", value.TypeEnum, 3},
		{"flags:0x80000000", value.TypeFlags, 0x80000000},
		{"double:3.25", value.TypeDouble, math.Float64bits(3.25)},
	}
	for _, c := range cases {
		v, err := parseArg(c.arg, &s)
		if err != nil {
			t.Errorf("%s: %v", c.arg, err)
			continue
		}
		if v.Type() != c.typ || v.Bits() != c.bits {
			t.Errorf("%s = %s %#x", c.arg, value.TypeName(v.Type()), v.Bits())
		}
	}
	v, err := parseArg("ptr:0x1000", &s)
	if err != nil || !v.IsPointerLike() || uintptr(v.Pointer()) != 0x1000 {
		t.Errorf("ptr: %v %v", v, err)
	}
	for _, bad := range []string{"42", "int:x", "int:0x100000000", "uchar:256", "nope:1", "bool:maybe"} {
		if _, err := parseArg(bad, &s); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
	if len(s.allocs) != 0 {
		t.Error("scalar arguments must not allocate")
	}
}

func run(t *testing.T, line string) (string, error) {
	t.Helper()
	var b bytes.Buffer
	err := runLine(&b, line)
	return b.String(), err
}

func TestSigAndDecode(t *testing.T) {
	out, err := run(t, "sig WD")
	want := vmarshal.Encode([]vmarshal.Kind{vmarshal.Word32, vmarshal.Float64}, vmarshal.PointerKind)
	if err != nil || !strings.HasPrefix(out, want.String()+" = ") {
		t.Errorf("sig WD: %q %v", out, err)
	}
	out, err = run(t, "decode 0b011110")
	if err != nil || !strings.HasPrefix(out, "WD+L: (word32, float64) + word64") {
		t.Errorf("decode: %q %v", out, err)
	}
	if _, err := run(t, "decode 0x4"); err == nil {
		t.Error("decoded an invalid signature")
	}
	if _, err := run(t, "sig WXW"); err == nil {
		t.Error("encoded an invalid shape")
	}
}

func TestCommands(t *testing.T) {
	if _, err := run(t, "exit"); err != errExit {
		t.Errorf("exit returned %v", err)
	}
	if _, err := run(t, "frobnicate"); err == nil {
		t.Error("unknown command accepted")
	}
	if _, err := run(t, "sig"); err == nil || !strings.HasPrefix(err.Error(), "usage:") {
		t.Errorf("missing argument: %v", err)
	}
	out, err := run(t, "help")
	if err != nil || !strings.Contains(out, "selftest") {
		t.Errorf("help: %q %v", out, err)
	}
	out, err = run(t, "types")
	if err != nil || !strings.Contains(out, "double") {
		t.Errorf("types: %q %v", out, err)
	}
	if out, err := run(t, "set"); err != nil || !strings.Contains(out, "TracePrint = ") {
		t.Errorf("set: %q %v", out, err)
	}
	if _, err := run(t, "set Colour red"); err == nil {
		t.Error("unknown setting accepted")
	}
	if out, err := run(t, ""); err != nil || out != "" {
		t.Error("empty line must be a no-op")
	}
}
