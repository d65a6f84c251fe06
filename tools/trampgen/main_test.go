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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/imports"
)

func TestEnumerateShapes(t *testing.T) {
	all := enumerateShapes(5)
	if len(all) != 364 {
		t.Fatalf("%d shapes, want 364", len(all))
	}
	if all[0] != "" || all[1] != "W" || all[2] != "L" || all[3] != "D" || all[4] != "WW" {
		t.Errorf("unexpected order: %q", all[:5])
	}
	if len(enumerateShapes(1)) != 4 {
		t.Error("max 1 must give the empty shape plus W, L, D")
	}
}

func TestCheckMaxArgs(t *testing.T) {
	for _, n := range []int{1, 5, maxMaxArgs} {
		if err := checkMaxArgs(n); err != nil {
			t.Errorf("%d rejected: %v", n, err)
		}
	}
	for _, n := range []int{0, -1, maxMaxArgs + 1, 14} {
		if checkMaxArgs(n) == nil {
			t.Errorf("%d accepted", n)
		}
	}
}

func TestPrototype(t *testing.T) {
	if p := cPrototype(""); p != "void *, void *" {
		t.Errorf("empty prototype %q", p)
	}
	if p := cPrototype("WDL"); p != "void *, uint32_t, double, uint64_t, void *" {
		t.Errorf("WDL prototype %q", p)
	}
	if cSuffix("") != "v" || cSuffix("WD") != "WD" {
		t.Error("cSuffix")
	}
}

func TestGeneratedSourcesFormat(t *testing.T) {
	all := enumerateShapes(2)
	for name, src := range map[string][]byte{
		"shapes_gen.go":       genVmarshalShapes(2),
		"trampolines_gen.go":  genTrampolines(all),
		"probe_shapes_gen.go": genProbeShapes(all, 2),
		"probes_gen.go":       genProbes(all),
	} {
		if _, err := imports.Process(name, src, nil); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if !strings.HasPrefix(string(src), header) {
			t.Errorf("%s: missing generated header", name)
		}
	}
	tramp := string(genTrampolines(all))
	if !strings.Contains(tramp, "static void vmarshal_DW(void *fn, void *ctx, const uint64_t *raw, void *data)") {
		t.Error("missing DW trampoline")
	}
	if !strings.Contains(tramp, "vmarshal_f64(raw[0]), (uint32_t) raw[1]") {
		t.Error("DW trampoline loads its arguments wrong")
	}
}

// the checked in tables must cover every shape of the current arity
func TestCheckedInTables(t *testing.T) {
	root := filepath.Join("..", "..")
	tramp, err := os.ReadFile(filepath.Join(root, "vmarshal", "trampolines_gen.go"))
	if err != nil {
		t.Skip("module sources not available:", err)
	}
	probes, err := os.ReadFile(filepath.Join(root, "vmarshal", "probe", "probes_gen.go"))
	if err != nil {
		t.Fatal(err)
	}
	for _, shape := range enumerateShapes(5) {
		if !strings.Contains(string(tramp), "static void vmarshal_"+cSuffix(shape)+"(") {
			t.Errorf("trampoline for %q missing", shape)
		}
		if !strings.Contains(string(probes), "static void vprobe_"+cSuffix(shape)+"(") {
			t.Errorf("probe for %q missing", shape)
		}
	}
}
