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

// trampgen generates the native call trampolines of package vmarshal and the
// matching probe callees of package vmarshal/probe. One trampoline is emitted
// for every sequence of argument kinds up to -max-args.
//
// Usage:
//   go run ./tools/trampgen/                       # regenerate with MaxArgs=5
//   go run ./tools/trampgen/ -max-args=6 -out=.    # widen the table
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

// argKind mirrors vmarshal.Kind; the generator must not import the package it generates.
type argKind struct {
	letter byte
	ctype  string
	load   string // C expression reading raw[%d]
	record string // probe macro storing the argument
}

var argKinds = []argKind{
	{'W', "uint32_t", "(uint32_t) raw[%d]", "VPROBE_W"},
	{'L', "uint64_t", "raw[%d]", "VPROBE_L"},
	{'D', "double", "vmarshal_f64(raw[%d])", "VPROBE_D"},
}

func kindOf(letter byte) argKind {
	for _, k := range argKinds {
		if k.letter == letter {
			return k
		}
	}
	panic(fmt.Sprintf("trampgen: unknown kind letter %q", letter))
}

const header = "// Code generated by trampgen; DO NOT EDIT.\n\n"

func main() {
	maxArgs := flag.Int("max-args", 5, "largest number of regular arguments")
	outDir := flag.String("out", ".", "module root to write into")
	flag.Parse()
	if err := checkMaxArgs(*maxArgs); err != nil {
		fmt.Fprintf(os.Stderr, "trampgen: %v\n", err)
		os.Exit(1)
	}

	all := enumerateShapes(*maxArgs)
	files := map[string][]byte{
		"vmarshal/shapes_gen.go":       genVmarshalShapes(*maxArgs),
		"vmarshal/trampolines_gen.go":  genTrampolines(all),
		"vmarshal/probe/shapes_gen.go": genProbeShapes(all, *maxArgs),
		"vmarshal/probe/probes_gen.go": genProbes(all),
	}
	for name, src := range files {
		path := filepath.Join(*outDir, name)
		formatted, err := imports.Process(path, src, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "trampgen: %s: %v\n", name, err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, formatted, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "trampgen: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  %s: %d shapes\n", name, len(all))
	}
}

// enumerateShapes lists every kind sequence of length 0..max, shortest first,
// W < L < D within a length. The order is part of the generated output only;
// the runtime table is indexed by signature.
// maxMaxArgs bounds the generated code: the dispatch table is a dense array of
// 4^(n+1) slots and there are (3^(n+1)-1)/2 C trampolines. At 8 that is 2 MiB
// of table and 9841 functions.
const maxMaxArgs = 8

func checkMaxArgs(n int) error {
	if n < 1 || n > maxMaxArgs {
		return fmt.Errorf("-max-args must be within 1..%d, got %d", maxMaxArgs, n)
	}
	return nil
}

func enumerateShapes(max int) []string {
	result := []string{""}
	level := []string{""}
	for n := 1; n <= max; n++ {
		var next []string
		for _, prefix := range level {
			for _, k := range argKinds {
				next = append(next, prefix+string(k.letter))
			}
		}
		result = append(result, next...)
		level = next
	}
	return result
}

// cSuffix names the C functions of a shape; the empty shape is "v".
func cSuffix(shape string) string {
	if shape == "" {
		return "v"
	}
	return shape
}

// cPrototype returns the parameter list of the native callee.
func cPrototype(shape string) string {
	var b bytes.Buffer
	b.WriteString("void *")
	for i := 0; i < len(shape); i++ {
		b.WriteString(", ")
		b.WriteString(kindOf(shape[i]).ctype)
	}
	b.WriteString(", void *")
	return b.String()
}

func genVmarshalShapes(max int) []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("package vmarshal\n\n")
	b.WriteString("// MaxArgs is the largest number of regular arguments a trampoline accepts.\n")
	fmt.Fprintf(&b, "const MaxArgs = %d\n", max)
	return b.Bytes()
}

func genTrampolines(shapes []string) []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("//go:build cgo\n\n")
	b.WriteString("package vmarshal\n\n")
	b.WriteString("/*\n")
	b.WriteString("#include <stdint.h>\n")
	b.WriteString("#include <string.h>\n\n")
	b.WriteString("static inline double vmarshal_f64(uint64_t b) {\n")
	b.WriteString("\tdouble d;\n")
	b.WriteString("\tmemcpy(&d, &b, sizeof d);\n")
	b.WriteString("\treturn d;\n")
	b.WriteString("}\n")
	for _, shape := range shapes {
		fmt.Fprintf(&b, "\nstatic void vmarshal_%s(void *fn, void *ctx, const uint64_t *raw, void *data) {\n", cSuffix(shape))
		fmt.Fprintf(&b, "\t((void (*)(%s)) fn)(ctx", cPrototype(shape))
		for i := 0; i < len(shape); i++ {
			b.WriteString(", ")
			fmt.Fprintf(&b, kindOf(shape[i]).load, i)
		}
		b.WriteString(", data);\n}\n")
	}
	b.WriteString("*/\n")
	b.WriteString("import \"C\"\n\n")
	b.WriteString("import \"unsafe\"\n\n")
	b.WriteString("var generatedShapes = []shapeEntry{\n")
	for _, shape := range shapes {
		fmt.Fprintf(&b, "\t{%q, func(fn, ctx unsafe.Pointer, raw *[MaxArgs]uint64, data unsafe.Pointer) {\n", shape)
		fmt.Fprintf(&b, "\t\tC.vmarshal_%s(fn, ctx, (*C.uint64_t)(unsafe.Pointer(raw)), data)\n", cSuffix(shape))
		b.WriteString("\t}},\n")
	}
	b.WriteString("}\n")
	return b.Bytes()
}

func genProbeShapes(shapes []string, max int) []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("package probe\n\n")
	b.WriteString("// MaxArgs matches vmarshal.MaxArgs of the generated trampolines.\n")
	fmt.Fprintf(&b, "const MaxArgs = %d\n\n", max)
	b.WriteString("// shapes is indexed like the C table vprobe_funcs.\n")
	b.WriteString("var shapes = []string{\n")
	for _, shape := range shapes {
		fmt.Fprintf(&b, "\t%q,\n", shape)
	}
	b.WriteString("}\n")
	return b.Bytes()
}

func genProbes(shapes []string) []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("//go:build cgo\n\n")
	b.WriteString("package probe\n\n")
	b.WriteString("/*\n")
	b.WriteString("#include <stdint.h>\n")
	b.WriteString("#include <string.h>\n\n")
	b.WriteString("static uint64_t vprobe_seq;\n\n")
	b.WriteString("#define VPROBE_ENTER(shape, n) \\\n")
	b.WriteString("\tuint64_t *r = (uint64_t *) ctx; \\\n")
	b.WriteString("\tr[0]++; \\\n")
	b.WriteString("\tr[1] = (uint64_t) (uintptr_t) ctx; \\\n")
	b.WriteString("\tr[2] = (uint64_t) (uintptr_t) data; \\\n")
	b.WriteString("\tr[3] = (shape); \\\n")
	b.WriteString("\tr[4] = (n); \\\n")
	b.WriteString("\tr[5] = __atomic_add_fetch(&vprobe_seq, 1, __ATOMIC_SEQ_CST)\n")
	b.WriteString("#define VPROBE_W(i, x) r[6 + (i)] = (x)\n")
	b.WriteString("#define VPROBE_L(i, x) r[6 + (i)] = (x)\n")
	b.WriteString("#define VPROBE_D(i, x) memcpy(&r[6 + (i)], &(x), sizeof(double))\n")
	for idx, shape := range shapes {
		fmt.Fprintf(&b, "\nstatic void vprobe_%s(void *ctx", cSuffix(shape))
		for i := 0; i < len(shape); i++ {
			fmt.Fprintf(&b, ", %s a%d", kindOf(shape[i]).ctype, i)
		}
		b.WriteString(", void *data) {\n")
		fmt.Fprintf(&b, "\tVPROBE_ENTER(%d, %d);\n", idx+1, len(shape))
		for i := 0; i < len(shape); i++ {
			fmt.Fprintf(&b, "\t%s(%d, a%d);\n", kindOf(shape[i]).record, i, i)
		}
		b.WriteString("}\n")
	}
	b.WriteString("\nstatic void *vprobe_funcs[] = {\n")
	for _, shape := range shapes {
		fmt.Fprintf(&b, "\t(void *) vprobe_%s,\n", cSuffix(shape))
	}
	b.WriteString("};\n\n")
	b.WriteString("static void *vprobe_func(int i) {\n")
	b.WriteString("\treturn vprobe_funcs[i];\n")
	b.WriteString("}\n")
	b.WriteString("*/\n")
	b.WriteString("import \"C\"\n\n")
	b.WriteString("import \"unsafe\"\n\n")
	b.WriteString("const haveProbes = true\n\n")
	b.WriteString("func probeFunc(i int) unsafe.Pointer {\n")
	b.WriteString("\treturn C.vprobe_func(C.int(i))\n")
	b.WriteString("}\n")
	return b.Bytes()
}
