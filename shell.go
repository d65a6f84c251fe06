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

import "io"
import "os"
import "fmt"
import "math"
import "sort"
import "sync"
import "errors"
import "strings"
import "strconv"
import "unsafe"
import "path/filepath"
import "github.com/docker/go-units"
import "github.com/launix-de/NonLockingReadMap"
import "github.com/launix-de/vmarshal/native"
import "github.com/launix-de/vmarshal/value"
import "github.com/launix-de/vmarshal/vmarshal"
import "github.com/launix-de/vmarshal/vmarshal/probe"

var errExit = errors.New("exit")

type loadedLib struct {
	path string
	lib  *native.Library
}

func (l loadedLib) GetKey() string    { return l.path }
func (l loadedLib) ComputeSize() uint { return 32 + uint(len(l.path)) }

var libraries = NonLockingReadMap.New[loadedLib, string]()
var librariesMu sync.Mutex // writers only
var self *native.Library

// loadLibrary opens path, or reloads it when it is already loaded. A failed
// reload keeps the old handle in place.
func loadLibrary(path string) error {
	librariesMu.Lock()
	defer librariesMu.Unlock()
	old := libraries.Get(path)
	var lib *native.Library
	var err error
	if old == nil || path == "" {
		lib, err = native.Open(path)
	} else {
		lib, err = reopen(path)
	}
	if err != nil {
		return err
	}
	if old != nil {
		libraries.Remove(path)
	}
	libraries.Set(&loadedLib{path, lib})
	if old != nil {
		old.lib.Close()
	}
	if tr := vmarshal.CurrentTrace(); tr != nil {
		tr.Event("load "+path, "native", "i")
	}
	if watcher != nil && path != "" {
		watchLibrary(path)
	}
	return nil
}

// reopen loads the current file behind path while the old handle stays open.
// dlopen serves an already loaded path from its cache, so the new file is
// opened through a fresh symlink; the loader tells files apart by inode.
func reopen(path string) (*native.Library, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir, err := os.MkdirTemp("", "vmarshal-reload")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)
	link := filepath.Join(dir, filepath.Base(abs))
	if err := os.Symlink(abs, link); err != nil {
		return nil, err
	}
	lib, err := native.Open(link)
	if err != nil {
		return nil, err
	}
	lib.Path = path
	return lib, nil
}

func unloadLibraries() {
	librariesMu.Lock()
	defer librariesMu.Unlock()
	for _, l := range libraries.GetAll() {
		if err := l.lib.Close(); err != nil {
			fmt.Println(err)
		}
		libraries.Remove(l.path)
	}
	if self != nil {
		self.Close()
		self = nil
	}
}

// resolve searches the loaded libraries (ordered by path) and then the process itself.
func resolve(symbol string) (unsafe.Pointer, string, error) {
	for _, l := range libraries.GetAll() {
		if p, err := l.lib.Symbol(symbol); err == nil {
			return p, l.path, nil
		}
	}
	librariesMu.Lock()
	if self == nil {
		var err error
		if self, err = native.Open(""); err != nil {
			librariesMu.Unlock()
			return nil, "", err
		}
	}
	librariesMu.Unlock()
	p, err := self.Symbol(symbol)
	return p, "<self>", err
}

// splitArgs splits a command line at blanks; double quotes group, backslash escapes.
func splitArgs(line string) ([]string, error) {
	var result []string
	var cur strings.Builder
	inQuote, escape, have := false, false, false
	for _, c := range line {
		switch {
		case escape:
			cur.WriteRune(c)
			escape = false
		case c == '\\':
			escape, have = true, true
		case c == '"':
			inQuote, have = !inQuote, true
		case (c == ' ' || c == '\t') && !inQuote:
			if have {
				result = append(result, cur.String())
				cur.Reset()
				have = false
			}
		default:
			cur.WriteRune(c)
			have = true
		}
	}
	if inQuote || escape {
		return nil, errors.New("unterminated quote or escape")
	}
	if have {
		result = append(result, cur.String())
	}
	return result, nil
}

// callState collects C memory allocated for one call.
type callState struct {
	allocs []unsafe.Pointer
	bufs   []unsafe.Pointer
}

func (s *callState) free() {
	for _, p := range s.allocs {
		native.Free(p)
	}
	s.allocs = nil
}

// parseArg reads a typed argument like int:42, double:3.25, str:"a b" or buf:1KiB.
func parseArg(arg string, s *callState) (value.Value, error) {
	typ, v, ok := strings.Cut(arg, ":")
	if !ok {
		return value.Invalid, fmt.Errorf("argument %q needs a type prefix like int:", arg)
	}
	switch typ {
	case "bool":
		b, err := strconv.ParseBool(v)
		return value.NewBool(b), err
	case "char":
		i, err := strconv.ParseInt(v, 0, 8)
		return value.NewChar(int8(i)), err
	case "uchar":
		i, err := strconv.ParseUint(v, 0, 8)
		return value.NewUChar(uint8(i)), err
	case "int":
		i, err := strconv.ParseInt(v, 0, 32)
		return value.NewInt(int32(i)), err
	case "uint":
		i, err := strconv.ParseUint(v, 0, 32)
		return value.NewUInt(uint32(i)), err
	case "long":
		i, err := strconv.ParseInt(v, 0, 64)
		return value.NewLong(i), err
	case "ulong":
		i, err := strconv.ParseUint(v, 0, 64)
		return value.NewULong(i), err
	case "int64":
		i, err := strconv.ParseInt(v, 0, 64)
		return value.NewInt64(i), err
	case "uint64":
		i, err := strconv.ParseUint(v, 0, 64)
		return value.NewUInt64(i), err
	case "enum":
		i, err := strconv.ParseInt(v, 0, 32)
		return value.NewEnum(value.TypeEnum, int32(i)), err
	case "flags":
		i, err := strconv.ParseUint(v, 0, 32)
		return value.NewFlags(value.TypeFlags, uint32(i)), err
	case "float":
		f, err := strconv.ParseFloat(v, 32)
		return value.NewFloat(float32(f)), err
	case "double":
		f, err := strconv.ParseFloat(v, 64)
		return value.NewDouble(f), err
	case "str":
		p := native.CString(v)
		s.allocs = append(s.allocs, p)
		return value.NewString(p), nil
	case "buf":
		n, err := units.RAMInBytes(v)
		if err != nil {
			return value.Invalid, err
		}
		if n <= 0 {
			return value.Invalid, fmt.Errorf("buffer size %q must be positive", v)
		}
		p := native.Malloc(uintptr(n))
		s.allocs = append(s.allocs, p)
		s.bufs = append(s.bufs, p)
		return value.NewPointer(p), nil
	case "ptr":
		i, err := strconv.ParseUint(v, 0, 64)
		return value.NewPointer(unsafe.Pointer(uintptr(i))), err
	}
	return value.Invalid, fmt.Errorf("unknown argument type %q", typ)
}

// parsePointer reads ctx= and data= values; bare numbers are addresses.
func parsePointer(arg string, s *callState) (unsafe.Pointer, error) {
	if !strings.Contains(arg, ":") {
		arg = "ptr:" + arg
	}
	v, err := parseArg(arg, s)
	if err != nil {
		return nil, err
	}
	if !v.IsPointerLike() {
		return nil, fmt.Errorf("%q is not a pointer", arg)
	}
	return v.Pointer(), nil
}

type command struct {
	name    string
	args    string
	desc    string
	minArgs int
	maxArgs int // -1 = unlimited
	fn      func(out io.Writer, a []string) error
}

var commands []command

func init() {
	commands = []command{
		{"load", "PATH", "load a shared library", 1, 1, func(out io.Writer, a []string) error {
			if err := loadLibrary(a[0]); err != nil {
				return err
			}
			fmt.Fprintln(out, "loaded", a[0])
			return nil
		}},
		{"libs", "", "list loaded libraries", 0, 0, func(out io.Writer, a []string) error {
			for _, l := range libraries.GetAll() {
				fmt.Fprintln(out, l.path)
			}
			return nil
		}},
		{"call", "SYMBOL ARG... [ctx=PTR] [data=PTR]", "call a native callback fn(ctx, ARG..., data)", 1, -1, cmdCall},
		{"sig", "SHAPE", "encode a shape like WDW", 1, 1, func(out io.Writer, a []string) error {
			sig, err := vmarshal.EncodeShape(a[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s = %#x = %#b\n", sig, uint32(sig), uint32(sig))
			return nil
		}},
		{"decode", "HEX", "decode a signature", 1, 1, func(out io.Writer, a []string) error {
			i, err := strconv.ParseUint(a[0], 0, 32)
			if err != nil {
				return err
			}
			kinds, trailing, ok := vmarshal.Decode(vmarshal.Signature(i))
			if !ok {
				return fmt.Errorf("%#x is no valid signature", i)
			}
			names := make([]string, len(kinds))
			for j, k := range kinds {
				names[j] = k.String()
			}
			fmt.Fprintf(out, "%s: (%s) + %s\n", vmarshal.Signature(i), strings.Join(names, ", "), trailing)
			return nil
		}},
		{"table", "", "show the trampoline table", 0, 0, cmdTable},
		{"types", "", "list value types", 0, 0, func(out io.Writer, a []string) error {
			for _, t := range value.Types() {
				kind, ok := vmarshal.ClassifyType(t)
				k := "-"
				if ok {
					k = kind.String()
				}
				fmt.Fprintf(out, "%-10s %-8s %s\n", value.TypeName(t), value.TypeName(value.Fundamental(t)), k)
			}
			return nil
		}},
		{"selftest", "", "dispatch every shape to a probe", 0, 0, cmdSelftest},
		{"set", "[NAME VALUE]", "show or change settings", 0, 2, func(out io.Writer, a []string) error {
			if len(a) == 0 {
				for _, name := range vmarshal.SettingNames() {
					fmt.Fprintf(out, "%s = %s\n", name, vmarshal.SettingString(name))
				}
				return nil
			}
			if len(a) != 2 {
				return errors.New("usage: set NAME VALUE")
			}
			if !isSetting(a[0]) {
				return fmt.Errorf("unknown setting %q", a[0])
			}
			return vmarshal.ChangeSetting(a[0], a[1])
		}},
		{"help", "", "show this help", 0, 0, func(out io.Writer, a []string) error {
			for _, c := range commands {
				fmt.Fprintf(out, "  %-8s %-36s %s\n", c.name, c.args, c.desc)
			}
			fmt.Fprintln(out, "argument types: bool char uchar int uint long ulong int64 uint64 enum flags float double str buf ptr")
			return nil
		}},
		{"exit", "", "leave the shell", 0, 0, func(out io.Writer, a []string) error {
			return errExit
		}},
	}
	sort.Slice(commands, func(i, j int) bool { return commands[i].name < commands[j].name })
}

func isSetting(name string) bool {
	for _, n := range vmarshal.SettingNames() {
		if n == name {
			return true
		}
	}
	return false
}

func cmdCall(out io.Writer, a []string) error {
	fn, from, err := resolve(a[0])
	if err != nil {
		return err
	}
	var s callState
	defer s.free()
	var ctx, data unsafe.Pointer
	var values []value.Value
	for _, arg := range a[1:] {
		if v, ok := strings.CutPrefix(arg, "ctx="); ok {
			if ctx, err = parsePointer(v, &s); err != nil {
				return err
			}
		} else if v, ok := strings.CutPrefix(arg, "data="); ok {
			if data, err = parsePointer(v, &s); err != nil {
				return err
			}
		} else {
			v, err := parseArg(arg, &s)
			if err != nil {
				return err
			}
			values = append(values, v)
		}
	}
	vmarshal.Dispatch(fn, ctx, values, data)
	fmt.Fprintf(out, "called %s from %s\n", a[0], from)
	for i, b := range s.bufs {
		fmt.Fprintf(out, "buf %d: %q\n", i, native.GoString(b))
	}
	return nil
}

func cmdTable(out io.Writer, a []string) error {
	slots := 1 << (2 * (vmarshal.MaxArgs + 1))
	size := float64(slots) * float64(unsafe.Sizeof(vmarshal.Trampoline(nil)))
	fmt.Fprintf(out, "%d trampolines in %d slots (%s), up to %d arguments\n", vmarshal.TableSize(), slots, units.BytesSize(size), vmarshal.MaxArgs)
	fmt.Fprintf(out, "pointer is %s, long is %s\n", vmarshal.PointerKind, vmarshal.LongKind)
	if err := vmarshal.VerifyTable(); err != nil {
		return err
	}
	fmt.Fprintln(out, "table complete")
	return nil
}

// pattern gives every argument position distinct, width-revealing bits.
func pattern(k vmarshal.Kind, shape, pos int) uint64 {
	switch k {
	case vmarshal.Word32:
		return 0x80000000 | uint64(shape)<<4 | uint64(pos)
	case vmarshal.Word64:
		return 0xa5a5000000000000 | uint64(shape)<<4 | uint64(pos)
	}
	return math.Float64bits(float64(shape) + float64(pos)/4)
}

func cmdSelftest(out io.Writer, a []string) error {
	if !probe.Available() {
		return errors.New("selftest needs a cgo build")
	}
	if err := vmarshal.VerifyTable(); err != nil {
		return err
	}
	failed := 0
	shapes := probe.Shapes()
	for i, shape := range shapes {
		kinds, err := vmarshal.ParseShape(shape)
		if err != nil {
			return err
		}
		raw := make([]uint64, len(kinds))
		for j, k := range kinds {
			raw[j] = pattern(k, i, j)
		}
		r := probe.NewRecord()
		vmarshal.DispatchRaw(probe.Func(shape), r.Ptr(), kinds, raw, nil)
		got := r.Args()
		gotShape, _ := r.Shape()
		ok := r.Calls() == 1 && gotShape == shape && len(got) == len(raw)
		for j := 0; ok && j < len(raw); j++ {
			ok = got[j] == raw[j]
		}
		if !ok {
			failed++
			fmt.Fprintf(out, "FAIL %s: sent %#x, received %#x\n", vmarshal.Encode(kinds, vmarshal.PointerKind), raw, got)
		}
	}
	fmt.Fprintf(out, "%d shapes, %d failed\n", len(shapes), failed)
	if failed > 0 {
		return fmt.Errorf("selftest: %d of %d shapes failed", failed, len(shapes))
	}
	return nil
}

// runLine executes one shell line; panics from the dispatcher become errors.
func runLine(out io.Writer, line string) (err error) {
	a, err := splitArgs(line)
	if err != nil || len(a) == 0 {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("panic: %v", r)
			}
		}
	}()
	for _, c := range commands {
		if c.name != a[0] {
			continue
		}
		args := a[1:]
		if len(args) < c.minArgs || (c.maxArgs >= 0 && len(args) > c.maxArgs) {
			return fmt.Errorf("usage: %s %s", c.name, c.args)
		}
		return c.fn(out, args)
	}
	return fmt.Errorf("unknown command %q, try help", a[0])
}
