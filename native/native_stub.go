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
//go:build !cgo || !(linux || darwin)

package native

import "fmt"
import "runtime"
import "unsafe"

// Library is never successfully opened on this platform.
type Library struct {
	Path string
}

func Open(path string) (*Library, error) {
	return nil, fmt.Errorf("%w: dlopen(%q): not supported on %s without cgo", ErrOpen, path, runtime.GOOS)
}

func (l *Library) Symbol(name string) (unsafe.Pointer, error) {
	return nil, fmt.Errorf("%w: %s", ErrClosed, l.Path)
}

func (l *Library) Close() error { return nil }

func CString(s string) unsafe.Pointer { panic("native: no C heap without cgo") }

func GoString(p unsafe.Pointer) string { panic("native: no C heap without cgo") }

func Malloc(n uintptr) unsafe.Pointer { panic("native: no C heap without cgo") }

func Free(p unsafe.Pointer) {}

const Supported = false
