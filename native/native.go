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

// Package native loads shared libraries and resolves symbols that can then
// be handed to vmarshal.Dispatch.
package native

/*
#cgo linux LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
#include <string.h>

// dlerror is thread local, so every helper copies it out before returning
static char *vm_errdup(void) {
	const char *e = dlerror();
	return e ? strdup(e) : strdup("unknown dlerror");
}

static void *vm_dlopen(const char *path, char **err) {
	void *h = dlopen(path, RTLD_NOW | RTLD_LOCAL);
	*err = h ? NULL : vm_errdup();
	return h;
}

static void *vm_dlsym(void *h, const char *name, char **err) {
	dlerror();
	void *p = dlsym(h, name);
	const char *e = dlerror();
	*err = e ? strdup(e) : NULL;
	return p;
}

static int vm_dlclose(void *h, char **err) {
	int rc = dlclose(h);
	*err = rc ? vm_errdup() : NULL;
	return rc;
}
*/
import "C"

import "fmt"
import "sync"
import "unsafe"

type Library struct {
	Path   string
	handle unsafe.Pointer
	m      sync.Mutex
}

// takeErr converts a strdup'ed error from the helpers and frees it.
func takeErr(e *C.char) string {
	defer C.free(unsafe.Pointer(e))
	return C.GoString(e)
}

// Open loads a shared library; the empty path opens the running process.
func Open(path string) (*Library, error) {
	var h unsafe.Pointer
	var e *C.char
	if path == "" {
		h = C.vm_dlopen(nil, &e)
	} else {
		cs := C.CString(path)
		defer C.free(unsafe.Pointer(cs))
		h = C.vm_dlopen(cs, &e)
	}
	if h == nil {
		return nil, fmt.Errorf("%w: dlopen(%q): %s", ErrOpen, path, takeErr(e))
	}
	return &Library{Path: path, handle: h}, nil
}

// Symbol resolves name to a function or data address.
func (l *Library) Symbol(name string) (unsafe.Pointer, error) {
	l.m.Lock()
	defer l.m.Unlock()
	if l.handle == nil {
		return nil, fmt.Errorf("%w: %s", ErrClosed, l.Path)
	}
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	var e *C.char
	p := C.vm_dlsym(l.handle, cs, &e)
	if e != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrSymbol, name, takeErr(e))
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s resolves to NULL", ErrSymbol, name)
	}
	return p, nil
}

// Close unloads the library. Symbols resolved from it must not be used afterwards.
func (l *Library) Close() error {
	l.m.Lock()
	defer l.m.Unlock()
	if l.handle == nil {
		return nil
	}
	h := l.handle
	l.handle = nil
	var e *C.char
	if C.vm_dlclose(h, &e) != 0 {
		return fmt.Errorf("dlclose(%q): %s", l.Path, takeErr(e))
	}
	return nil
}

// CString copies s into C memory; release it with Free.
func CString(s string) unsafe.Pointer {
	return unsafe.Pointer(C.CString(s))
}

// GoString reads a NUL terminated C string.
func GoString(p unsafe.Pointer) string {
	return C.GoString((*C.char)(p))
}

// Malloc returns n zeroed bytes of C memory.
func Malloc(n uintptr) unsafe.Pointer {
	p := C.calloc(1, C.size_t(n))
	if p == nil {
		panic("native: out of memory")
	}
	return p
}

func Free(p unsafe.Pointer) {
	C.free(p)
}

const Supported = true
