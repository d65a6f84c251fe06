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

package native

import (
	"errors"
	"strings"
	"testing"

	"github.com/launix-de/vmarshal/vmarshal"
)

func TestOpenSelf(t *testing.T) {
	lib, err := Open("")
	if err != nil {
		t.Fatal(err)
	}
	defer lib.Close()
	if p, err := lib.Symbol("strlen"); err != nil || p == nil {
		t.Fatalf("strlen: %v", err)
	}
	_, err = lib.Symbol("vmarshal_surely_not_a_symbol")
	if !errors.Is(err, ErrSymbol) || strings.Contains(err.Error(), "unknown dlerror") {
		t.Errorf("missing symbol: %v", err)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open("/nonexistent/libnothing.so")
	if !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}
	// the loader's own message must survive a goroutine moving between threads
	if strings.Contains(err.Error(), "unknown dlerror") {
		t.Errorf("dlerror text lost: %v", err)
	}
}

func TestClose(t *testing.T) {
	lib, err := Open("")
	if err != nil {
		t.Fatal(err)
	}
	if err := lib.Close(); err != nil {
		t.Fatal(err)
	}
	if err := lib.Close(); err != nil {
		t.Error("second Close must be a no-op")
	}
	if _, err := lib.Symbol("strlen"); !errors.Is(err, ErrClosed) {
		t.Errorf("symbol after close: %v", err)
	}
}

func TestDispatchLibc(t *testing.T) {
	lib, err := Open("")
	if err != nil {
		t.Fatal(err)
	}
	defer lib.Close()
	strcpy, err := lib.Symbol("strcpy")
	if err != nil {
		t.Fatal(err)
	}
	// strcpy(dst, src) has the shape of a callback without regular arguments
	src := CString("hello")
	defer Free(src)
	dst := Malloc(16)
	defer Free(dst)
	vmarshal.Dispatch(strcpy, dst, nil, src)
	if s := GoString(dst); s != "hello" {
		t.Errorf("strcpy produced %q", s)
	}
}
