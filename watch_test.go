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
//go:build cgo && linux

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/launix-de/vmarshal/native"
)

// findLibm returns a real shared library to copy around.
func findLibm(t *testing.T) string {
	t.Helper()
	for _, pattern := range []string{"/lib/*/libm.so.6", "/usr/lib/*/libm.so.6", "/lib64/libm.so.6", "/usr/lib64/libm.so.6", "/lib/libm.so.6"} {
		if m, _ := filepath.Glob(pattern); len(m) > 0 {
			return m[0]
		}
	}
	t.Skip("no libm.so.6 found")
	return ""
}

// install replaces dst atomically, the way linkers and package managers do.
func install(t *testing.T, content []byte, dst string) {
	t.Helper()
	tmp := dst + ".new"
	if err := os.WriteFile(tmp, content, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		t.Fatal(err)
	}
}

func currentLib(path string) *native.Library {
	if l := libraries.Get(path); l != nil {
		return l.lib
	}
	return nil
}

func TestReloadKeepsLibraryOnFailure(t *testing.T) {
	good, err := os.ReadFile(findLibm(t))
	if err != nil {
		t.Skip(err)
	}
	path := filepath.Join(t.TempDir(), "libtest.so")
	install(t, good, path)
	defer unloadLibraries()

	if err := loadLibrary(path); err != nil {
		t.Fatal(err)
	}
	first := currentLib(path)

	install(t, []byte("not a shared object"), path)
	if err := loadLibrary(path); err == nil {
		t.Fatal("reload of a broken file succeeded")
	}
	if currentLib(path) != first {
		t.Fatal("failed reload dropped the loaded library")
	}
	if _, from, err := resolve("cos"); err != nil || from != path {
		t.Errorf("cos after failed reload: %q %v", from, err)
	}

	install(t, good, path)
	if err := loadLibrary(path); err != nil {
		t.Fatal(err)
	}
	if l := currentLib(path); l == nil || l == first {
		t.Error("fixed file was not loaded")
	}
	if _, from, err := resolve("cos"); err != nil || from != path {
		t.Errorf("cos after reload: %q %v", from, err)
	}
}

func TestWatchReloadsAndStops(t *testing.T) {
	good, err := os.ReadFile(findLibm(t))
	if err != nil {
		t.Skip(err)
	}
	path := filepath.Join(t.TempDir(), "libwatched.so")
	install(t, good, path)
	defer unloadLibraries()

	startWatcher()
	stopped := false
	defer func() {
		if !stopped {
			stopWatcher()
		}
	}()
	if err := loadLibrary(path); err != nil {
		t.Fatal(err)
	}
	first := currentLib(path)

	// a broken file must not end the watch
	install(t, []byte("half written"), path)
	time.Sleep(200 * time.Millisecond)
	if currentLib(path) != first {
		t.Fatal("broken file replaced the loaded library")
	}

	install(t, good, path)
	deadline := time.Now().Add(5 * time.Second)
	for l := currentLib(path); l == nil || l == first; l = currentLib(path) {
		if time.Now().After(deadline) {
			t.Fatal("library was not reloaded after the fix")
		}
		time.Sleep(20 * time.Millisecond)
	}

	done := make(chan struct{})
	go func() {
		stopWatcher()
		close(done)
	}()
	select {
	case <-done:
		stopped = true
	case <-time.After(5 * time.Second):
		t.Fatal("watcher goroutine did not exit after close")
	}
}
