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

import "fmt"
import "time"
import "github.com/fsnotify/fsnotify"

var watcher *fsnotify.Watcher
var watcherDone chan struct{}

// startWatcher reloads loaded libraries whenever their file changes on disk.
func startWatcher() {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		panic(err)
	}
	watcher = w
	done := make(chan struct{})
	watcherDone = done
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				changed := map[string]bool{event.Name: true}
				// collect the burst of events a linker or cp produces
				for {
					time.Sleep(10 * time.Millisecond) // delay a bit, so we don't dlopen half written files
					select {
					case e, ok := <-w.Events:
						if !ok {
							return
						}
						changed[e.Name] = true
						continue
					default:
					}
					break
				}
				for path := range changed {
					if libraries.Get(path) == nil {
						continue
					}
					func() {
						defer func() {
							if err := recover(); err != nil {
								fmt.Println(err)
							}
						}()
						// the old library stays loaded on failure; keep watching for a fixed file
						defer watchLibrary(path)
						if err := loadLibrary(path); err != nil {
							fmt.Println("reload failed:", err)
							return
						}
						fmt.Println("reloaded", path)
					}()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				fmt.Println("watch:", err)
			}
		}
	}()
}

func watchLibrary(path string) {
	// linkers replace the file, so the path is watched again after every reload
	watcher.Remove(path)
	if err := watcher.Add(path); err != nil {
		fmt.Println("watch:", err)
	}
}

// stopWatcher closes the watcher and waits for its goroutine to finish.
func stopWatcher() {
	if watcher == nil {
		return
	}
	watcher.Close()
	<-watcherDone
	watcher = nil
}
