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
package vmarshal

import "io"
import "os"
import "fmt"
import "sync"
import "time"
import "path/filepath"
import "sync/atomic"
import "encoding/json"

// Tracefile writes dispatches in the Chrome trace event format
// (load it in chrome://tracing or ui.perfetto.dev).
type Tracefile struct {
	isFirst bool
	closed  bool // dispatches still in flight drop their events
	file    io.WriteCloser
	m       sync.Mutex
}

var trace atomic.Pointer[Tracefile]

// mirrors Settings.TracePrint for the dispatch path
var tracePrint atomic.Bool

// CurrentTrace returns the active trace or nil.
func CurrentTrace() *Tracefile { return trace.Load() }

// SetTrace opens a fresh trace file in Settings.TraceDir or closes the active one.
func SetTrace(on bool) error {
	if old := trace.Swap(nil); old != nil {
		old.Close()
	}
	if !on {
		return nil
	}
	name := filepath.Join(Settings.TraceDir, "trace_"+fmt.Sprint(time.Now().Unix())+".json")
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("vmarshal: cannot open trace: %w", err)
	}
	trace.Store(NewTrace(f))
	return nil
}

// UseTrace installs t as the active trace (nil disables tracing) and returns the previous one.
func UseTrace(t *Tracefile) *Tracefile {
	return trace.Swap(t)
}

func NewTrace(file io.WriteCloser) *Tracefile {
	file.Write([]byte("["))
	result := new(Tracefile)
	result.file = file
	result.isFirst = true
	return result
}

// Close terminates the JSON array; later events are dropped.
func (t *Tracefile) Close() {
	t.m.Lock()
	defer t.m.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	t.file.Write([]byte("]"))
	t.file.Close()
}

func (t *Tracefile) Duration(name string, cat string, f func()) {
	t.EventHalf(name, cat, "B")
	defer t.EventHalf(name, cat, "E")
	f()
}

func (t *Tracefile) Event(name string, cat string, typ string) {
	t.EventHalf(name, cat, typ)
}

func (t *Tracefile) EventHalf(name string, cat string, typ string) {
	ts := time.Since(start).Microseconds()
	t.EventFull(name, cat, typ, ts, 0, os.Getpid())
}

type traceEvent struct {
	Name  string `json:"name"`
	Cat   string `json:"cat"`
	Phase string `json:"ph"`
	Ts    int64  `json:"ts"`
	Pid   int    `json:"pid"`
	Tid   int    `json:"tid"`
	Scope string `json:"s"`
}

/*
EventFull appends one event.

	@name event name (the signature for dispatches)
	@cat comma separated categories (for filtering)
	@typ B/E for begin/end, X for events
	@ts timestamp in microseconds
*/
func (t *Tracefile) EventFull(name string, cat string, typ string, ts int64, tid int, pid int) {
	b, _ := json.Marshal(traceEvent{name, cat, typ, ts, pid, tid, "g"})
	t.m.Lock()
	if t.closed {
		t.m.Unlock()
		return
	}
	if t.isFirst {
		t.isFirst = false
	} else {
		t.file.Write([]byte(",\n"))
	}
	t.file.Write(b)
	t.m.Unlock()
	if tracePrint.Load() {
		fmt.Println("trace:", typ, cat, name)
	}
}

var start time.Time = time.Now()
