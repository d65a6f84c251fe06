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
package signal

import "errors"
import "fmt"
import "sync"
import "sync/atomic"
import "unsafe"
import "github.com/google/btree"
import "github.com/launix-de/NonLockingReadMap"
import "github.com/launix-de/vmarshal/value"
import "github.com/launix-de/vmarshal/vmarshal"

var (
	ErrUnknownSignal = errors.New("signal: unknown signal")
	ErrArgCount      = errors.New("signal: wrong number of arguments")
	ErrArgType       = errors.New("signal: argument type mismatch")
	ErrRedeclared    = errors.New("signal: conflicting redeclaration")
)

// Declaration names a signal and the types of its regular arguments. The
// instance is not part of Params.
type Declaration struct {
	Name   string
	Params []value.Type
}

func (d Declaration) GetKey() string { return d.Name }

func (d Declaration) ComputeSize() uint { return 40 + uint(len(d.Name)) + 4*uint(len(d.Params)) }

func (d *Declaration) String() string {
	s := d.Name + "("
	for i, p := range d.Params {
		if i > 0 {
			s += ", "
		}
		s += value.TypeName(p)
	}
	return s + ")"
}

type HandlerID uint64

type handler struct {
	instance uintptr
	signal   string
	id       HandlerID
	closure  Closure
	blocked  atomic.Int32
}

func handlerLess(a, b *handler) bool {
	if a.instance != b.instance {
		return a.instance < b.instance
	}
	if a.signal != b.signal {
		return a.signal < b.signal
	}
	return a.id < b.id
}

// Registry holds signal declarations and connected handlers. Declarations
// are read without locking; handlers sit in a btree ordered by instance,
// signal and connection order.
type Registry struct {
	decls  NonLockingReadMap.NonLockingReadMap[Declaration, string]
	declMu sync.Mutex

	mu       sync.RWMutex
	handlers *btree.BTreeG[*handler]
	byID     map[HandlerID]*handler
	nextID   atomic.Uint64
}

func NewRegistry() *Registry {
	r := new(Registry)
	r.decls = NonLockingReadMap.New[Declaration, string]()
	r.handlers = btree.NewG[*handler](8, handlerLess)
	r.byID = make(map[HandlerID]*handler)
	return r
}

// Declare registers a signal. Declaring the same name again is allowed as
// long as the parameter types match.
func (r *Registry) Declare(name string, params ...value.Type) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownSignal)
	}
	if len(params) > vmarshal.MaxArgs {
		return fmt.Errorf("%w: %s has %d parameters, at most %d", vmarshal.ErrTooManyArgs, name, len(params), vmarshal.MaxArgs)
	}
	for _, p := range params {
		if _, ok := vmarshal.ClassifyType(p); !ok {
			return fmt.Errorf("%w: %s parameter of type %s", vmarshal.ErrUnclassifiable, name, value.TypeName(p))
		}
	}
	r.declMu.Lock()
	defer r.declMu.Unlock()
	if old := r.decls.Get(name); old != nil {
		if !sameTypes(old.Params, params) {
			return fmt.Errorf("%w: %s was declared as %s", ErrRedeclared, name, old)
		}
		return nil
	}
	r.decls.Set(&Declaration{name, append([]value.Type(nil), params...)})
	return nil
}

func sameTypes(a, b []value.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (r *Registry) Lookup(name string) (*Declaration, bool) {
	d := r.decls.Get(name)
	return d, d != nil
}

// Declarations lists all declared signals ordered by name.
func (r *Registry) Declarations() []*Declaration {
	return r.decls.GetAll()
}

// Connect attaches c to signal name on instance.
func (r *Registry) Connect(instance unsafe.Pointer, name string, c Closure) (HandlerID, error) {
	if r.decls.Get(name) == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSignal, name)
	}
	if c.Callback == nil {
		return 0, fmt.Errorf("%w: %s", vmarshal.ErrNilFunction, name)
	}
	h := &handler{instance: uintptr(instance), signal: name, closure: c}
	h.id = HandlerID(r.nextID.Add(1))
	r.mu.Lock()
	r.handlers.ReplaceOrInsert(h)
	r.byID[h.id] = h
	r.mu.Unlock()
	return h.id, nil
}

func (r *Registry) Disconnect(id HandlerID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)
	r.handlers.Delete(h)
	return true
}

// Block suppresses a handler until a matching Unblock. Blocks nest.
func (r *Registry) Block(id HandlerID) bool {
	r.mu.RLock()
	h, ok := r.byID[id]
	r.mu.RUnlock()
	if ok {
		h.blocked.Add(1)
	}
	return ok
}

func (r *Registry) Unblock(id HandlerID) bool {
	r.mu.RLock()
	h, ok := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	for {
		n := h.blocked.Load()
		if n == 0 {
			return false
		}
		if h.blocked.CompareAndSwap(n, n-1) {
			return true
		}
	}
}

// collect returns the handlers of instance/name in connection order.
func (r *Registry) collect(instance uintptr, name string) []*handler {
	var result []*handler
	r.mu.RLock()
	r.handlers.AscendGreaterOrEqual(&handler{instance: instance, signal: name}, func(h *handler) bool {
		if h.instance != instance || h.signal != name {
			return false
		}
		result = append(result, h)
		return true
	})
	r.mu.RUnlock()
	return result
}

func (r *Registry) HandlerCount(instance unsafe.Pointer, name string) int {
	return len(r.collect(uintptr(instance), name))
}

// Emit checks args against the declaration of name and calls every
// unblocked handler of instance. Handlers connected while emitting are not
// called; handlers disconnected while emitting are skipped.
func (r *Registry) Emit(instance value.Value, name string, args ...value.Value) error {
	d := r.decls.Get(name)
	if d == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSignal, name)
	}
	if !instance.IsPointerLike() {
		return fmt.Errorf("%w: %s emitted on %s", ErrArgType, name, value.TypeName(instance.Type()))
	}
	if len(args) != len(d.Params) {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, d, len(d.Params), len(args))
	}
	for i, a := range args {
		if !value.IsA(a.Type(), d.Params[i]) {
			return fmt.Errorf("%w: %s argument %d is %s", ErrArgType, d, i, value.TypeName(a.Type()))
		}
	}
	handlers := r.collect(uintptr(instance.Pointer()), name)
	if len(handlers) == 0 {
		return nil
	}
	params := make([]value.Value, 0, 1+len(args))
	params = append(params, instance)
	params = append(params, args...)
	r.invoke(handlers, params)
	return nil
}

// invoke calls a snapshot of handlers. Handlers disconnected or blocked
// since the snapshot are skipped; their closure data may already be gone.
func (r *Registry) invoke(handlers []*handler, params []value.Value) {
	for _, h := range handlers {
		if h.blocked.Load() > 0 || !r.connected(h) {
			continue
		}
		Marshal(&h.closure, params)
	}
}

func (r *Registry) connected(h *handler) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[h.id] == h
}

// Default is the process wide registry used by the package level functions.
var Default = NewRegistry()

func Declare(name string, params ...value.Type) error { return Default.Declare(name, params...) }

func Lookup(name string) (*Declaration, bool) { return Default.Lookup(name) }

func Connect(instance unsafe.Pointer, name string, c Closure) (HandlerID, error) {
	return Default.Connect(instance, name, c)
}

func Disconnect(id HandlerID) bool { return Default.Disconnect(id) }

func Block(id HandlerID) bool { return Default.Block(id) }

func Unblock(id HandlerID) bool { return Default.Unblock(id) }

func HandlerCount(instance unsafe.Pointer, name string) int {
	return Default.HandlerCount(instance, name)
}

func Emit(instance value.Value, name string, args ...value.Value) error {
	return Default.Emit(instance, name, args...)
}
