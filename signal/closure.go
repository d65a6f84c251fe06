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
// Package signal connects native callbacks to named signals of object
// instances and emits them through vmarshal.Dispatch.
package signal

import "errors"
import "fmt"
import "unsafe"
import "github.com/launix-de/vmarshal/value"
import "github.com/launix-de/vmarshal/vmarshal"

var ErrBadParams = errors.New("signal: bad closure parameters")

// Closure is a native callback of the form
//
//	void cb(void *instance, ARGS..., void *data)
//
// With Swap set, instance and data change places.
type Closure struct {
	Callback unsafe.Pointer
	Data     unsafe.Pointer
	Swap     bool
}

// Marshal invokes c with params[0] as instance and the rest as regular
// arguments. Violations of the calling contract panic.
func Marshal(c *Closure, params []value.Value) {
	if len(params) == 0 || len(params) > 1+vmarshal.MaxArgs {
		panic(fmt.Errorf("%w: %d parameters, want 1..%d", ErrBadParams, len(params), 1+vmarshal.MaxArgs))
	}
	if !params[0].IsPointerLike() {
		panic(fmt.Errorf("%w: instance of type %s", ErrBadParams, value.TypeName(params[0].Type())))
	}
	instance, data := params[0].Pointer(), c.Data
	if c.Swap {
		instance, data = data, instance
	}
	vmarshal.Dispatch(c.Callback, instance, params[1:], data)
}
