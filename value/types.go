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
package value

import "fmt"
import "sync"
import "sync/atomic"
import "github.com/launix-de/NonLockingReadMap"

// Type identifies the type of a Value. Values below FirstDerived are
// fundamental types, everything above was registered with RegisterType.
type Type uint32

const (
	TypeInvalid Type = iota
	TypeBoolean
	TypeChar
	TypeUChar
	TypeInt
	TypeUInt
	TypeLong
	TypeULong
	TypeInt64
	TypeUInt64
	TypeEnum
	TypeFlags
	TypeFloat
	TypeDouble
	TypeString
	TypeParam
	TypeBoxed
	TypePointer
	TypeObject
	numFundamentals
	// derived types >= 256
)

const FirstDerived Type = 256

var fundamentalNames = [numFundamentals]string{
	"invalid", "bool", "char", "uchar", "int", "uint", "long", "ulong",
	"int64", "uint64", "enum", "flags", "float", "double", "string",
	"param", "boxed", "pointer", "object",
}

type typeNode struct {
	id          Type
	name        string
	parent      Type
	fundamental Type
}

func (n typeNode) GetKey() string { return n.name }

func (n typeNode) ComputeSize() uint { return 48 + uint(len(n.name)) }

// typeSlot indexes the same node by id
type typeSlot struct {
	node *typeNode
}

func (s typeSlot) GetKey() Type { return s.node.id }

func (s typeSlot) ComputeSize() uint { return 8 }

var (
	typesByName = NonLockingReadMap.New[typeNode, string]()
	typesByID   = NonLockingReadMap.New[typeSlot, Type]()
	typeWriteMu sync.Mutex // writers only; reads never lock
	nextType    atomic.Uint32
)

func init() {
	for t := TypeBoolean; t < numFundamentals; t++ {
		node := &typeNode{t, fundamentalNames[t], TypeInvalid, t}
		typesByName.Set(node)
		typesByID.Set(&typeSlot{node})
	}
	nextType.Store(uint32(FirstDerived))
}

// RegisterType derives a new named type from parent. Registering the same
// name twice returns the first id as long as the parent matches.
func RegisterType(name string, parent Type) Type {
	if name == "" {
		panic("value: empty type name")
	}
	pf := Fundamental(parent)
	if pf == TypeInvalid {
		panic(fmt.Sprintf("value: cannot derive %q from invalid parent %d", name, parent))
	}
	typeWriteMu.Lock()
	defer typeWriteMu.Unlock()
	if old := typesByName.Get(name); old != nil {
		if old.parent != parent {
			panic(fmt.Sprintf("value: type %q already registered with parent %s", name, TypeName(old.parent)))
		}
		return old.id
	}
	node := &typeNode{Type(nextType.Add(1) - 1), name, parent, pf}
	typesByID.Set(&typeSlot{node})
	typesByName.Set(node)
	return node.id
}

func lookupType(t Type) *typeNode {
	if t == TypeInvalid {
		return nil
	}
	slot := typesByID.Get(t)
	if slot == nil {
		return nil
	}
	return slot.node
}

// Fundamental returns the fundamental ancestor of t or TypeInvalid.
func Fundamental(t Type) Type {
	if t < numFundamentals {
		return t
	}
	if n := lookupType(t); n != nil {
		return n.fundamental
	}
	return TypeInvalid
}

// IsFundamental reports whether t is one of the builtin types.
func IsFundamental(t Type) bool {
	return t > TypeInvalid && t < numFundamentals
}

// Parent returns the direct parent of a derived type, TypeInvalid for fundamentals.
func Parent(t Type) Type {
	if n := lookupType(t); n != nil {
		return n.parent
	}
	return TypeInvalid
}

// IsA reports whether t equals ancestor or derives from it.
func IsA(t Type, ancestor Type) bool {
	if ancestor == TypeInvalid {
		return false
	}
	for t != TypeInvalid {
		if t == ancestor {
			return true
		}
		n := lookupType(t)
		if n == nil {
			return false
		}
		t = n.parent
	}
	return false
}

func TypeName(t Type) string {
	if n := lookupType(t); n != nil {
		return n.name
	}
	if t == TypeInvalid {
		return "invalid"
	}
	return fmt.Sprintf("<unknown type %d>", t)
}

// TypeFromName returns the type registered under name or TypeInvalid.
func TypeFromName(name string) Type {
	if n := typesByName.Get(name); n != nil {
		return n.id
	}
	return TypeInvalid
}

// Types lists all registered types ordered by name.
func Types() []Type {
	all := typesByName.GetAll()
	result := make([]Type, len(all))
	for i, n := range all {
		result[i] = n.id
	}
	return result
}
