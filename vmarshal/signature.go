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

import "fmt"
import "math/bits"

/*
Signature layout
================

Every argument occupies a 2-bit field holding its Kind code (never 0). The
trailing pointer sits in the lowest field, the regular arguments above it
with argument 0 in the most significant field:

	[arg0][arg1]...[argN-1][trailing]

Because no field is ever 0, the bit length of a signature determines the
argument count; sequences of different length cannot collide. The layout
is shared with the generated trampoline table and must not change.
*/

// Signature identifies an ordered kind sequence plus the trailing pointer kind.
type Signature uint32

// SignatureInvalid is never produced by Encode.
const SignatureInvalid Signature = 0

// tableSize bounds every signature Encode can produce.
const tableSize = 1 << (2 * (MaxArgs + 1))

func kindCode(k Kind) Signature {
	if k == KindInvalid || k > Float64 {
		panic(fmt.Errorf("%w: %d", ErrInvalidKind, uint8(k)))
	}
	return Signature(k)
}

// Encode folds kinds and the trailing pointer kind into a Signature.
func Encode(kinds []Kind, trailing Kind) Signature {
	if len(kinds) > MaxArgs {
		panic(fmt.Errorf("%w: %d arguments, at most %d", ErrTooManyArgs, len(kinds), MaxArgs))
	}
	acc := kindCode(trailing)
	shift := uint(2)
	for i := len(kinds) - 1; i >= 0; i-- {
		acc |= kindCode(kinds[i]) << shift
		shift += 2
	}
	return acc
}

// Decode splits a signature back into its kinds. ok is false for the invalid
// sentinel, for zero fields and for sequences longer than MaxArgs.
func Decode(sig Signature) (kinds []Kind, trailing Kind, ok bool) {
	if sig == SignatureInvalid {
		return nil, KindInvalid, false
	}
	n := (bits.Len32(uint32(sig))+1)/2 - 1
	if n > MaxArgs {
		return nil, KindInvalid, false
	}
	trailing = Kind(sig & 3)
	if trailing == KindInvalid {
		return nil, KindInvalid, false
	}
	kinds = make([]Kind, n)
	for i := 0; i < n; i++ {
		kinds[i] = Kind((sig >> uint(2*(n-i))) & 3)
		if kinds[i] == KindInvalid {
			return nil, KindInvalid, false
		}
	}
	return kinds, trailing, true
}

// Arity returns the number of regular arguments (-1 for malformed signatures).
func (sig Signature) Arity() int {
	kinds, _, ok := Decode(sig)
	if !ok {
		return -1
	}
	return len(kinds)
}

// Shape returns the regular arguments in letter form, e.g. "WDW".
func (sig Signature) Shape() string {
	kinds, _, ok := Decode(sig)
	if !ok {
		return ""
	}
	return ShapeOf(kinds)
}

func (sig Signature) String() string {
	kinds, trailing, ok := Decode(sig)
	if !ok {
		return fmt.Sprintf("invalid(%#x)", uint32(sig))
	}
	return ShapeOf(kinds) + "+" + string(trailing.Letter())
}

// EncodeShape is Encode for the letter form with the host pointer kind.
func EncodeShape(shape string) (Signature, error) {
	kinds, err := ParseShape(shape)
	if err != nil {
		return SignatureInvalid, err
	}
	return Encode(kinds, PointerKind), nil
}

// forEachShape calls fn for every kind sequence of length 0..MaxArgs, shortest
// first, W < L < D within a length.
func forEachShape(fn func(kinds []Kind)) {
	buf := make([]Kind, MaxArgs)
	var rec func(pos, n int)
	rec = func(pos, n int) {
		if pos == n {
			fn(buf[:n])
			return
		}
		for k := Word32; k <= Float64; k++ {
			buf[pos] = k
			rec(pos+1, n)
		}
	}
	for n := 0; n <= MaxArgs; n++ {
		rec(0, n)
	}
}
