//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package transpositiontable

import (
	"github.com/frankkopp/corvid/internal/position"
	. "github.com/frankkopp/corvid/internal/types"
)

// TtEntry is one 16-byte slot of the transposition table. depth, value
// type and age are packed into a single 16-bit vmeta word so the whole
// entry stays small enough to keep the table cache-friendly at large
// hash sizes.
type TtEntry struct {
	key   position.Key // full 64-bit Zobrist key, for collision detection
	move  uint16       // best/refutation move, Move(e.move) to unpack
	eval  int16        // static evaluation at the time of storage
	value int16        // search value (may be a mate-distance-adjusted score)
	vmeta uint16       // depth:7 | vtype:2 | age:3, high to low
}

const (
	// TtEntrySize is the size in bytes for each TtEntry
	TtEntrySize = 16 // 16 bytes

	ageMask    = uint16(0b0000_0000_0000_0111)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

// Key returns the full Zobrist key stored for collision detection against
// the position being probed.
func (e *TtEntry) Key() position.Key {
	return e.key
}

// Move unpacks the stored move.
func (e *TtEntry) Move() Move {
	return Move(e.move)
}

// Value unpacks the stored search value.
func (e *TtEntry) Value() Value {
	return Value(e.value)
}

// Eval unpacks the stored static evaluation.
func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

// Depth unpacks the search depth the entry was stored at.
func (e *TtEntry) Depth() int8 {
	return int8((e.vmeta & depthMask) >> depthShift)
}

// Age unpacks the number of AgeEntries sweeps this slot has survived
// without being refreshed by a Probe hit.
func (e *TtEntry) Age() int8 {
	return int8(e.vmeta & ageMask)
}

// Vtype unpacks whether the stored value is exact or an alpha/beta bound.
func (e *TtEntry) Vtype() ValueType {
	return ValueType((e.vmeta & vtypeMask) >> vtypeShift)
}

func (e *TtEntry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *TtEntry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}
