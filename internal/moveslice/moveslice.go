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

// Package moveslice is a thin, allocation-conscious wrapper around []Move
// used everywhere a move list is passed between move generation, search and
// the UCI layer.
package moveslice

import (
	"fmt"
	"strings"
	"sync"

	. "github.com/frankkopp/corvid/internal/types"
)

// MoveSlice is a []Move with deque-like helpers layered on top of the
// plain Go slice operations.
type MoveSlice []Move

// NewMoveSlice allocates an empty MoveSlice with the given backing capacity.
func NewMoveSlice(capacity int) *MoveSlice {
	backing := make([]Move, 0, capacity)
	return (*MoveSlice)(&backing)
}

// Len reports how many moves are currently stored.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap reports the capacity of the underlying array.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends a move at the end of the list.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the last move. Panics on an empty list.
func (ms *MoveSlice) PopBack() Move {
	n := len(*ms)
	if n == 0 {
		panic("moveslice: PopBack on empty slice")
	}
	last := (*ms)[n-1]
	*ms = (*ms)[:n-1]
	return last
}

// PushFront inserts a move at the head of the list, shifting the remaining
// elements up by one within the existing backing array.
func (ms *MoveSlice) PushFront(m Move) {
	*ms = append(*ms, MoveNone)
	copy((*ms)[1:], *ms)
	(*ms)[0] = m
}

// PopFront removes and returns the first move, shrinking the slice from the
// front. Because this only moves the start-of-slice pointer rather than
// compacting the backing array, repeated use can trigger earlier
// reallocation than PopBack.
func (ms *MoveSlice) PopFront() Move {
	if len(*ms) == 0 {
		panic("moveslice: PopFront on empty slice")
	}
	first := (*ms)[0]
	*ms = (*ms)[1:]
	return first
}

// Front returns, without removing, the move at index 0. Panics if empty.
func (ms *MoveSlice) Front() Move {
	if len(*ms) == 0 {
		panic("moveslice: Front on empty slice")
	}
	return (*ms)[0]
}

// Back returns, without removing, the last move. Panics if empty.
func (ms *MoveSlice) Back() Move {
	n := len(*ms)
	if n == 0 {
		panic("moveslice: Back on empty slice")
	}
	return (*ms)[n-1]
}

// At returns the move at index i, bounds-checked.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of range")
	}
	return (*ms)[i]
}

// Set overwrites the move stored at index i, bounds-checked.
func (ms *MoveSlice) Set(i int, move Move) {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of range")
	}
	(*ms)[i] = move
}

// Filter keeps, in place, only the moves for which keep returns true.
// The backing array is reused; no new allocation happens.
func (ms *MoveSlice) Filter(keep func(index int) bool) {
	kept := (*ms)[:0]
	for i, m := range *ms {
		if keep(i) {
			kept = append(kept, m)
		}
	}
	*ms = kept
}

// FilterCopy appends every move for which keep returns true onto dest,
// leaving the receiver untouched.
func (ms *MoveSlice) FilterCopy(dest *MoveSlice, keep func(index int) bool) {
	for i, m := range *ms {
		if keep(i) {
			*dest = append(*dest, m)
		}
	}
}

// Clone returns an independent copy with the same length and capacity.
func (ms *MoveSlice) Clone() *MoveSlice {
	cloned := make([]Move, ms.Len(), ms.Cap())
	copy(cloned, *ms)
	return (*MoveSlice)(&cloned)
}

// Equals reports whether ms and other hold the same moves in the same order.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i := range *ms {
		if (*ms)[i] != (*other)[i] {
			return false
		}
	}
	return true
}

// ForEach invokes f once per stored index, in order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for i := range *ms {
		f(i)
	}
}

// ForEachParallel fans f out across one goroutine per element and blocks
// until all have returned. Callers needing shared state must synchronize it
// themselves; this only guarantees completion, not ordering.
func (ms *MoveSlice) ForEachParallel(f func(index int)) {
	var wg sync.WaitGroup
	wg.Add(len(*ms))
	for i := range *ms {
		go func(idx int) {
			defer wg.Done()
			f(idx)
		}(i)
	}
	wg.Wait()
}

// Clear empties the slice while keeping its current capacity, so the
// backing array can be reused on the next fill without triggering the GC.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Sort orders moves from highest to lowest Value field (the top 16 bits of
// the packed Move) using a stable insertion sort, which suits the small,
// mostly-presorted lists move ordering produces. Moves that tie on Value
// keep their relative order.
func (ms *MoveSlice) Sort() {
	const valueMask = Move(0xFFFF0000)
	for i := 1; i < len(*ms); i++ {
		candidate := (*ms)[i]
		j := i
		for j > 0 && (candidate&valueMask) > ((*ms)[j-1]&valueMask) {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = candidate
	}
}

// String renders the move list as "MoveList: [n] { m1, m2, ... }".
func (ms *MoveSlice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveList: [%d] { ", len(*ms))
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

// StringUci renders the move list as a space-separated sequence of moves in
// UCI long algebraic notation, as expected in "bestmove"/"pv" output.
func (ms *MoveSlice) StringUci() string {
	var b strings.Builder
	for i, m := range *ms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.StringUci())
	}
	return b.String()
}
