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

package attacks

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/corvid/internal/logging"
	"github.com/frankkopp/corvid/internal/position"
	. "github.com/frankkopp/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// Attacks caches the full attack/defense picture of one position: which
// squares each side attacks, from where, and how much mobility each side
// has. Recomputing this from scratch on every query would be wasteful
// during search, so a single Attacks value is kept per node and only
// recomputed when the position's Zobrist key changes.
type Attacks struct {
	log *logging.Logger

	// Zobrist is the key of the position this cache currently reflects.
	Zobrist position.Key
	// From holds, per color and origin square, the squares that piece
	// attacks or defends (mask against own pieces for defenders, against
	// the complement for attackers).
	From [ColorLength][SqLength]Bitboard
	// To holds, per color and target square, which of that color's pieces
	// reach the square.
	To [ColorLength][SqLength]Bitboard
	// All holds, per color, every square attacked or defended by that
	// side's non-pawn pieces; pawn attacks are kept separately in Pawns.
	All [ColorLength]Bitboard
	// Piece holds, per color and piece type, the union of attacked squares.
	Piece [ColorLength][PtLength]Bitboard
	// Mobility totals legal-looking destination squares per color
	// (squares occupied by own pieces are excluded).
	Mobility [ColorLength]int
	// Pawns holds the squares attacked by that color's pawns.
	Pawns [ColorLength]Bitboard
	// PawnsDouble holds the squares attacked by two pawns of that color.
	PawnsDouble [ColorLength]Bitboard
}

// NewAttacks returns a zero-valued Attacks ready for its first Compute call.
func NewAttacks() *Attacks {
	return &Attacks{
		log: myLogging.GetLog(),
	}
}

// Clear zeroes every field in place rather than allocating a fresh struct,
// which is considerably cheaper when an Attacks is reused across many
// nodes of a search tree.
func (a *Attacks) Clear() {
	a.Zobrist = 0
	for sq := 0; sq < SqLength; sq++ {
		a.From[White][sq] = BbZero
		a.From[Black][sq] = BbZero
		a.To[White][sq] = BbZero
		a.To[Black][sq] = BbZero
	}
	for pt := PtNone; pt < PtLength; pt++ {
		a.Piece[White][pt] = BbZero
		a.Piece[Black][pt] = BbZero
	}
	a.All[White] = BbZero
	a.All[Black] = BbZero
	a.Mobility[White] = 0
	a.Mobility[Black] = 0
	a.Pawns[White] = 0
	a.Pawns[Black] = 0
	a.PawnsDouble[White] = 0
	a.PawnsDouble[Black] = 0
}

// Compute (re-)derives every field from p, unless p's Zobrist key already
// matches the cached one, in which case the call is a cheap no-op.
func (a *Attacks) Compute(p *position.Position) {
	if p.ZobristKey() == a.Zobrist {
		a.log.Debugf("attacks already computed for this position, skipping")
		return
	}
	a.Zobrist = p.ZobristKey()
	a.nonPawnAttacks(p)
	a.pawnAttacks(p)
}

// slidingAndLeapingTypes are the piece types handled by nonPawnAttacks -
// every piece type except Pawn, which needs its own shift-based logic.
var slidingAndLeapingTypes = [5]PieceType{King, Knight, Bishop, Rook, Queen}

// nonPawnAttacks fills From/To/Piece/All/Mobility for every piece type
// other than pawns, for both colors.
func (a *Attacks) nonPawnAttacks(p *position.Position) {
	allPieces := p.OccupiedAll()

	for c := White; c <= Black; c++ {
		ownPieces := p.OccupiedBb(c)
		for _, pt := range slidingAndLeapingTypes {
			remaining := p.PiecesBb(c, pt)
			for remaining != BbZero {
				from := remaining.PopLsb()
				reach := GetAttacksBb(pt, from, allPieces)
				a.From[c][from] = reach
				a.Piece[c][pt] |= reach
				a.All[c] |= reach
				for targets := reach; targets != BbZero; {
					to := targets.PopLsb()
					a.To[c][to].PushSquare(from)
				}
				a.Mobility[c] += (reach &^ ownPieces).PopCount()
			}
		}
	}
}

// pawnAttacks fills Pawns and PawnsDouble from the current pawn bitboards.
// Pawns attack diagonally forward, so a west and an east shift of the pawn
// bitboard in the color's direction of travel gives every attacked square;
// their intersection gives squares defended twice.
func (a *Attacks) pawnAttacks(p *position.Position) {
	captureDirs := [ColorLength][2]Direction{{Northwest, Northeast}, {Southwest, Southeast}}
	for _, c := range [2]Color{White, Black} {
		pawns := p.PiecesBb(c, Pawn)
		west := ShiftBitboard(pawns, captureDirs[c][0])
		east := ShiftBitboard(pawns, captureDirs[c][1])
		a.Pawns[c] = west | east
		a.PawnsDouble[c] = west & east
	}
}

// AttacksTo finds every piece of color that attacks square, including an
// en-passant capturer if one exists. It works backwards: generate each
// piece type's attack pattern as if it stood on square, then intersect
// with where that piece type actually sits.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	occupiedAll := p.OccupiedAll()

	attackers := (GetPawnAttacks(color.Flip(), square) & p.PiecesBb(color, Pawn)) |
		(GetAttacksBb(Knight, square, occupiedAll) & p.PiecesBb(color, Knight)) |
		(GetAttacksBb(King, square, occupiedAll) & p.PiecesBb(color, King)) |
		(GetAttacksBb(Rook, square, occupiedAll) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		(GetAttacksBb(Bishop, square, occupiedAll) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)))

	if ep := p.GetEnPassantSquare(); ep != SqNone && ep == square {
		capturedPawnSq := ep.To(color.Flip().MoveDirection())
		if capturedPawnSq.NeighbourFilesMask()&capturedPawnSq.RankOf().Bb()&p.PiecesBb(color, Pawn) != BbZero {
			attackers |= capturedPawnSq.Bb()
		}
	}
	return attackers
}

// RevealedAttacks returns the sliding attacks on square that become live
// once occupied (a board state with one or more pieces already removed)
// opens a line to it. Only rooks, bishops and queens can have their
// attacks revealed this way; leapers never do.
func RevealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}
