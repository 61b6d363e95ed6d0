/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package evaluator

import (
	. "github.com/frankkopp/corvid/internal/config"
	. "github.com/frankkopp/corvid/internal/types"
	"github.com/frankkopp/corvid/internal/util"
)

// evaluatePawns scores the pawn structure of both sides from White's point
// of view. Results are cached per pawn-structure key as this part of the
// evaluation only changes when a pawn moves, is captured or promotes.
func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	// look on cache table
	if Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			tmpScore.MidGameValue += int(entry.score.MidGameValue)
			tmpScore.EndGameValue += int(entry.score.EndGameValue)
			return &tmpScore
		}
	}

	// no cache hit - calculate both sides
	white := e.evaluatePawnsForColor(White)
	black := e.evaluatePawnsForColor(Black)
	tmpScore.MidGameValue = white.MidGameValue - black.MidGameValue
	tmpScore.EndGameValue = white.EndGameValue - black.EndGameValue

	// store in cache
	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

// evaluatePawnsForColor scores the given color's pawn structure in isolation:
// isolated, doubled, passed, blocked, phalanx (connected) and supported
// pawns all add or subtract a mid/end game term configured via
// config.Settings.Eval.
func (e *Evaluator) evaluatePawnsForColor(us Color) Score {
	var s Score

	them := us.Flip()
	ownPawns := e.position.PiecesBb(us, Pawn)
	enemyPawns := e.position.PiecesBb(them, Pawn)
	ourKing := e.position.KingSquare(us)
	theirKing := e.position.KingSquare(them)
	occupied := e.position.OccupiedAll()

	remaining := ownPawns
	for remaining != BbZero {
		sq := remaining.PopLsb()

		// isolated - no own pawn on a neighbouring file
		if sq.NeighbourFilesMask()&ownPawns == BbZero {
			s.MidGameValue += int(Settings.Eval.PawnIsolatedMidMalus)
			s.EndGameValue += int(Settings.Eval.PawnIsolatedEndMalus)
		}

		// doubled - counts once per extra pawn stacked behind this one
		var behindOnFileMask Bitboard
		if us == White {
			behindOnFileMask = sq.RanksSouthMask() & sq.FileOf().Bb()
		} else {
			behindOnFileMask = sq.RanksNorthMask() & sq.FileOf().Bb()
		}
		if behindOnFileMask&ownPawns != BbZero {
			s.MidGameValue += int(Settings.Eval.PawnDoubledMidMalus)
			s.EndGameValue += int(Settings.Eval.PawnDoubledEndMalus)
		}

		// phalanx - own pawn on the same rank on a neighbouring file
		if sq.NeighbourFilesMask()&sq.RankOf().Bb()&ownPawns != BbZero {
			s.MidGameValue += int(Settings.Eval.PawnPhalanxMidBonus)
			s.EndGameValue += int(Settings.Eval.PawnPhalanxEndBonus)
		}

		// supported - defended by an own pawn from behind
		if GetPawnAttacks(them, sq)&ownPawns != BbZero {
			s.MidGameValue += int(Settings.Eval.PawnSupportedMidBonus)
			s.EndGameValue += int(Settings.Eval.PawnSupportedEndBonus)
		}

		// blocked - the stop square is occupied by any piece
		stopSq := sq.To(us.MoveDirection())
		if stopSq.IsValid() && occupied.Has(stopSq) {
			s.MidGameValue += int(Settings.Eval.PawnBlockedMidMalus)
			s.EndGameValue += int(Settings.Eval.PawnBlockedEndMalus)
		}

		// passed - no enemy pawn on this file or a neighbouring file ahead of it
		if sq.PassedPawnMask(us)&enemyPawns == BbZero {
			relativeRank := int(sq.RankOf())
			if us == Black {
				relativeRank = int(Rank8) - relativeRank
			}
			s.MidGameValue += int(Settings.Eval.PawnPassedMidBonus) * relativeRank
			s.EndGameValue += int(Settings.Eval.PawnPassedEndBonus) * relativeRank

			// endgame king-distance term: reward having our king closer than
			// the enemy king to the pawn's promotion square.
			promoRank := Rank8
			if us == Black {
				promoRank = Rank1
			}
			promoSq := SquareOf(sq.FileOf(), promoRank)
			ourDist := kingDistance(ourKing, promoSq)
			theirDist := kingDistance(theirKing, promoSq)
			s.EndGameValue += (theirDist - ourDist) * 5
		}
	}

	return s
}

// kingDistance returns the Chebyshev (king-move) distance between two squares.
func kingDistance(a Square, b Square) int {
	fileDiff := util.Abs(int(a.FileOf()) - int(b.FileOf()))
	rankDiff := util.Abs(int(a.RankOf()) - int(b.RankOf()))
	return util.Max(fileDiff, rankDiff)
}
