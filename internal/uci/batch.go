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

package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/frankkopp/corvid/internal/evaluator"
	"github.com/frankkopp/corvid/internal/position"
	"github.com/frankkopp/corvid/internal/search"
	"github.com/frankkopp/corvid/internal/testsuite"
)

// evalCommand implements "eval <input.fen> <output.csv> <depth>": reads one
// FEN per line from input.fen and appends a "FEN,score" line to output.csv
// for each. depth == 0 means a static evaluation only; depth > 0 runs a
// fixed-depth search and scores the position with the resulting best value.
func (u *UciHandler) evalCommand(tokens []string) {
	if len(tokens) != 4 {
		msg := "Command 'eval' malformed. Usage: eval <input.fen> <output.csv> <depth>"
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	depth, err := strconv.Atoi(tokens[3])
	if err != nil {
		msg := out.Sprintf("Command 'eval': depth not a number: %s", tokens[3])
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}

	fens, err := readLines(tokens[1])
	if err != nil {
		msg := out.Sprintf("Command 'eval': could not read %s: %s", tokens[1], err)
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}

	outFile, err := os.Create(tokens[2])
	if err != nil {
		msg := out.Sprintf("Command 'eval': could not create %s: %s", tokens[2], err)
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	defer func() { _ = outFile.Close() }()

	eval := evaluator.NewEvaluator()
	var s *search.Search
	if depth > 0 {
		s = search.NewSearch()
	}
	writer := bufio.NewWriter(outFile)
	defer func() { _ = writer.Flush() }()

	for _, fen := range fens {
		fen = strings.TrimSpace(fen)
		if fen == "" {
			continue
		}
		pos, err := position.NewPositionFen(fen)
		if err != nil {
			log.Warningf("Command 'eval': skipping invalid FEN %q: %s", fen, err)
			continue
		}
		var score string
		if depth == 0 {
			score = eval.Evaluate(pos).String()
		} else {
			sl := search.NewSearchLimits()
			sl.Depth = depth
			s.NewGame()
			s.StartSearch(*pos, *sl)
			s.WaitWhileSearching()
			score = s.LastSearchResult().BestValue.String()
		}
		fmt.Fprintf(writer, "%s,%s\n", fen, score)
	}
	u.SendInfoString(out.Sprintf("eval: wrote %d positions to %s", len(fens), tokens[2]))
}

// evalTestCommand implements "evaltest <positions.fen>": for every position
// in the file, evaluates the position and its color-flipped mirror and
// reports any pair whose scores are not numerically equal. A correct static
// evaluation must be symmetric - it scores a position the same way
// regardless of which side of the board is "White".
func (u *UciHandler) evalTestCommand(tokens []string) {
	if len(tokens) != 2 {
		msg := "Command 'evaltest' malformed. Usage: evaltest <positions.fen>"
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	fens, err := readLines(tokens[1])
	if err != nil {
		msg := out.Sprintf("Command 'evaltest': could not read %s: %s", tokens[1], err)
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}

	eval := evaluator.NewEvaluator()
	tested, mismatches := 0, 0
	for _, fen := range fens {
		fen = strings.TrimSpace(fen)
		if fen == "" {
			continue
		}
		pos, err := position.NewPositionFen(fen)
		if err != nil {
			log.Warningf("Command 'evaltest': skipping invalid FEN %q: %s", fen, err)
			continue
		}
		mirrored, err := mirrorFen(fen)
		if err != nil {
			log.Warningf("Command 'evaltest': could not mirror FEN %q: %s", fen, err)
			continue
		}
		mirroredPos, err := position.NewPositionFen(mirrored)
		if err != nil {
			log.Warningf("Command 'evaltest': mirrored FEN invalid %q: %s", mirrored, err)
			continue
		}
		tested++
		v1 := eval.Evaluate(pos)
		v2 := eval.Evaluate(mirroredPos)
		if v1 != v2 {
			mismatches++
			u.SendInfoString(out.Sprintf("asymmetric eval: %s = %d, mirror %s = %d", fen, v1, mirrored, v2))
		}
	}
	u.SendInfoString(out.Sprintf("evaltest: %d positions tested, %d asymmetric", tested, mismatches))
}

// benchCommand implements "bench <suite.epd> <moveTime>": runs a fixed-time
// search over every position in an EPD test suite and reports aggregate
// nodes/time/nps via the same internal/testsuite machinery used for
// strength testing.
func (u *UciHandler) benchCommand(tokens []string) {
	if len(tokens) != 3 {
		msg := "Command 'bench' malformed. Usage: bench <suite.epd> <moveTime>"
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	moveTimeMs, err := strconv.ParseInt(tokens[2], 10, 64)
	if err != nil {
		msg := out.Sprintf("Command 'bench': moveTime not a number: %s", tokens[2])
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	suite, err := testsuite.NewTestSuite(tokens[1], time.Duration(moveTimeMs)*time.Millisecond, 0)
	if err != nil {
		msg := out.Sprintf("Command 'bench': could not load suite %s: %s", tokens[1], err)
		u.SendInfoString(msg)
		log.Warning(msg)
		return
	}
	suite.RunTests()
}

// readLines reads a text file and returns its non-empty lines.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// mirrorFen returns the FEN of the position obtained by rotating the board
// 180 degrees and swapping piece colors - the same position from the other
// side's point of view. Used to check evaluation symmetry: a correct
// evaluator must score a position and its mirror identically.
func mirrorFen(fen string) (string, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return "", fmt.Errorf("not enough fields in FEN: %q", fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return "", fmt.Errorf("expected 8 ranks in FEN: %q", fen)
	}
	mirroredRanks := make([]string, 8)
	for i, rank := range ranks {
		mirroredRanks[7-i] = swapCase(rank)
	}
	placement := strings.Join(mirroredRanks, "/")

	activeColor := "b"
	if fields[1] == "b" {
		activeColor = "w"
	}

	castling := fields[2]
	if castling != "-" {
		castling = swapCase(castling)
	}

	epSquare := fields[3]
	if epSquare != "-" {
		if len(epSquare) != 2 {
			return "", fmt.Errorf("invalid en passant square: %q", epSquare)
		}
		rank := epSquare[1]
		mirroredRank := byte('1' + '8' - rank)
		epSquare = string(epSquare[0]) + string(mirroredRank)
	}

	result := []string{placement, activeColor, castling, epSquare}
	result = append(result, fields[4:]...)
	return strings.Join(result, " "), nil
}

func swapCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
