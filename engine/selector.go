package engine

import (
	"fmt"
	"math/rand"
	"time"
)

type Rule string

const (
	RuleNone        Rule = "none"
	RuleWin         Rule = "win"
	RuleBlockWin    Rule = "block-win"
	RuleBlockThreat Rule = "block-threat"
	RulePositional  Rule = "positional"
)

// Intn is the randomness the selector needs. *rand.Rand satisfies it.
type Intn interface {
	Intn(n int) int
}

type Decision struct {
	Move  Move
	OK    bool
	Rule  Rule
	Score int
	// Candidates holds every cell tied on Score when Rule is RulePositional.
	Candidates []Move
}

func (d Decision) String() string {
	if !d.OK {
		return fmt.Sprintf("rule=%s no move", d.Rule)
	}
	if d.Rule == RulePositional {
		return fmt.Sprintf("rule=%s move=%v score=%d candidates=%d", d.Rule, d.Move, d.Score, len(d.Candidates))
	}
	return fmt.Sprintf("rule=%s move=%v", d.Rule, d.Move)
}

// Selector picks the next move for one side. Scanners run in order and the
// first hit wins; otherwise the empty cells with the best ScoreBoard after a
// trial placement are tied and one is drawn at random.
//
// A Selector holds no game state, but its random source is not safe for
// concurrent use.
type Selector struct {
	side     Cell
	scanners []Scanner
	rng      Intn
}

func NewSelector(side Cell, rng Intn) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{
		side: side,
		scanners: []Scanner{
			WinScanner(side),
			BlockWinScanner(side),
			BlockThreatScanner(side),
		},
		rng: rng,
	}
}

func NewSeededSelector(side Cell, seed int64) *Selector {
	return NewSelector(side, rand.New(rand.NewSource(seed)))
}

func (s *Selector) SelectMove(b Board) (Move, bool) {
	d := s.Decide(b)
	return d.Move, d.OK
}

func (s *Selector) Decide(b Board) Decision {
	for _, scanner := range s.scanners {
		if move, ok := scanner.Scan(b); ok {
			return Decision{Move: move, OK: true, Rule: Rule(scanner.Name())}
		}
	}
	best, candidates := PositionalCandidates(b, s.side)
	if len(candidates) == 0 {
		return Decision{Rule: RuleNone}
	}
	return Decision{
		Move:       candidates[s.rng.Intn(len(candidates))],
		OK:         true,
		Rule:       RulePositional,
		Score:      best,
		Candidates: candidates,
	}
}

// PositionalCandidates tries side on every empty cell and returns the best
// ScoreBoard value with all cells reaching it, in row-major order. b is not
// modified; the trial placements go to a scratch copy.
func PositionalCandidates(b Board, side Cell) (int, []Move) {
	scratch := b.Clone()
	size := b.Size()
	best := 0
	var candidates []Move
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if scratch.At(row, col) != CellEmpty {
				continue
			}
			scratch.set(row, col, side)
			score := ScoreBoard(scratch, side)
			scratch.set(row, col, CellEmpty)
			switch {
			case len(candidates) == 0 || score > best:
				best = score
				candidates = append(candidates[:0], Move{Row: row, Col: col})
			case score == best:
				candidates = append(candidates, Move{Row: row, Col: col})
			}
		}
	}
	return best, candidates
}

// SelectMove decides for CellEngine with a time-seeded random source.
func SelectMove(b Board) (Move, bool) {
	return NewSelector(CellEngine, nil).SelectMove(b)
}
