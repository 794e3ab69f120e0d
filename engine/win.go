package engine

type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeHumanWon
	OutcomeEngineWon
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHumanWon:
		return "human_won"
	case OutcomeEngineWon:
		return "engine_won"
	case OutcomeDraw:
		return "draw"
	default:
		return "running"
	}
}

func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

// HasFive reports whether side owns WinLength consecutive cells in any
// direction. Longer runs count as well.
func HasFive(b Board, side Cell) bool {
	_, ok := FindFive(b, side)
	return ok
}

// FindFive returns the cells of the first winning window for side.
func FindFive(b Board, side Cell) ([]Move, bool) {
	if !side.IsSide() {
		return nil, false
	}
	var line []Move
	found := forEachWindow(b.Size(), WinLength, func(w Window) bool {
		for k := 0; k < w.Length; k++ {
			m := w.At(k)
			if b.At(m.Row, m.Col) != side {
				return false
			}
		}
		line = w.Moves()
		return true
	})
	return line, found
}

// GameOutcome classifies the board. A human five is checked first since the
// human moves first in each round.
func GameOutcome(b Board) Outcome {
	if HasFive(b, CellHuman) {
		return OutcomeHumanWon
	}
	if HasFive(b, CellEngine) {
		return OutcomeEngineWon
	}
	if b.IsFull() {
		return OutcomeDraw
	}
	return OutcomeRunning
}
