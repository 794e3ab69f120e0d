package engine

// Scanner looks at a board and either proposes a move or passes.
type Scanner interface {
	Name() string
	Scan(b Board) (Move, bool)
}

// ThreatScanner finds the first window of Span cells holding exactly Count
// stones of Side plus at least one empty cell, and returns that window's
// first empty cell.
type ThreatScanner struct {
	Rule  Rule
	Side  Cell
	Count int
	Span  int
}

func (s ThreatScanner) Name() string {
	return string(s.Rule)
}

func (s ThreatScanner) Scan(b Board) (Move, bool) {
	var found Move
	ok := forEachWindow(b.Size(), s.Span, func(w Window) bool {
		count := 0
		firstEmpty := -1
		for k := 0; k < w.Length; k++ {
			m := w.At(k)
			switch b.At(m.Row, m.Col) {
			case s.Side:
				count++
			case CellEmpty:
				if firstEmpty < 0 {
					firstEmpty = k
				}
			}
		}
		if count != s.Count || firstEmpty < 0 {
			return false
		}
		found = w.At(firstEmpty)
		return true
	})
	return found, ok
}

// WinScanner completes a five for side.
func WinScanner(side Cell) ThreatScanner {
	return ThreatScanner{Rule: RuleWin, Side: side, Count: WinLength - 1, Span: WinLength}
}

// BlockWinScanner fills the hole of an opposing four.
func BlockWinScanner(side Cell) ThreatScanner {
	return ThreatScanner{Rule: RuleBlockWin, Side: Opponent(side), Count: WinLength - 1, Span: WinLength}
}

// BlockThreatScanner answers an opposing three inside a ThreatLength window.
// Broken threes such as X.XX count, not only a leading XXX.
func BlockThreatScanner(side Cell) ThreatScanner {
	return ThreatScanner{Rule: RuleBlockThreat, Side: Opponent(side), Count: ThreatLength - 1, Span: ThreatLength}
}
