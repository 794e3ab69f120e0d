package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"gomoku/engine"
)

const (
	boardLeft = 4
	boardTop  = 2
)

var (
	styleGrid   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHuman  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleEngine = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleText   = tcell.StyleDefault
)

type ui struct {
	screen  tcell.Screen
	game    *session
	cursor  engine.Move
	pressed bool
}

func main() {
	size := flag.Int("size", engine.DefaultBoardSize, "board size")
	seed := flag.Int64("seed", 0, "random seed for the engine (0 = clock)")
	engineFirst := flag.Bool("engine-first", false, "let the engine open the game")
	flag.Parse()

	if *size < engine.WinLength || *size > engine.MaxBoardSize {
		fmt.Fprintf(os.Stderr, "board size must be between %d and %d\n", engine.WinLength, engine.MaxBoardSize)
		os.Exit(2)
	}
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	selector := engine.NewSelector(engine.CellEngine, rand.New(rand.NewSource(s)))

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[tui] create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[tui] init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(styleText)

	u := &ui{
		screen: screen,
		game:   newSession(*size, selector, *engineFirst),
		cursor: engine.Move{Row: *size / 2, Col: *size / 2},
	}
	u.run()
}

func (u *ui) run() {
	for {
		u.draw()
		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if !u.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			u.handleMouse(ev)
		}
	}
}

func (u *ui) handleKey(ev *tcell.EventKey) bool {
	size := u.game.board.Size()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		u.moveCursor(-1, 0, size)
	case tcell.KeyDown:
		u.moveCursor(1, 0, size)
	case tcell.KeyLeft:
		u.moveCursor(0, -1, size)
	case tcell.KeyRight:
		u.moveCursor(0, 1, size)
	case tcell.KeyEnter:
		u.place(u.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			u.moveCursor(-1, 0, size)
		case 'j':
			u.moveCursor(1, 0, size)
		case 'h':
			u.moveCursor(0, -1, size)
		case 'l':
			u.moveCursor(0, 1, size)
		case ' ':
			u.place(u.cursor)
		case 'r':
			u.game.reset(size)
		}
	}
	return true
}

func (u *ui) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	if down && !u.pressed {
		x, y := ev.Position()
		if move, ok := u.cellAt(x, y); ok {
			u.cursor = move
			u.place(move)
		}
	}
	u.pressed = down
}

func (u *ui) moveCursor(dRow, dCol, size int) {
	next := engine.Move{Row: u.cursor.Row + dRow, Col: u.cursor.Col + dCol}
	if next.IsValid(size) {
		u.cursor = next
	}
}

func (u *ui) place(move engine.Move) {
	if err := u.game.play(move); err != nil {
		u.game.message = err.Error()
	}
}

func (u *ui) cellAt(x, y int) (engine.Move, bool) {
	if x < boardLeft || y < boardTop {
		return engine.Move{}, false
	}
	move := engine.Move{Row: y - boardTop, Col: (x - boardLeft) / 2}
	return move, move.IsValid(u.game.board.Size())
}

func (u *ui) draw() {
	s := u.screen
	s.Clear()
	board := u.game.board
	size := board.Size()

	drawText(s, 0, 0, styleText, "five in a row: arrows/hjkl move, enter/space place, r restart, q quit")
	for col := 0; col < size; col++ {
		drawText(s, boardLeft+col*2, boardTop-1, styleGrid, fmt.Sprintf("%d", col%10))
	}
	for row := 0; row < size; row++ {
		drawText(s, 0, boardTop+row, styleGrid, fmt.Sprintf("%2d", row))
		for col := 0; col < size; col++ {
			cell := board.At(row, col)
			style := styleGrid
			switch cell {
			case engine.CellHuman:
				style = styleHuman
			case engine.CellEngine:
				style = styleEngine
			}
			if u.game.hasLast && u.game.last.Move.Equals(engine.Move{Row: row, Col: col}) {
				style = style.Underline(true)
			}
			if u.game.onWinLine(row, col) {
				style = style.Background(tcell.ColorYellow)
			}
			if u.cursor.Row == row && u.cursor.Col == col {
				style = style.Reverse(true)
			}
			s.SetContent(boardLeft+col*2, boardTop+row, cell.Rune(), nil, style)
		}
	}
	statusY := boardTop + size + 1
	drawText(s, 0, statusY, styleText, u.game.message)
	if u.game.hasLast {
		drawText(s, 0, statusY+1, styleGrid, u.game.last.String())
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
