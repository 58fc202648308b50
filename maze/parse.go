package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Text-format symbols.
const (
	SymbolWall  = '#'
	SymbolOpen  = '.'
	SymbolStart = 'S'
	SymbolGoal  = 'G'
)

// Parse reads a maze in text format from r.
// Trailing blank lines are ignored and '\r' is stripped, so CRLF input parses.
// Exactly one 'S' and one 'G' must be present.
// Complexity: O(R×C).
func Parse(r io.Reader) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return parseRows(lines)
}

// ParseString is Parse over a string.
func ParseString(s string) (*Maze, error) {
	return Parse(strings.NewReader(s))
}

func parseRows(lines []string) (*Maze, error) {
	states := make([][]CellState, len(lines))
	var start, goal Cell
	var haveStart, haveGoal bool
	for r, line := range lines {
		row := make([]CellState, 0, len(line))
		for c, ch := range []rune(line) {
			switch ch {
			case SymbolWall:
				row = append(row, Wall)
			case SymbolOpen, ' ':
				row = append(row, Open)
			case SymbolStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, ch, r, c)
				}
				start, haveStart = Cell{Row: r, Col: c}, true
				row = append(row, Open)
			case SymbolGoal:
				if haveGoal {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, ch, r, c)
				}
				goal, haveGoal = Cell{Row: r, Col: c}, true
				row = append(row, Open)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, ch, r, c)
			}
		}
		states[r] = row
	}

	grid, err := NewGrid(states)
	if err != nil {
		return nil, err
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}

	return NewMaze(grid, start, goal)
}

// Format renders m in text format, one line per row, each terminated by '\n'.
// When start == goal the cell is written as 'S'; such a maze does not parse back.
func Format(m *Maze) string {
	g := m.grid
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		b.WriteString(formatRow(m, r))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatRow(m *Maze, r int) string {
	row := make([]byte, m.grid.cols)
	for c := range row {
		cell := Cell{Row: r, Col: c}
		switch {
		case cell == m.start:
			row[c] = SymbolStart
		case cell == m.goal:
			row[c] = SymbolGoal
		case m.grid.State(cell) == Wall:
			row[c] = SymbolWall
		default:
			row[c] = SymbolOpen
		}
	}
	return string(row)
}
