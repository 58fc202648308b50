package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrInvalidMaze indicates a violated start/goal invariant.
	ErrInvalidMaze = errors.New("maze: invalid maze")

	// ErrParse is the parent of every text-format error.
	ErrParse = errors.New("maze: parse error")
	// ErrMissingStart indicates no 'S' marker was found.
	ErrMissingStart = fmt.Errorf("%w: missing start marker", ErrParse)
	// ErrMissingGoal indicates no 'G' marker was found.
	ErrMissingGoal = fmt.Errorf("%w: missing goal marker", ErrParse)
	// ErrDuplicateMarker indicates more than one 'S' or 'G'.
	ErrDuplicateMarker = fmt.Errorf("%w: duplicate marker", ErrParse)
	// ErrUnknownSymbol indicates a character outside the text alphabet.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown symbol", ErrParse)
)
