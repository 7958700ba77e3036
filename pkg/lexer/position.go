package lexer

import (
	"fmt"
	"strings"
)

// Position locates a byte in the source. Line and Column count from 1.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func NewPosition(line, column, offset int) Position {
	return Position{
		Line:   line,
		Column: column,
		Offset: offset,
	}
}

// PositionAt converts a byte offset in text to a Position. Offsets past the
// end are clamped to the end.
func PositionAt(text string, offset int) Position {
	offset = min(max(offset, 0), len(text))
	before := text[:offset]
	return NewPosition(strings.Count(before, "\n")+1, offset-strings.LastIndexByte(before, '\n'), offset)
}
