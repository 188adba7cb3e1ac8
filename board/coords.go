package board

import (
	"errors"
	"fmt"
	"strings"
)

// Text coordinate system:
// - Columns: A-H for an 8x8 board, left to right
// - Rows: 1-8, top to bottom
// - Example: D3 is column index 3, row index 2
//
// Tokens are exactly two characters, so boards larger than 9x9 have no text form.

const columnLetters = "ABCDEFGHI"

// MaxNotationSize is the largest board size ParseCoord can address.
const MaxNotationSize = len(columnLetters)

// ErrCoordinateFormat is matched by every error returned from ParseCoord.
var ErrCoordinateFormat = errors.New("invalid coordinate")

// CoordinateFormatError describes a malformed coordinate token.
type CoordinateFormatError struct {
	Token  string
	Reason string
}

func (e *CoordinateFormatError) Error() string {
	return fmt.Sprintf("invalid coordinate %q: %s", e.Token, e.Reason)
}

func (e *CoordinateFormatError) Unwrap() error {
	return ErrCoordinateFormat
}

// Coord addresses a cell by column and row, both 0-indexed from the top left.
type Coord struct {
	Col int
	Row int
}

// String renders c as a text token, e.g. (3, 2) -> "D3".
func (c Coord) String() string {
	if c.Col < 0 || c.Col >= MaxNotationSize || c.Row < 0 {
		return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
	}
	return fmt.Sprintf("%c%d", columnLetters[c.Col], c.Row+1)
}

// ParseCoord converts a text token such as "d3" to a Coord on a board of the given size.
func ParseCoord(token string, size int) (Coord, error) {
	if len(token) != 2 {
		return Coord{}, &CoordinateFormatError{Token: token, Reason: "expected a letter followed by a digit"}
	}
	if size > MaxNotationSize {
		size = MaxNotationSize
	}

	letter := strings.ToUpper(token[:1])
	col := strings.Index(columnLetters[:size], letter)
	if col < 0 {
		return Coord{}, &CoordinateFormatError{Token: token, Reason: fmt.Sprintf("column %s out of range", letter)}
	}

	digit := token[1]
	if digit < '0' || digit > '9' {
		return Coord{}, &CoordinateFormatError{Token: token, Reason: fmt.Sprintf("%q is not a row number", digit)}
	}
	row := int(digit-'0') - 1
	if row < 0 || row >= size {
		return Coord{}, &CoordinateFormatError{Token: token, Reason: fmt.Sprintf("row %c out of range", digit)}
	}

	return Coord{Col: col, Row: row}, nil
}
