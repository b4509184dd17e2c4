package model

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const maxPrealloc = 1 << 16

var (
	ErrMalformedHeader   = errors.New("malformed size header")
	ErrInvalidDimensions = errors.New("invalid map dimensions")
	ErrRowLength         = errors.New("row length does not match width")
	ErrUnknownCell       = errors.New("unknown cell character")
	ErrRowCount          = errors.New("row count does not match height")
)

// ParseError describes where a map failed to parse.
// Line is the 1-based line of the input; Column and Row locate a bad character on the grid.
type ParseError struct {
	Line   int
	Column int
	Row    int
	Char   rune
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Err == ErrUnknownCell:
		return fmt.Sprintf("line %d: %v %q at position (%d, %d)", e.Line, e.Err, e.Char, e.Column, e.Row)
	case e.Detail != "":
		return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Detail)
	default:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadFromPath reads a map file with a size header
func LoadFromPath(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFromPath] failed to read map file: %+v", path)
	}

	game, err := ParseMapWithHeader(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFromPath] failed to parse map file: %+v", path)
	}
	return game, nil
}

// ParseMapWithHeader parses a map whose first line is "<width>x<height>"
func ParseMapWithHeader(text string) (*Game, error) {
	scanner := newLineScanner(text)
	if !scanner.Scan() {
		return nil, &ParseError{Line: 1, Err: ErrMalformedHeader, Detail: "empty map"}
	}

	width, height, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}
	return parseRows(scanner, width, height, 1)
}

// ParseSizedMap parses exactly height rows of width cells each
func ParseSizedMap(text string, width, height int) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, &ParseError{
			Line:   1,
			Err:    ErrInvalidDimensions,
			Detail: fmt.Sprintf("%dx%d", width, height),
		}
	}
	return parseRows(newLineScanner(text), width, height, 0)
}

func parseHeader(line string) (width, height int, err error) {
	tokens := strings.Split(line, "x")
	if len(tokens) != 2 {
		return 0, 0, &ParseError{Line: 1, Err: ErrMalformedHeader, Detail: strconv.Quote(line)}
	}

	dims := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.ParseUint(tok, 10, 31)
		if err != nil || n == 0 {
			return 0, 0, &ParseError{
				Line:   1,
				Err:    ErrMalformedHeader,
				Detail: fmt.Sprintf("%q is not a positive integer", tok),
			}
		}
		dims[i] = int(n)
	}
	return dims[0], dims[1], nil
}

// parseRows fills a new game row by row; lineOffset is the number of input lines before the first row
func parseRows(scanner *bufio.Scanner, width, height, lineOffset int) (*Game, error) {
	// the buffer grows with the input so a bogus header cannot force a huge allocation
	states := make([]Cell, 0, min(width*height, maxPrealloc))

	y := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNo := lineOffset + y + 1

		if y >= height {
			return nil, &ParseError{
				Line:   lineNo,
				Err:    ErrRowCount,
				Detail: fmt.Sprintf("more than %d rows", height),
			}
		}
		if n := utf8.RuneCountInString(line); n != width {
			return nil, &ParseError{
				Line:   lineNo,
				Err:    ErrRowLength,
				Detail: fmt.Sprintf("got %d cells, want %d", n, width),
			}
		}

		x := 0
		for _, r := range line {
			cell, ok := CellFromRune(r)
			if !ok {
				return nil, &ParseError{Line: lineNo, Column: x, Row: y, Char: r, Err: ErrUnknownCell}
			}
			states = append(states, cell)
			x++
		}
		y++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[parseRows] failed to scan map")
	}

	if y != height {
		return nil, &ParseError{
			Line:   lineOffset + y + 1,
			Err:    ErrRowCount,
			Detail: fmt.Sprintf("got %d rows, want %d", y, height),
		}
	}
	game := &Game{grid: &Grid{width: width, height: height}}
	game.grid.replaceStates(states)
	return game, nil
}

func newLineScanner(text string) *bufio.Scanner {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 4096), len(text)+1)
	return scanner
}
