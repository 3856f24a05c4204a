// Package rotation reads dial rotation commands such as "L68" or "R48".
//
// A command is a direction letter followed by a non-negative decimal
// distance. L turns the dial counter-clockwise and is returned as a negative
// number of clicks, R turns it clockwise and is returned as a positive one.
package rotation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrEmpty     = errors.New("empty command")
	ErrDirection = errors.New("direction must be L or R")
	ErrDistance  = errors.New("distance must be a non-negative integer")
)

// ParseError reports a line that is not a rotation command. Line is 1-based,
// or 0 when the text did not come from a file.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("rotation: line %d: invalid command %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("rotation: invalid command %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse converts a single command into signed clicks.
func Parse(s string) (int, error) {
	if s == "" {
		return 0, &ParseError{Text: s, Err: ErrEmpty}
	}

	var sign int
	switch s[0] {
	case 'L':
		sign = -1
	case 'R':
		sign = 1
	default:
		return 0, &ParseError{Text: s, Err: ErrDirection}
	}

	digits := s[1:]
	if digits == "" || strings.IndexFunc(digits, notDigit) >= 0 {
		return 0, &ParseError{Text: s, Err: ErrDistance}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &ParseError{Text: s, Err: fmt.Errorf("%w: %v", ErrDistance, err)}
	}

	return sign * n, nil
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}

// Read parses one command per line, preserving order. The final line may
// omit its newline; CRLF line endings are accepted.
func Read(r io.Reader) ([]int, error) {
	var rotations []int

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		clicks, err := Parse(text)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = line
			}
			return nil, err
		}
		rotations = append(rotations, clicks)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rotation: reading line %d: %w", line+1, err)
	}

	return rotations, nil
}

// Load reads the commands stored in the named file.
func Load(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
