// Package solver applies a sequence of rotations to a dial and counts how
// often the pointer meets the zero-slot.
package solver

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/paulcager/dial_counter/internal/dial"
)

// Policy selects what the solver counts.
type Policy int

const (
	// Landings counts rotations that leave the pointer on the zero-slot.
	Landings Policy = iota
	// Crossings counts every pass over, or stop on, the zero-slot.
	Crossings
)

var policyNames = []string{"landings", "crossings"}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// PolicyNames lists the names accepted by ParsePolicy.
func PolicyNames() []string {
	return append([]string(nil), policyNames...)
}

func ParsePolicy(s string) (Policy, error) {
	for i, name := range policyNames {
		if strings.EqualFold(s, name) {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("solver: unknown policy %q", s)
}

// ErrNotReady matches any *NotReadyError with errors.Is.
var ErrNotReady = errors.New("solver: answer requested before solve")

// NotReadyError is returned when the answer is requested before Solve.
type NotReadyError struct {
	Policy Policy
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("solver: %s answer requested before solve", e.Policy)
}

func (e *NotReadyError) Is(target error) bool {
	return target == ErrNotReady
}

// Stats summarises a solved run.
type Stats struct {
	Rotations int
	Clicks    int // total distance turned, regardless of direction; capped at math.MaxInt
	Landings  int
	Crossings int // only counted under the Crossings policy; capped at math.MaxInt
	Position  int
}

type Solver struct {
	dial      *dial.Dial
	rotations []int
	policy    Policy

	answer *int
	stats  Stats
}

// New returns a solver that owns d and a copy of rotations.
func New(d *dial.Dial, rotations []int, policy Policy) (*Solver, error) {
	if d == nil {
		return nil, fmt.Errorf("solver: nil dial")
	}
	if policy != Landings && policy != Crossings {
		return nil, fmt.Errorf("solver: unknown policy %v", policy)
	}

	return &Solver{
		dial:      d,
		rotations: append([]int(nil), rotations...),
		policy:    policy,
		stats:     Stats{Position: d.Pos()},
	}, nil
}

func (s *Solver) Policy() Policy { return s.policy }

// Solve applies every rotation once, in order. Later calls do nothing.
func (s *Solver) Solve() {
	if s.answer != nil {
		return
	}

	st := Stats{}
	for _, clicks := range s.rotations {
		if s.policy == Crossings {
			st.Crossings = addCapped(st.Crossings, s.dial.RotateCounting(clicks))
		} else {
			s.dial.Rotate(clicks)
		}
		if s.dial.AtZero() {
			st.Landings++
		}
		st.Rotations++
		st.Clicks = addCapped(st.Clicks, abs(clicks))
	}
	st.Position = s.dial.Pos()

	answer := st.Landings
	if s.policy == Crossings {
		answer = st.Crossings
	}
	s.stats = st
	s.answer = &answer
}

func (s *Solver) Answer() (int, error) {
	if s.answer == nil {
		return 0, &NotReadyError{Policy: s.policy}
	}
	return *s.answer, nil
}

func (s *Solver) Stats() Stats {
	return s.stats
}

// abs of math.MinInt is reported as math.MaxInt.
func abs(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}
	if n < 0 {
		return -n
	}
	return n
}

// addCapped adds two non-negative counts, stopping at math.MaxInt.
func addCapped(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
