// Package dial models a pointer on a ring of discrete integer positions.
package dial

import "fmt"

// Config describes a dial. Pos is optional; a nil Pos starts the pointer at Min.
type Config struct {
	Min int
	Max int
	Pos *int
}

// ValidationError reports a Config that cannot describe a dial.
type ValidationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dial: invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// Dial is a bounded circular counter. The zero-slot is the ring slot at Min.
type Dial struct {
	min    int
	max    int
	pos    int
	travel int
}

func New(cfg Config) (*Dial, error) {
	if cfg.Min < 0 {
		return nil, &ValidationError{Field: "min", Value: cfg.Min, Reason: "must be >= 0"}
	}
	if cfg.Max <= cfg.Min {
		return nil, &ValidationError{Field: "max", Value: cfg.Max, Reason: fmt.Sprintf("must be > %d", cfg.Min)}
	}

	pos := cfg.Min
	if cfg.Pos != nil {
		pos = *cfg.Pos
		if pos < cfg.Min || pos > cfg.Max {
			return nil, &ValidationError{
				Field:  "pos",
				Value:  pos,
				Reason: fmt.Sprintf("must be between %d and %d (inclusive)", cfg.Min, cfg.Max),
			}
		}
	}

	return &Dial{
		min:    cfg.Min,
		max:    cfg.Max,
		pos:    pos,
		travel: cfg.Max - cfg.Min + 1,
	}, nil
}

func (d *Dial) Min() int    { return d.min }
func (d *Dial) Max() int    { return d.max }
func (d *Dial) Pos() int    { return d.pos }
func (d *Dial) Travel() int { return d.travel }

// AtZero reports whether the pointer rests on the zero-slot.
func (d *Dial) AtZero() bool {
	return d.pos == d.min
}

// Rotate turns the dial by clicks slots: positive is clockwise, negative
// counter-clockwise.
func (d *Dial) Rotate(clicks int) {
	d.pos = d.min + wrap(d.pos-d.min+wrap(clicks, d.travel), d.travel)
}

// RotateCounting turns the dial like Rotate and returns how many times the
// pointer passed through or came to rest on the zero-slot along the way.
func (d *Dial) RotateCounting(clicks int) int {
	// Each whole revolution meets the zero-slot exactly once.
	revs := abs(clicks / d.travel)
	rem := clicks % d.travel
	if rem == 0 && clicks != 0 {
		return revs
	}

	start := d.pos - d.min
	img := start + rem // where the pointer would be on an unwrapped line

	revs += abs(floorDiv(img, d.travel))
	switch {
	case rem > 0 && wrap(img, d.travel) == 0:
		// Landing is counted below.
		revs--
	case rem < 0 && start == 0:
		// Leaving the zero-slot is not a pass.
		revs--
	}

	d.Rotate(rem)
	if d.AtZero() {
		revs++
	}

	return revs
}

// wrap returns n modulo size in [0, size).
func wrap(n, size int) int {
	n = n % size
	if n < 0 {
		n += size
	}
	return n
}

// floorDiv divides rounding towards negative infinity. size must be positive.
func floorDiv(n, size int) int {
	q := n / size
	if n%size != 0 && n < 0 {
		q--
	}
	return q
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
