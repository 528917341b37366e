// Package navigation owns the current comic index and computes navigation
// targets. Requests that would leave the catalog bounds are no-ops.
package navigation

import "math/rand/v2"

type Command int

const (
	First Command = iota
	Previous
	Random
	Next
	Last
)

func (c Command) String() string {
	switch c {
	case First:
		return "first"
	case Previous:
		return "previous"
	case Random:
		return "random"
	case Next:
		return "next"
	case Last:
		return "last"
	default:
		return "unknown"
	}
}

// Controls holds the enabled state of each navigation control.
type Controls struct {
	First    bool
	Previous bool
	Random   bool
	Next     bool
	Last     bool
}

func (c Controls) Enabled(cmd Command) bool {
	switch cmd {
	case First:
		return c.First
	case Previous:
		return c.Previous
	case Random:
		return c.Random
	case Next:
		return c.Next
	case Last:
		return c.Last
	default:
		return false
	}
}

type State struct {
	total   int
	current int // 0 until the first successful load
	intN    func(n int) int
}

func New(total int) *State {
	if total < 0 {
		total = 0
	}
	return &State{total: total, intN: rand.IntN}
}

// NewWithRand is New with a custom source of random integers in [0, n).
func NewWithRand(total int, intN func(n int) int) *State {
	s := New(total)
	s.intN = intN
	return s
}

func (s *State) Total() int {
	return s.total
}

// Current returns the current index and false while no comic has loaded.
func (s *State) Current() (int, bool) {
	return s.current, s.current != 0
}

func (s *State) SetCurrent(index int) bool {
	if !s.valid(index) {
		return false
	}
	s.current = index
	return true
}

func (s *State) First() (int, bool) {
	if s.total == 0 {
		return 0, false
	}
	return 1, true
}

func (s *State) Last() (int, bool) {
	if s.total == 0 {
		return 0, false
	}
	return s.total, true
}

func (s *State) Previous(current int) (int, bool) {
	if current <= 1 || current > s.total {
		return 0, false
	}
	return current - 1, true
}

func (s *State) Next(current int) (int, bool) {
	if current < 1 || current >= s.total {
		return 0, false
	}
	return current + 1, true
}

// Random picks uniformly among all comics other than current. With a single
// comic it returns that comic.
func (s *State) Random(current int) (int, bool) {
	switch {
	case s.total == 0:
		return 0, false
	case s.total == 1:
		return 1, true
	case !s.valid(current):
		return s.intN(s.total) + 1, true
	}

	pick := s.intN(s.total-1) + 1
	if pick >= current {
		pick++
	}
	return pick, true
}

func (s *State) IsAtFirst(current int) bool {
	return current == 1
}

func (s *State) IsAtLast(current int) bool {
	return current == s.total
}

// Target resolves cmd relative to the current index.
func (s *State) Target(cmd Command) (int, bool) {
	switch cmd {
	case First:
		return s.First()
	case Previous:
		return s.Previous(s.current)
	case Random:
		return s.Random(s.current)
	case Next:
		return s.Next(s.current)
	case Last:
		return s.Last()
	default:
		return 0, false
	}
}

// Controls reports which controls should be enabled while current is shown.
func (s *State) Controls(current int) Controls {
	if s.total == 0 {
		return Controls{}
	}
	atFirst, atLast := s.IsAtFirst(current), s.IsAtLast(current)
	return Controls{
		First:    !atFirst,
		Previous: !atFirst,
		Random:   true,
		Next:     !atLast,
		Last:     !atLast,
	}
}

func (s *State) valid(index int) bool {
	return index >= 1 && index <= s.total
}
