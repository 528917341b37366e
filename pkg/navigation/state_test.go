package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPreviousBounds(t *testing.T) {
	for total := 1; total <= 12; total++ {
		s := New(total)
		for current := 1; current <= total; current++ {
			next, ok := s.Next(current)
			assert.Equal(t, current == total, !ok, "next(%d) of %d", current, total)
			if ok {
				assert.Equal(t, current+1, next)
			}

			prev, ok := s.Previous(current)
			assert.Equal(t, current == 1, !ok, "previous(%d) of %d", current, total)
			if ok {
				assert.Equal(t, current-1, prev)
			}
		}
	}
}

func TestFirstLast(t *testing.T) {
	for total := 1; total <= 20; total++ {
		s := New(total)

		first, ok := s.First()
		require.True(t, ok)
		assert.Equal(t, 1, first)

		last, ok := s.Last()
		require.True(t, ok)
		assert.Equal(t, total, last)
	}
}

func TestEmptyCatalog(t *testing.T) {
	s := New(0)

	_, ok := s.First()
	assert.False(t, ok)
	_, ok = s.Last()
	assert.False(t, ok)
	_, ok = s.Random(0)
	assert.False(t, ok)
	_, ok = s.Next(0)
	assert.False(t, ok)
	_, ok = s.Previous(1)
	assert.False(t, ok)
	assert.False(t, s.SetCurrent(1))
	assert.Equal(t, Controls{}, s.Controls(0))
}

func TestRandomNeverRepeats(t *testing.T) {
	for total := 2; total <= 8; total++ {
		s := New(total)
		for current := 1; current <= total; current++ {
			for i := 0; i < 200; i++ {
				pick, ok := s.Random(current)
				require.True(t, ok)
				assert.NotEqual(t, current, pick)
				assert.GreaterOrEqual(t, pick, 1)
				assert.LessOrEqual(t, pick, total)
			}
		}
	}
}

func TestRandomSingleComic(t *testing.T) {
	s := New(1)
	for i := 0; i < 10; i++ {
		pick, ok := s.Random(1)
		require.True(t, ok)
		assert.Equal(t, 1, pick)
	}
}

func TestRandomCoversAllOthers(t *testing.T) {
	// walk the random source through every value it can return
	for total := 2; total <= 6; total++ {
		for current := 1; current <= total; current++ {
			seen := map[int]bool{}
			for v := 0; v < total-1; v++ {
				s := NewWithRand(total, func(n int) int { return v })
				pick, ok := s.Random(current)
				require.True(t, ok)
				seen[pick] = true
			}
			assert.Len(t, seen, total-1)
			assert.False(t, seen[current])
		}
	}
}

func TestRandomWithoutCurrent(t *testing.T) {
	s := NewWithRand(5, func(n int) int { return n - 1 })
	pick, ok := s.Random(0)
	require.True(t, ok)
	assert.Equal(t, 5, pick)
}

func TestIsAtFirstLast(t *testing.T) {
	s := New(10)
	assert.True(t, s.IsAtFirst(1))
	assert.False(t, s.IsAtFirst(2))
	assert.True(t, s.IsAtLast(10))
	assert.False(t, s.IsAtLast(9))
}

func TestCurrentAndTarget(t *testing.T) {
	s := New(10)

	_, ok := s.Current()
	assert.False(t, ok, "current must be unset before the first load")

	_, ok = s.Target(Previous)
	assert.False(t, ok)

	assert.False(t, s.SetCurrent(11))
	assert.True(t, s.SetCurrent(10))

	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 10, current)

	target, ok := s.Target(Previous)
	require.True(t, ok)
	assert.Equal(t, 9, target)

	_, ok = s.Target(Next)
	assert.False(t, ok)

	target, ok = s.Target(First)
	require.True(t, ok)
	assert.Equal(t, 1, target)

	target, ok = s.Target(Last)
	require.True(t, ok)
	assert.Equal(t, 10, target)
}

func TestControls(t *testing.T) {
	s := New(3)

	assert.Equal(t, Controls{Random: true, Next: true, Last: true}, s.Controls(1))
	assert.Equal(t, Controls{First: true, Previous: true, Random: true, Next: true, Last: true}, s.Controls(2))
	assert.Equal(t, Controls{First: true, Previous: true, Random: true}, s.Controls(3))

	single := New(1)
	assert.Equal(t, Controls{Random: true}, single.Controls(1))

	assert.True(t, s.Controls(2).Enabled(Next))
	assert.False(t, s.Controls(3).Enabled(Next))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "first", First.String())
	assert.Equal(t, "last", Last.String())
	assert.Equal(t, "unknown", Command(42).String())
}
