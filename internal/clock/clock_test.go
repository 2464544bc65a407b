package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystemClock_Now(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	got := SystemClock{}.Now()
	after := time.Now().UTC()

	require.False(t, got.Before(before))
	require.False(t, got.After(after))
}

func TestFakeClock_Advance(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewFakeClock(start)
	require.Equal(t, start, c.Now())

	c.Advance(90 * time.Second)
	require.Equal(t, start.Add(90*time.Second), c.Now())

	// repeated reads do not move the clock
	require.Equal(t, c.Now(), c.Now())
}
