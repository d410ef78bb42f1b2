package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem(t *testing.T) {
	before := time.Now()
	got := System().Now()
	assert.False(t, got.Before(before))
}

func TestManualTimer(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	m := NewManualTimer(start)
	assert.Equal(t, start, m.Now())

	next := m.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), next)
	assert.Equal(t, next, m.Now())
}
