package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeTimeFiresInOrder(t *testing.T) {
	ft := NewFakeTime()
	start := ft.Now()

	var fired []string
	ft.Every(10*time.Millisecond, func() { fired = append(fired, "a") })
	ft.Every(15*time.Millisecond, func() { fired = append(fired, "b") })

	ft.Advance(30 * time.Millisecond)

	assert.Equal(t, []string{"a", "b", "a", "a", "b"}, fired)
	assert.Equal(t, 30*time.Millisecond, ft.Now().Sub(start))
}

func TestFakeTimeStop(t *testing.T) {
	ft := NewFakeTime()

	count := 0
	h := ft.Every(10*time.Millisecond, func() { count++ })

	ft.Advance(25 * time.Millisecond)
	h.Stop()
	ft.Advance(100 * time.Millisecond)

	assert.Equal(t, 2, count)
	assert.Equal(t, 0, ft.Pending())
}

func TestFakeTimeCallbackSeesTickTime(t *testing.T) {
	ft := NewFakeTime()
	start := ft.Now()

	var seen []time.Duration
	ft.Every(10*time.Millisecond, func() { seen = append(seen, ft.Now().Sub(start)) })

	ft.Advance(20 * time.Millisecond)

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, seen)
}
