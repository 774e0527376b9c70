package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocationSet_Allocate_Clamps(t *testing.T) {
	a := NewAllocationSet()
	remaining := int64(1000)

	stored := a.Allocate("x", 1500, remaining)
	assert.Equal(t, int64(1000), stored, "overshoot clamps to remaining")

	stored = a.Allocate("y", 1, remaining)
	assert.Equal(t, int64(0), stored, "nothing left for a second recipient")
	assert.NotContains(t, a, "y")
}

func TestAllocationSet_Allocate_ReplacePrevious(t *testing.T) {
	a := NewAllocationSet()
	remaining := int64(1000)

	a.Allocate("x", 600, remaining)
	a.Allocate("y", 300, remaining)

	// Raising x's allocation may reuse x's own previous amount.
	stored := a.Allocate("x", 900, remaining)
	assert.Equal(t, int64(700), stored, "clamp = remaining - total + previous")
	assert.Equal(t, int64(1000), a.Total())
}

func TestAllocationSet_Allocate_ZeroRemovesEntry(t *testing.T) {
	a := NewAllocationSet()
	a.Allocate("x", 400, 1000)

	stored := a.Allocate("x", 0, 1000)
	assert.Zero(t, stored)
	assert.NotContains(t, a, "x")

	stored = a.Allocate("x", -50, 1000)
	assert.Zero(t, stored)
}

func TestAllocationSet_InvariantUnderAnySequence(t *testing.T) {
	a := NewAllocationSet()
	remaining := int64(750)

	sequence := []struct {
		id     string
		amount int64
	}{
		{"a", 500}, {"b", 500}, {"a", 100}, {"c", 9999},
		{"b", 0}, {"d", 300}, {"a", 750}, {"e", 1},
	}

	for _, step := range sequence {
		a.Allocate(step.id, step.amount, remaining)
		assert.LessOrEqual(t, a.Total(), remaining, "sum invariant violated after allocating %s", step.id)
	}
}

func TestAllocationSet_Clear(t *testing.T) {
	a := NewAllocationSet()
	a.Allocate("x", 100, 1000)
	a.Allocate("y", 200, 1000)

	a.Clear()
	assert.Zero(t, a.Total())
	assert.Empty(t, a)
}
