package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_Toggle(t *testing.T) {
	c := NewCart()

	c.Toggle("m500")
	assert.Equal(t, int64(1), c.Quantity("m500"))

	c.Toggle("m500")
	assert.Equal(t, int64(0), c.Quantity("m500"))
	assert.True(t, c.IsEmpty())
}

func TestCart_Toggle_RoundTrip(t *testing.T) {
	c := NewCart()
	c.SetQuantity("m1000", 4)

	before := c.Clone()
	c.Toggle("m200")
	c.Toggle("m200")

	assert.Equal(t, before, c, "double toggle must restore the prior cart")
}

func TestCart_ChangeQuantity(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(Cart)
		id       string
		delta    int64
		wantQty  int64
		wantKeys int
	}{
		{
			name:     "increment existing",
			setup:    func(c Cart) { c.SetQuantity("m500", 2) },
			id:       "m500",
			delta:    3,
			wantQty:  5,
			wantKeys: 1,
		},
		{
			name:     "absent entry defaults to 1",
			setup:    func(c Cart) {},
			id:       "m500",
			delta:    1,
			wantQty:  2,
			wantKeys: 1,
		},
		{
			name:     "decrement below 1 removes entry",
			setup:    func(c Cart) { c.SetQuantity("m500", 1) },
			id:       "m500",
			delta:    -1,
			wantQty:  0,
			wantKeys: 0,
		},
		{
			name:     "removing absent entry is a no-op",
			setup:    func(c Cart) {},
			id:       "m500",
			delta:    -5,
			wantQty:  0,
			wantKeys: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCart()
			tt.setup(c)
			c.ChangeQuantity(tt.id, tt.delta)
			assert.Equal(t, tt.wantQty, c.Quantity(tt.id))
			assert.Len(t, c, tt.wantKeys)
		})
	}
}

func TestCart_SetQuantity_IgnoresNonPositive(t *testing.T) {
	c := NewCart()
	c.SetQuantity("m500", 7)

	c.SetQuantity("m500", 0)
	assert.Equal(t, int64(7), c.Quantity("m500"), "zero keeps previous value")

	c.SetQuantity("m500", -3)
	assert.Equal(t, int64(7), c.Quantity("m500"), "negative keeps previous value")

	c.SetQuantity("m500", 12)
	assert.Equal(t, int64(12), c.Quantity("m500"))
}

func TestCart_QuantityClampedAtMax(t *testing.T) {
	c := NewCart()

	c.SetQuantity("m500", 1<<55)
	assert.Equal(t, int64(MaxQuantity), c.Quantity("m500"), "oversized set clamps to cap")

	c.ChangeQuantity("m500", 1<<55)
	assert.Equal(t, int64(MaxQuantity), c.Quantity("m500"), "oversized delta clamps to cap")

	c.SetQuantity("m1000", MaxQuantity-1)
	c.ChangeQuantity("m1000", 5)
	assert.Equal(t, int64(MaxQuantity), c.Quantity("m1000"), "delta past cap stops at cap")
}

func TestCart_QuantityInvariant(t *testing.T) {
	c := NewCart()
	c.Toggle("a")
	c.SetQuantity("b", 3)
	c.ChangeQuantity("c", 5)

	for id, qty := range c {
		assert.GreaterOrEqual(t, qty, int64(1), "entry %s violates quantity >= 1", id)
	}
}

func TestCart_Clear(t *testing.T) {
	c := NewCart()
	c.SetQuantity("m500", 2)
	c.SetQuantity("m1000", 9)

	c.Clear()
	assert.True(t, c.IsEmpty())
}
