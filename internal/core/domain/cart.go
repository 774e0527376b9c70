package domain

// MaxQuantity caps a single cart line. Keeps line totals far away from
// int64 overflow no matter the denomination.
const MaxQuantity = 9999

// Cart maps denomination ids to selected quantities.
// Invariant: a key present in the map always has 1 <= quantity <= MaxQuantity.
type Cart map[string]int64

// NewCart creates an empty cart.
func NewCart() Cart {
	return make(Cart)
}

// Toggle adds a denomination with quantity 1, or removes it entirely if
// already present.
func (c Cart) Toggle(id string) {
	if _, ok := c[id]; ok {
		delete(c, id)
		return
	}
	c[id] = 1
}

// ChangeQuantity adjusts the quantity by delta. Absent entries count as 1.
// A result below 1 removes the entry; removing an absent entry is a no-op.
func (c Cart) ChangeQuantity(id string, delta int64) {
	current, ok := c[id]
	if !ok {
		current = 1
	}
	next := current + delta
	if next < 1 {
		delete(c, id)
		return
	}
	if next > MaxQuantity {
		next = MaxQuantity
	}
	c[id] = next
}

// SetQuantity sets the quantity directly. Non-positive input keeps the
// previous value unchanged; input above MaxQuantity is clamped.
func (c Cart) SetQuantity(id string, value int64) {
	if value < 1 {
		return
	}
	if value > MaxQuantity {
		value = MaxQuantity
	}
	c[id] = value
}

// Quantity returns the selected quantity for a denomination, 0 if absent.
func (c Cart) Quantity(id string) int64 {
	return c[id]
}

// IsEmpty returns true when no denominations are selected.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// Clear removes every entry.
func (c Cart) Clear() {
	clear(c)
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for id, qty := range c {
		out[id] = qty
	}
	return out
}
