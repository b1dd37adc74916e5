package thousands

// groupCursor walks the groups of one digit run from the most significant
// digit down to the least significant one. It is a plain value rebuilt
// for every call, never shared or reused.
type groupCursor struct {
	groups    []uint8
	index     int // position in groups, moving toward 0; len(groups) means the repeating tail
	repeats   int // full repeats of the last group still ahead, leading group excluded
	remaining int // digits left in the current group
}

// newGroupCursor positions the cursor on the group holding the most
// significant of ndigits digits. The leading group is partially filled
// when the number is too short to fill it. When the repeating tail
// divides the remaining digits evenly, the leading group is one full
// repeat, so a non-empty run never starts with a separator.
func newGroupCursor(groups []uint8, ndigits int) groupCursor {
	sum := 0
	for i, g := range groups {
		if ndigits <= sum+int(g) {
			return groupCursor{groups: groups, index: i, remaining: ndigits - sum}
		}
		sum += int(g)
	}

	repeat := int(groups[len(groups)-1])
	rest := ndigits - sum
	full := (rest - 1) / repeat
	return groupCursor{
		groups:    groups,
		index:     len(groups),
		repeats:   full,
		remaining: rest - full*repeat,
	}
}

// separators reports how many separators the whole run receives: one per
// group boundary below the leading group.
func (c groupCursor) separators() int {
	return c.repeats + c.index
}

// next consumes one digit and reports whether a separator belongs
// immediately before it. Call exactly once per digit, most significant
// first.
func (c *groupCursor) next() bool {
	if c.remaining > 0 {
		c.remaining--
		return false
	}
	if c.repeats > 0 {
		c.repeats--
		c.remaining = int(c.groups[len(c.groups)-1]) - 1
		return true
	}
	c.index--
	c.remaining = int(c.groups[c.index]) - 1
	return true
}
