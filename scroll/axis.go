package scroll

// axis is one scroll dimension in pixels: the scroll position as an item
// index plus offset, the item size, and the viewport extent.
type axis struct {
	position int64
	offset   int
	size     int
	extent   int
}

// relStart returns the pixel distance from the viewport start to the start
// of item. Items far outside the viewport saturate to a value that still
// classifies correctly, so huge row distances never overflow.
func (a axis) relStart(item int64) int64 {
	size := int64(a.size)
	bound := int64(a.extent/a.size) + 2
	d := item - a.position
	if d > bound {
		return int64(a.extent) + size
	}
	if d < -bound {
		return -2 * size
	}
	return d*size - int64(a.offset)
}

// startVisibility checks the leading edge of item against [0, extent).
func (a axis) startVisibility(item int64) Visibility {
	start := a.relStart(item)
	if start >= 0 {
		if start >= int64(a.extent) {
			return NotVisible
		}
		return Visible
	}
	if start+int64(a.size) > 0 {
		return Partial
	}
	return NotVisible
}

// endVisibility checks the trailing edge of item against (0, extent].
func (a axis) endVisibility(item int64) Visibility {
	start := a.relStart(item)
	end := start + int64(a.size)
	if end <= int64(a.extent) {
		if end <= 0 {
			return NotVisible
		}
		return Visible
	}
	if start < int64(a.extent) {
		return Partial
	}
	return NotVisible
}

// fits reports whether a whole item fits into the viewport.
func (a axis) fits() bool { return a.size <= a.extent }

// alignEnd returns the scroll position placing the end of item flush with
// the viewport end. With whole-item units the offset is always 0 and the
// item ends at or before the viewport end.
func (a axis) alignEnd(item int64, pixel bool) (int64, int) {
	full := int64(a.extent / a.size)
	rem := a.extent % a.size
	if full == 0 {
		return clampStart(item, 0)
	}
	if !pixel || rem == 0 {
		return clampStart(item+1-full, 0)
	}
	return clampStart(item-full, a.size-rem)
}

// center returns the scroll position placing the middle of item at the
// middle of the viewport.
func (a axis) center(item int64, pixel bool) (int64, int) {
	before := (a.extent - a.size) / 2
	if before <= 0 {
		if !pixel {
			return clampStart(item, 0)
		}
		off := -before
		if off >= a.size {
			off = a.size - 1
		}
		return clampStart(item, off)
	}

	q := int64(before / a.size)
	r := before % a.size
	if !pixel || r == 0 {
		return clampStart(item-q, 0)
	}
	return clampStart(item-q-1, a.size-r)
}

func clampStart(position int64, offset int) (int64, int) {
	if position < 0 {
		return 0, 0
	}
	return position, offset
}

// reveal returns the smallest move bringing item fully into view, or false
// when it already is. Items before the viewport, and items larger than it,
// are aligned to the viewport start.
func (a axis) reveal(item int64, pixel bool) (int64, int, bool) {
	if a.startVisibility(item) == Visible && a.endVisibility(item) == Visible {
		return a.position, a.offset, false
	}
	if a.relStart(item) < 0 || !a.fits() {
		position, offset := clampStart(item, 0)
		return position, offset, true
	}
	position, offset := a.alignEnd(item, pixel)
	return position, offset, true
}
