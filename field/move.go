package field

// conn8Offsets lists the eight neighbor displacements in clockwise order
// starting north (y grows downward, matching image row order):
// N, NE, E, SE, S, SW, W, NW.
var conn8Offsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Neighbors appends to buf every in-bounds, passable cell among the eight
// surrounding p and returns the extended slice. The enumeration order is
// fixed (clockwise from north), so repeated calls are byte-identical and
// searches stay reproducible. Reuse buf across calls to avoid allocation.
// Complexity: O(1).
func (f *Field) Neighbors(p Pos2, buf []Pos2) []Pos2 {
	for _, d := range conn8Offsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if !f.InBounds(nx, ny) {
			continue
		}
		if !f.Passable(nx, ny) {
			continue
		}
		buf = append(buf, Pos2{X: nx, Y: ny})
	}

	return buf
}

// Successors appends to buf every legal next step from p under axis-forced
// movement and returns the extended slice. The forced coordinate advances by
// exactly one slice; the two free coordinates shift by at most reach in
// Chebyshev distance. Destinations outside the volume or on walls are
// skipped. A position on the last slice has no successors.
//
// Enumeration is in flat-index order over the reach window (higher-order
// free dimension outer), keeping searches deterministic.
// Complexity: O((2×reach+1)²) per call.
func (v *Volume) Successors(p Pos3, a Axis, reach int, buf []Pos3) []Pos3 {
	next := a.Coord(p) + 1
	if next >= v.AxisExtent(a) {
		return buf
	}

	switch a {
	case AxisX:
		// Free dimensions: layer (outer), y (inner).
		for dl := -reach; dl <= reach; dl++ {
			for dy := -reach; dy <= reach; dy++ {
				buf = v.appendIfLegal(buf, Pos3{X: next, Y: p.Y + dy, Layer: p.Layer + dl})
			}
		}
	case AxisY:
		// Free dimensions: layer (outer), x (inner).
		for dl := -reach; dl <= reach; dl++ {
			for dx := -reach; dx <= reach; dx++ {
				buf = v.appendIfLegal(buf, Pos3{X: p.X + dx, Y: next, Layer: p.Layer + dl})
			}
		}
	default:
		// Free dimensions: y (outer), x (inner).
		for dy := -reach; dy <= reach; dy++ {
			for dx := -reach; dx <= reach; dx++ {
				buf = v.appendIfLegal(buf, Pos3{X: p.X + dx, Y: p.Y + dy, Layer: next})
			}
		}
	}

	return buf
}

// appendIfLegal appends q when it is inside the volume and not a wall.
func (v *Volume) appendIfLegal(buf []Pos3, q Pos3) []Pos3 {
	if !v.InBounds(q) {
		return buf
	}
	if !v.Passable(q) {
		return buf
	}

	return append(buf, q)
}
