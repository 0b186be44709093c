package search

import (
	"sort"

	"github.com/katalvlaran/heatpath/field"
)

// space is the implicit graph a runner explores: flat node indices, seed
// nodes, sink membership, successor generation, per-node entry cost, and an
// admissible cost-to-go estimate. Both the 2-D field and the axis-forced
// volume reduce to this shape, so each runner is written once.
//
// A space instance belongs to a single run and may reuse internal buffers;
// it must not be shared across goroutines.
type space interface {
	// size returns the node count; indices are [0, size).
	size() int
	// seeds returns the source node indices, already filtered to passable
	// cells. Each seed enters the frontier with g = its own entry cost.
	seeds() []int
	// goal reports whether idx belongs to the sink set.
	goal(idx int) bool
	// successors appends the node indices reachable from idx in one move
	// and returns the extended slice. Walls and out-of-bounds destinations
	// never appear.
	successors(idx int, buf []int) []int
	// entryCost returns the cost of stepping onto idx.
	entryCost(idx int) int64
	// estimate returns an admissible, consistent lower bound on the
	// remaining cost from idx to the nearest sink, zero at every sink.
	estimate(idx int) int64
}

// runOutcome is the raw result a runner hands back to the dispatcher:
// the reached sink (goal), its final accumulated cost, the predecessor
// table for path assembly, and the expansion count.
type runOutcome struct {
	goal     int
	cost     int64
	prev     []int
	expanded int
	found    bool
}

//----------------------------------------------------------------------------//
// 2-D field space
//----------------------------------------------------------------------------//

// gridSpace adapts a Field with fixed start and end cells. Free movement:
// eight neighbors per cell, step cost = destination cell cost.
type gridSpace struct {
	f        *field.Field
	startIdx int
	endIdx   int
	end      field.Pos2
	minCost  int64
	nbuf     []field.Pos2 // reused neighbor scratch
}

// newGridSpace builds the search space for one Field run. The caller has
// already bounds-checked start and end; walls among them are handled
// naturally (a wall seed is filtered, a wall end is simply never reached).
func newGridSpace(f *field.Field, start, end field.Pos2) *gridSpace {
	gs := &gridSpace{
		f:       f,
		endIdx:  f.Index(end.X, end.Y),
		end:     end,
		minCost: int64(f.MinCost()),
		nbuf:    make([]field.Pos2, 0, 8),
	}
	if f.Passable(start.X, start.Y) {
		gs.startIdx = f.Index(start.X, start.Y)
	} else {
		gs.startIdx = -1
	}

	return gs
}

func (gs *gridSpace) size() int { return gs.f.Size() }

func (gs *gridSpace) seeds() []int {
	if gs.startIdx < 0 {
		return nil
	}

	return []int{gs.startIdx}
}

func (gs *gridSpace) goal(idx int) bool { return idx == gs.endIdx }

func (gs *gridSpace) successors(idx int, buf []int) []int {
	x, y := gs.f.Coord(idx)
	gs.nbuf = gs.f.Neighbors(field.Pos2{X: x, Y: y}, gs.nbuf[:0])
	for _, q := range gs.nbuf {
		buf = append(buf, gs.f.Index(q.X, q.Y))
	}

	return buf
}

func (gs *gridSpace) entryCost(idx int) int64 {
	x, y := gs.f.Coord(idx)

	return int64(gs.f.Cost(x, y))
}

// estimate is Chebyshev distance to the end cell times the cheapest
// passable cell: any route needs at least that many moves, each entering a
// cell at least that expensive.
func (gs *gridSpace) estimate(idx int) int64 {
	x, y := gs.f.Coord(idx)
	dx := x - gs.end.X
	if dx < 0 {
		dx = -dx
	}
	dy := y - gs.end.Y
	if dy < 0 {
		dy = -dy
	}
	if dy > dx {
		dx = dy
	}

	return int64(dx) * gs.minCost
}

//----------------------------------------------------------------------------//
// Axis-forced volume space
//----------------------------------------------------------------------------//

// volumeSpace adapts a Volume with a forced axis, a per-step reach bound,
// and source/sink sets. The forced coordinate advances exactly one slice
// per move, so every route from slice a to slice b has exactly b-a moves.
type volumeSpace struct {
	v       *field.Volume
	axis    field.Axis
	reach   int
	seedIdx []int
	sinkSet []bool
	sinkAt  []int // sorted distinct forced-axis coordinates of sinks
	minCost int64
	sbuf    []field.Pos3 // reused successor scratch
}

// newVolumeSpace builds the search space for one Volume run. starts and
// ends are bounds-checked by the caller; walls among them are dropped here.
func newVolumeSpace(v *field.Volume, axis field.Axis, reach int, starts, ends []field.Pos3) *volumeSpace {
	vs := &volumeSpace{
		v:       v,
		axis:    axis,
		reach:   reach,
		sinkSet: make([]bool, v.Size()),
		minCost: int64(v.MinCost()),
		sbuf:    make([]field.Pos3, 0, (2*reach+1)*(2*reach+1)),
	}

	// 1) Seed every passable source.
	vs.seedIdx = make([]int, 0, len(starts))
	for _, p := range starts {
		if v.Passable(p) {
			vs.seedIdx = append(vs.seedIdx, v.Index(p))
		}
	}

	// 2) Mark passable sinks and collect their forced-axis coordinates for
	//    the cost-to-go estimate.
	coordSeen := make(map[int]struct{}, 4)
	for _, p := range ends {
		if !v.Passable(p) {
			continue
		}
		vs.sinkSet[v.Index(p)] = true
		coordSeen[axis.Coord(p)] = struct{}{}
	}
	vs.sinkAt = make([]int, 0, len(coordSeen))
	for c := range coordSeen {
		vs.sinkAt = append(vs.sinkAt, c)
	}
	sort.Ints(vs.sinkAt)

	return vs
}

func (vs *volumeSpace) size() int { return vs.v.Size() }

func (vs *volumeSpace) seeds() []int { return vs.seedIdx }

func (vs *volumeSpace) goal(idx int) bool { return vs.sinkSet[idx] }

func (vs *volumeSpace) successors(idx int, buf []int) []int {
	vs.sbuf = vs.v.Successors(vs.v.Coord(idx), vs.axis, vs.reach, vs.sbuf[:0])
	for _, q := range vs.sbuf {
		buf = append(buf, vs.v.Index(q))
	}

	return buf
}

func (vs *volumeSpace) entryCost(idx int) int64 {
	return int64(vs.v.Cost(vs.v.Coord(idx)))
}

// estimate is forced-axis distance to the nearest sink slice at or ahead of
// idx, times the cheapest passable cell. Reaching a sink c slices ahead
// takes exactly c moves; each move enters a cell at least minCost
// expensive. Positions with no sink slice ahead estimate zero.
func (vs *volumeSpace) estimate(idx int) int64 {
	c := vs.axis.Coord(vs.v.Coord(idx))
	i := sort.SearchInts(vs.sinkAt, c)
	if i == len(vs.sinkAt) {
		return 0
	}

	return int64(vs.sinkAt[i]-c) * vs.minCost
}
