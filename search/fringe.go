package search

import (
	"container/list"
	"math"
)

// runFringe executes fringe search over sp: repeated sweeps of a linked
// frontier list under a rising cost threshold. A sweep examines nodes head
// to tail; a node whose optimistic total f = g + estimate exceeds the
// threshold is deferred in place, anything else is expanded with its
// children spliced in right after it, so the sweep dives through them
// depth-first while they stay under the threshold. When a sweep ends, the
// threshold rises to the smallest deferred f and the next sweep rescans.
//
// The threshold starts at the seed's own f and never climbs past the
// optimal cost before a sink is accepted, so acceptance (f within the
// threshold) at a sink yields the optimal total, matching uniform-cost and
// heuristic-guided search.
//
// Notes on implementation choices:
//
//   - One container/list holds the whole fringe; "later" is simply the
//     deferred residue the next sweep revisits. No heap is involved.
//   - The g-cache admits reopening: a node reappears only when a strictly
//     cheaper route to it is found, so sweeps terminate.
//   - Node membership is tracked through a flat slice of list elements;
//     a reopened node is unlinked from its old slot before resplicing.
//
// Complexity:
//   - Time:  O(V + E) per sweep; total bounded by sweeps × that, where the
//     sweep count is the number of distinct f values up to the optimum.
//   - Space: O(V): flat g/prev/element state plus the list.
func runFringe(sp space) runOutcome {
	// 1) Allocate flat per-node state and the fringe list.
	r := &fringeRunner{
		sp:     sp,
		dist:   make([]int64, sp.size()),
		prev:   make([]int, sp.size()),
		elem:   make([]*list.Element, sp.size()),
		fringe: list.New(),
		succ:   make([]int, 0, 8),
	}

	// 2) Initialize caches and seed the fringe; an empty seed set means the
	//    start is a wall and no route exists.
	flimit, ok := r.init()
	if !ok {
		return runOutcome{goal: -1, prev: r.prev}
	}

	// 3) Sweep under a rising threshold.
	return r.process(flimit)
}

// fringeRunner holds the mutable state for a single fringe run.
type fringeRunner struct {
	sp       space           // the implicit graph; read-only within the run
	dist     []int64         // node index → best known accumulated cost
	prev     []int           // node index → predecessor (-1 = none)
	elem     []*list.Element // node index → its fringe slot, nil if absent
	fringe   *list.List      // the frontier, head swept first
	succ     []int           // reused successor scratch
	expanded int             // acceptances, re-expansions included
}

// init fills the caches, enqueues every seed, and returns the starting
// threshold: the smallest seed f. ok is false when no seed survives.
func (r *fringeRunner) init() (int64, bool) {
	// 1) dist[i] = +∞ (MaxInt64), prev[i] = -1 for all nodes i.
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		r.prev[i] = -1
	}

	// 2) Enqueue seeds with g = entry cost; the threshold starts at the
	//    cheapest seed's optimistic total.
	flimit := int64(math.MaxInt64)
	var f int64
	for _, s := range r.sp.seeds() {
		c := r.sp.entryCost(s)
		if c >= r.dist[s] {
			continue // duplicate seed
		}
		r.dist[s] = c
		r.elem[s] = r.fringe.PushBack(s)
		if f = c + r.sp.estimate(s); f < flimit {
			flimit = f
		}
	}

	return flimit, r.fringe.Len() > 0
}

// process runs threshold sweeps until a sink is accepted or the fringe
// drains.
func (r *fringeRunner) process(flimit int64) runOutcome {
	var (
		u    int
		f    int64
		fmin int64
	)
	for r.fringe.Len() > 0 {
		// 1) One sweep, head to tail. fmin collects the next threshold.
		fmin = math.MaxInt64
		for e := r.fringe.Front(); e != nil; {
			u = e.Value.(int)

			// 2) Defer nodes beyond the threshold; they keep their slot.
			if f = r.dist[u] + r.sp.estimate(u); f > flimit {
				if f < fmin {
					fmin = f
				}
				e = e.Next()

				continue
			}

			// 3) Accept u. A sink accepted under the threshold is optimal.
			r.expanded++
			if r.sp.goal(u) {
				return runOutcome{goal: u, cost: r.dist[u], prev: r.prev, expanded: r.expanded, found: true}
			}

			// 4) Expand u, splicing improved children directly after it so
			//    this sweep continues through them.
			r.relax(u, e)

			// 5) Unlink u and move on (to its first child, when one was
			//    spliced in).
			next := e.Next()
			r.fringe.Remove(e)
			r.elem[u] = nil
			e = next
		}

		// 6) Nothing deferred means the sweep drained the list.
		if fmin == math.MaxInt64 {
			break
		}
		flimit = fmin
	}

	return runOutcome{goal: -1, prev: r.prev, expanded: r.expanded}
}

// relax re-caches every successor of u reached strictly cheaper through u
// and splices it into the fringe right after u, preserving successor order.
// A successor already in the fringe moves to its new slot.
func (r *fringeRunner) relax(u int, at *list.Element) {
	r.succ = r.sp.successors(u, r.succ[:0])
	var ng int64
	after := at
	for _, v := range r.succ {
		ng = r.dist[u] + r.sp.entryCost(v)
		if ng >= r.dist[v] {
			continue
		}
		r.dist[v] = ng
		r.prev[v] = u
		if r.elem[v] != nil {
			r.fringe.Remove(r.elem[v])
		}
		after = r.fringe.InsertAfter(v, after)
		r.elem[v] = after
	}
}
