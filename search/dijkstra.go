package search

import (
	"container/heap"
	"math"
)

// runDijkstra executes uniform-cost search over sp: the frontier is ordered
// by accumulated cost alone, so the first sink popped carries the optimal
// cost. Seeds enter with g = their own entry cost, which makes the total
// start-inclusive and reduces a multi-source run to an ordinary one.
//
// Complexity:
//   - Time:  O((V + E) log V) with V = sp.size() and E = generated moves.
//   - Each node is finalized at most once (V pops that do work).
//   - Each improving relaxation pushes one entry (up to E pushes).
//   - Space: O(V + E): flat dist/prev/done plus the lazy heap.
func runDijkstra(sp space) runOutcome {
	// 1) Allocate flat per-node state and the frontier.
	r := &dijkstraRunner{
		sp:   sp,
		dist: make([]int64, sp.size()),
		prev: make([]int, sp.size()),
		done: make([]bool, sp.size()),
		pq:   make(nodePQ, 0, len(sp.seeds())),
		succ: make([]int, 0, 8),
	}

	// 2) Initialize state and run the main loop.
	r.init()

	return r.process()
}

// dijkstraRunner holds the mutable state for a single uniform-cost run.
type dijkstraRunner struct {
	sp       space   // the implicit graph; read-only within the run
	dist     []int64 // node index → best known accumulated cost
	prev     []int   // node index → predecessor on the best route (-1 = none)
	done     []bool  // node index → cost finalized
	pq       nodePQ  // min-heap of frontier entries (lazy decrease-key)
	succ     []int   // reused successor scratch
	seq      uint64  // push counter feeding the deterministic tie-break
	expanded int     // nodes finalized
}

// init sets every node to unreached, then seeds the frontier. A seed's
// initial cost is its own cell cost: the start position counts toward the
// total.
func (r *dijkstraRunner) init() {
	// 1) dist[i] = +∞ (MaxInt64), prev[i] = -1 for all nodes i.
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		r.prev[i] = -1
	}

	// 2) Establish heap invariants, then push each seed with its entry cost.
	heap.Init(&r.pq)
	for _, s := range r.sp.seeds() {
		c := r.sp.entryCost(s)
		if c >= r.dist[s] {
			continue // duplicate seed
		}
		r.dist[s] = c
		r.seq++
		heap.Push(&r.pq, &nodeItem{idx: s, priority: c, seq: r.seq})
	}
}

// process is the core loop: repeatedly extract the cheapest frontier node,
// finalize it, and stop at the first sink.
//
// Loop termination:
//   - A sink is popped (optimal by the non-negative cost argument).
//   - The heap empties (no route exists; found stays false).
func (r *dijkstraRunner) process() runOutcome {
	var u int
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry; skip stale duplicates.
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.idx
		if r.done[u] {
			continue
		}

		// 2) Finalize u. Its accumulated cost is now optimal.
		r.done[u] = true
		r.expanded++

		// 3) First finalized sink wins.
		if r.sp.goal(u) {
			return runOutcome{goal: u, cost: r.dist[u], prev: r.prev, expanded: r.expanded, found: true}
		}

		// 4) Relax every move out of u.
		r.relax(u)
	}

	return runOutcome{goal: -1, prev: r.prev, expanded: r.expanded}
}

// relax attempts to improve each successor of u. Stepping onto v costs v's
// cell value; improvements push a fresh heap entry (lazy decrease-key).
//
// Assumes dist[u] is finalized before the call.
func (r *dijkstraRunner) relax(u int) {
	r.succ = r.sp.successors(u, r.succ[:0])
	var nd int64
	for _, v := range r.succ {
		// Candidate cost via u. Strict improvement only, so equal-cost
		// rediscoveries never push duplicates.
		nd = r.dist[u] + r.sp.entryCost(v)
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.seq++
		heap.Push(&r.pq, &nodeItem{idx: v, priority: nd, seq: r.seq})
	}
}
