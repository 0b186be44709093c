package search

import (
	"container/heap"
	"math"
)

// runAStar executes heuristic-guided search over sp: the frontier is
// ordered by accumulated cost plus sp.estimate, an admissible and
// consistent lower bound on the cost still to come. With such an estimate
// the first sink popped is optimal, exactly as in uniform-cost search, but
// nodes pointing away from every sink surface later or never.
//
// estimate must be zero at every sink; the popped sink's priority then
// equals its accumulated cost.
//
// Complexity:
//   - Time:  O((V + E) log V) worst case; typically far fewer pops than
//     uniform-cost search on directional inputs.
//   - Space: O(V + E), same flat state plus the lazy heap.
func runAStar(sp space) runOutcome {
	// 1) Allocate flat per-node state and the frontier.
	r := &astarRunner{
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

// astarRunner holds the mutable state for a single heuristic-guided run.
// dist tracks accumulated cost only; the estimate is folded into heap
// priorities, never into dist.
type astarRunner struct {
	sp       space   // the implicit graph; read-only within the run
	dist     []int64 // node index → best known accumulated cost
	prev     []int   // node index → predecessor on the best route (-1 = none)
	done     []bool  // node index → cost finalized
	pq       nodePQ  // min-heap ordered by dist + estimate
	succ     []int   // reused successor scratch
	seq      uint64  // push counter feeding the deterministic tie-break
	expanded int     // nodes finalized
}

// init sets every node to unreached, then seeds the frontier with
// priority = entry cost + estimate.
func (r *astarRunner) init() {
	// 1) dist[i] = +∞ (MaxInt64), prev[i] = -1 for all nodes i.
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		r.prev[i] = -1
	}

	// 2) Establish heap invariants, then push each seed.
	heap.Init(&r.pq)
	for _, s := range r.sp.seeds() {
		c := r.sp.entryCost(s)
		if c >= r.dist[s] {
			continue // duplicate seed
		}
		r.dist[s] = c
		r.seq++
		heap.Push(&r.pq, &nodeItem{idx: s, priority: c + r.sp.estimate(s), seq: r.seq})
	}
}

// process extracts nodes in order of optimistic total cost and stops at
// the first sink. Consistency of the estimate guarantees a node's
// accumulated cost is optimal when it is popped, so the done-set skip
// discards stale duplicates safely.
func (r *astarRunner) process() runOutcome {
	var u int
	for r.pq.Len() > 0 {
		// 1) Pop the most promising entry; skip stale duplicates.
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.idx
		if r.done[u] {
			continue
		}

		// 2) Finalize u.
		r.done[u] = true
		r.expanded++

		// 3) First finalized sink wins; its estimate is zero there, so the
		//    priority that surfaced it was its accumulated cost.
		if r.sp.goal(u) {
			return runOutcome{goal: u, cost: r.dist[u], prev: r.prev, expanded: r.expanded, found: true}
		}

		// 4) Relax every move out of u.
		r.relax(u)
	}

	return runOutcome{goal: -1, prev: r.prev, expanded: r.expanded}
}

// relax attempts to improve each successor of u, pushing improvements with
// their estimate added to the priority.
func (r *astarRunner) relax(u int) {
	r.succ = r.sp.successors(u, r.succ[:0])
	var nd int64
	for _, v := range r.succ {
		nd = r.dist[u] + r.sp.entryCost(v)
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.seq++
		heap.Push(&r.pq, &nodeItem{idx: v, priority: nd + r.sp.estimate(v), seq: r.seq})
	}
}
