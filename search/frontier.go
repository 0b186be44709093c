package search

// nodeItem represents a frontier entry: a node index and the priority under
// which it was pushed (accumulated cost for uniform-cost search, cost plus
// estimate for heuristic-guided search). seq is the push sequence number.
type nodeItem struct {
	idx      int    // flat node index
	priority int64  // ordering key
	seq      uint64 // insertion order, breaks priority ties
}

// nodePQ is a min-heap (priority queue) of *nodeItem ordered by priority
// ascending. It follows the "lazy-decrease-key" approach: when a shorter
// route to an already-queued node is found, a fresh *nodeItem is pushed and
// the outdated entry is ignored when popped (checked via the done set).
//
// Equal priorities pop in insertion order, so exploration and the returned
// path are reproducible run to run.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller priority first, earlier insertion
// on ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
