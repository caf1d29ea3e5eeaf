package sssp

// item is one (node, distance) entry in the priority queue.
type item struct {
	node int
	dist float64
}

// nodePQ is a min-heap of *item ordered by dist ascending, using the
// lazy-decrease-key pattern: a shorter distance to an already-queued node
// is pushed as a new entry rather than mutating the existing one; stale
// entries are discarded on pop by comparing against the authoritative
// distance array.
type nodePQ []*item

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
