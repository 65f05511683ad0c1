package search

import "container/heap"

// frontierItem is a pending state plus its insertion sequence number.
type frontierItem struct {
	state *State
	seq   uint64
}

// stateHeap implements heap.Interface ordered by cost, then insertion order.
type stateHeap []frontierItem

func (h stateHeap) Len() int { return len(h) }
func (h stateHeap) Less(i, j int) bool {
	if h[i].state.cost != h[j].state.cost {
		return h[i].state.cost < h[j].state.cost
	}
	return h[i].seq < h[j].seq
}
func (h stateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *stateHeap) Push(x any) {
	*h = append(*h, x.(frontierItem))
}

func (h *stateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = frontierItem{}
	*h = old[:n-1]
	return item
}

// Frontier is a min-priority queue of pending states keyed on Cost().
// Entries of equal cost pop in the order they were pushed.
// Entries are never re-prioritised; stale duplicates are dropped by the
// VisitedSet when popped.
type Frontier struct {
	items stateHeap
	next  uint64
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.items)
	return f
}

// Push adds a state.
func (f *Frontier) Push(s *State) {
	heap.Push(&f.items, frontierItem{state: s, seq: f.next})
	f.next++
}

// Pop removes and returns the cheapest state. ok is false when empty.
func (f *Frontier) Pop() (s *State, ok bool) {
	if f.items.Len() == 0 {
		return nil, false
	}
	item := heap.Pop(&f.items).(frontierItem)
	return item.state, true
}

// Len returns the number of pending states.
func (f *Frontier) Len() int { return f.items.Len() }

// Each calls fn for every pending state, in no particular order.
func (f *Frontier) Each(fn func(*State)) {
	for _, item := range f.items {
		fn(item.state)
	}
}
