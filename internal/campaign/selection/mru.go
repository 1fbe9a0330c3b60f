package selection

import "slices"

// MRUQueue is a bounded deque of gift ids in most-recently-used order.
// Touching an existing id moves it to the front; touching a new id prepends
// it and truncates the tail, preserving the order of the remainder.
type MRUQueue struct {
	ids      []string
	capacity int
}

// NewMRUQueue seeds a queue with the given ids, oldest last. Seed ids beyond
// the capacity are dropped.
func NewMRUQueue(capacity int, ids ...string) *MRUQueue {
	q := &MRUQueue{capacity: capacity}
	if len(ids) > capacity {
		ids = ids[:capacity]
	}
	q.ids = slices.Clone(ids)
	return q
}

// Touch marks an id as most recently used.
func (q *MRUQueue) Touch(id string) {
	if i := slices.Index(q.ids, id); i >= 0 {
		q.ids = slices.Delete(q.ids, i, i+1)
	}
	q.ids = slices.Insert(q.ids, 0, id)
	if len(q.ids) > q.capacity {
		q.ids = q.ids[:q.capacity]
	}
}

// Contains reports whether an id is present.
func (q *MRUQueue) Contains(id string) bool {
	return slices.Contains(q.ids, id)
}

// Items returns the queue contents, most recent first.
func (q *MRUQueue) Items() []string {
	return slices.Clone(q.ids)
}

// Len returns the number of queued ids.
func (q *MRUQueue) Len() int {
	return len(q.ids)
}
