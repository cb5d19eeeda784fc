// Package lruk implements the LRU-K frame-eviction policy for a
// fixed-capacity buffer pool: frames are ranked by the recency of their
// K-th most recent access, partitioned into a "young" set (fewer than K
// recorded accesses) and an "old" set (K or more), and young frames are
// always evicted before old ones.
//
// LRUKReplacer is the only exported type; it owns both containers and
// guards all mutable state with a single mutex, so every public method is
// linearizable with respect to every other.
package lruk

import "sync"

// AccessType is accepted by RecordAccess but not otherwise interpreted by
// this policy (spec.md §9: whether future policies should differentiate
// access kinds is left open).
type AccessType int

const (
	AccessUnknown AccessType = iota
	AccessLookup
	AccessScan
	AccessIndex
)

// MinimumK is the smallest look-back depth New accepts.
const MinimumK = 1

// LRUKReplacer tracks buffer pool frames and picks eviction victims by the
// LRU-K policy. The zero value is not usable; construct with New.
type LRUKReplacer struct {
	mu sync.Mutex

	young, old *container
	capacity   int
	k          int
	currSize   int
	clock      Clock
}

// New creates a replacer tracking up to capacity distinct frame ids, each
// ranked by its k most recent accesses, using the coarse system clock.
func New(capacity, k int) (*LRUKReplacer, error) {
	return NewWithClock(capacity, k, System)
}

// NewWithClock is New with an injectable Clock, for deterministic tests
// (see CounterClock).
func NewWithClock(capacity, k int, clock Clock) (*LRUKReplacer, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if k < MinimumK {
		return nil, ErrInvalidK
	}
	return &LRUKReplacer{
		young:    newContainer(),
		old:      newContainer(),
		capacity: capacity,
		k:        k,
		clock:    clock,
	}, nil
}

func (r *LRUKReplacer) checkBounds(op string, fid int) error {
	if fid < 0 || fid >= r.capacity {
		return &BoundsError{Op: op, FrameID: fid, Capacity: r.capacity}
	}
	return nil
}

// RecordAccess records an access to fid at the current timestamp. A frame
// seen for the first time is created in the young container with
// is_evictable=false; access_type is accepted but ignored by this policy.
func (r *LRUKReplacer) RecordAccess(fid int, at AccessType) error {
	if err := r.checkBounds("RecordAccess", fid); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.clock.Now()

	if n, ok := r.young.find(fid); ok {
		r.recordOnYoung(n, ts)
		return nil
	}
	if n, ok := r.old.find(fid); ok {
		r.old.touch(n, ts, r.k)
		return nil
	}
	r.addFresh(fid, ts)
	return nil
}

// recordOnYoung applies an access to a node currently in the young
// container, promoting it to old the moment its history would reach k
// entries.
func (r *LRUKReplacer) recordOnYoung(n *node, ts int64) {
	if len(n.history)+1 >= r.k {
		r.young.removeNode(n)
		recordHistory(n, ts, r.k)
		r.old.addNode(n)
		return
	}
	r.young.touch(n, ts, r.k)
}

// addFresh creates a node for a frame accessed for the first time. A
// replacer configured with k==1 sends it straight to old: a single access
// already meets the k-access threshold.
func (r *LRUKReplacer) addFresh(fid int, ts int64) {
	n := &node{fid: fid, history: []int64{ts}}
	if len(n.history) >= r.k {
		r.old.addNode(n)
		return
	}
	r.young.addNode(n)
}

// Evict picks a victim frame: the first evictable node scanning young
// head-to-tail, or failing that the first evictable node scanning old
// head-to-tail. It reports ok=false if no frame is evictable.
func (r *LRUKReplacer) Evict() (fid int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, found := r.young.evict(); found {
		r.currSize--
		return n.fid, true
	}
	if n, found := r.old.evict(); found {
		r.currSize--
		return n.fid, true
	}
	return 0, false
}

// SetEvictable toggles whether fid may be returned by Evict. It is a
// no-op if fid is untracked or already in the requested state.
func (r *LRUKReplacer) SetEvictable(fid int, evictable bool) error {
	if err := r.checkBounds("SetEvictable", fid); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.young.find(fid)
	if !ok {
		n, ok = r.old.find(fid)
	}
	if !ok || n.evictable == evictable {
		return nil
	}

	n.evictable = evictable
	if evictable {
		r.currSize++
	} else {
		r.currSize--
	}
	return nil
}

// Remove drops fid from tracking entirely. It is a no-op if fid is
// untracked, and fails with *NotEvictableError if fid is currently
// pinned.
func (r *LRUKReplacer) Remove(fid int) error {
	if err := r.checkBounds("Remove", fid); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.young
	n, ok := c.find(fid)
	if !ok {
		c = r.old
		n, ok = c.find(fid)
	}
	if !ok {
		return nil
	}
	if !n.evictable {
		return &NotEvictableError{FrameID: fid}
	}

	c.removeNode(n)
	r.currSize--
	return nil
}

// Size returns the current number of evictable frames.
func (r *LRUKReplacer) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currSize
}
