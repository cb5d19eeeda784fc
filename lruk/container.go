package lruk

// container is an ordered index of nodes: a doubly linked list with
// sentinel head/tail nodes (so insertion/removal never checks for nil,
// the same trick shard.go uses for its LRU list) plus a frame-id -> node
// map kept consistent with it. List order is least-recently
// inserted/touched at head, most-recently at tail; Evict scans head to
// tail.
//
// A container never references its sibling: the owning LRUKReplacer
// detects the young-to-old promotion boundary and moves nodes between
// containers itself (spec.md §9's aliasing-avoiding alternative to the
// original's container-holds-a-back-pointer design).
type container struct {
	head, tail *node
	index      map[int]*node
}

func newContainer() *container {
	head := &node{}
	tail := &node{}
	head.next = tail
	tail.prev = head
	return &container{head: head, tail: tail, index: make(map[int]*node)}
}

func (c *container) find(fid int) (*node, bool) {
	n, ok := c.index[fid]
	return n, ok
}

func (c *container) len() int { return len(c.index) }

// addNode indexes n by its fid and appends it at the tail.
func (c *container) addNode(n *node) {
	c.index[n.fid] = n
	c.linkAtTail(n)
}

func (c *container) linkAtTail(n *node) {
	last := c.tail.prev
	last.next = n
	n.prev = last
	n.next = c.tail
	c.tail.prev = n
}

func (c *container) unlink(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
}

// removeNode unlinks n from the list and drops it from the index.
func (c *container) removeNode(n *node) {
	c.unlink(n)
	delete(c.index, n.fid)
}

// moveToTail promotes n to the most-recently-touched position, a no-op if
// it is already there.
func (c *container) moveToTail(n *node) {
	if c.tail.prev == n {
		return
	}
	c.unlink(n)
	c.linkAtTail(n)
}

// touch records a new access timestamp for an already-indexed node and
// moves it to the tail.
func (c *container) touch(n *node, ts int64, k int) {
	recordHistory(n, ts, k)
	c.moveToTail(n)
}

// evict scans from head to tail for the first evictable node, removes it
// from the list and index, and returns it.
func (c *container) evict() (*node, bool) {
	for cur := c.head.next; cur != c.tail; cur = cur.next {
		if cur.evictable {
			c.removeNode(cur)
			return cur, true
		}
	}
	return nil, false
}
