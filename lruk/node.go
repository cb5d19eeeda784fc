package lruk

// node is a buffer pool frame's replacement-policy metadata: a bounded
// history of its most recent K access timestamps (newest first), an
// evictable flag toggled independently of access history, and intrusive
// links within whichever container (young or old) currently holds it.
type node struct {
	fid       int
	history   []int64
	evictable bool

	prev, next *node
}

// recordHistory pushes ts onto the front of n's history, dropping the
// oldest entry first if history is already at the k-entry cap.
func recordHistory(n *node, ts int64, k int) {
	if len(n.history) == k {
		n.history = n.history[:len(n.history)-1]
	}
	n.history = append([]int64{ts}, n.history...)
}
