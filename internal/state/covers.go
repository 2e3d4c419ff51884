package state

// CoverRequests tracks cover ids requested from the backend that have not
// arrived yet. It is the only client-side de-duplication of requests; ids
// that never arrive stay outstanding and are not retried.
type CoverRequests struct {
	outstanding map[int64]struct{}
}

// NewCoverRequests creates an empty tracker
func NewCoverRequests() *CoverRequests {
	return &CoverRequests{outstanding: make(map[int64]struct{})}
}

// Mark records id as requested. It returns false if id was already outstanding.
func (c *CoverRequests) Mark(id int64) bool {
	if _, ok := c.outstanding[id]; ok {
		return false
	}
	c.outstanding[id] = struct{}{}
	return true
}

// Pending reports whether id is outstanding
func (c *CoverRequests) Pending(id int64) bool {
	_, ok := c.outstanding[id]
	return ok
}

// Reconcile clears every received id
func (c *CoverRequests) Reconcile(received []int64) {
	for _, id := range received {
		delete(c.outstanding, id)
	}
}

// Len returns the number of outstanding ids
func (c *CoverRequests) Len() int {
	return len(c.outstanding)
}
