package naming

import "sync"

// CollisionTracker records which source path claimed each target path
// during a run. It never changes a target; the caller decides what to do
// with a clash (the renamer logs it and lets the last rename win).
// All methods are goroutine-safe.
type CollisionTracker struct {
	mu     sync.Mutex
	owners map[string]string // target path → source path that claimed it
}

// NewCollisionTracker creates a ready-to-use tracker.
func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{owners: make(map[string]string)}
}

// Claim registers source as the owner of target. If a different source
// already claimed target, that source is returned with true; ownership
// moves to the new source either way.
func (ct *CollisionTracker) Claim(source, target string) (previous string, clash bool) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	owner, exists := ct.owners[target]
	ct.owners[target] = source
	if !exists || owner == source {
		return "", false
	}
	return owner, true
}

// Len returns the number of claimed targets.
func (ct *CollisionTracker) Len() int {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return len(ct.owners)
}
