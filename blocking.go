package keygrab

import "sync"

// BlockingSet holds the hotkeys that are suppressed from other
// applications while captured. It is shared between the Manager and the
// native callback and safe for concurrent use.
type BlockingSet struct {
	mu  sync.Mutex
	set map[Hotkey]struct{}
}

func NewBlockingSet() *BlockingSet {
	return &BlockingSet{set: make(map[Hotkey]struct{})}
}

func (b *BlockingSet) Add(h Hotkey) {
	b.mu.Lock()
	b.set[h] = struct{}{}
	b.mu.Unlock()
}

func (b *BlockingSet) Remove(h Hotkey) {
	b.mu.Lock()
	delete(b.set, h)
	b.mu.Unlock()
}

// Contains reports exact set membership. A held superset of a blocked
// combination does not match.
func (b *BlockingSet) Contains(h Hotkey) bool {
	b.mu.Lock()
	_, ok := b.set[h]
	b.mu.Unlock()
	return ok
}

func (b *BlockingSet) Len() int {
	b.mu.Lock()
	n := len(b.set)
	b.mu.Unlock()
	return n
}
