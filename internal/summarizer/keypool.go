package summarizer

import "sync"

// KeyPool is an ordered set of API credentials with a forward-only cursor.
// The cursor only ever moves forward: advancing twice under a race skips a
// key early, it never goes backwards or wraps.
type KeyPool struct {
	mu   sync.Mutex
	keys []string
	cur  int
}

// NewKeyPool creates a KeyPool over the supplied keys in priority order.
func NewKeyPool(keys []string) *KeyPool {
	return &KeyPool{keys: keys}
}

// Current returns the active credential, or "" for an empty pool.
func (p *KeyPool) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.keys) == 0 {
		return ""
	}
	return p.keys[p.cur]
}

// Advance moves the cursor to the next credential. It returns false when the
// pool is exhausted, leaving the cursor on the last credential.
func (p *KeyPool) Advance() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cur+1 >= len(p.keys) {
		return false
	}
	p.cur++
	return true
}

// Index returns the zero-based position of the active credential.
func (p *KeyPool) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cur
}

// Size returns the number of credentials in the pool.
func (p *KeyPool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.keys)
}
