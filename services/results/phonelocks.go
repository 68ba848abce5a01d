package results

import "sync"

// phoneLocks serializes the read-check-then-write submission sequence per phone
// number, so two concurrent submissions for the same number cannot both observe
// an empty result slot. Entries are never evicted; the map is bounded by the
// participant count of a single quiz.
type phoneLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPhoneLocks() *phoneLocks {
	return &phoneLocks{locks: make(map[string]*sync.Mutex)}
}

func (p *phoneLocks) get(phone string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	lock, ok := p.locks[phone]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[phone] = lock
	}
	return lock
}
