package service

import (
	"sync"
	"time"

	"github.com/atriumhq/atrium/internal/scan/domain"
	"github.com/atriumhq/atrium/internal/scan/extract"
)

// pendingStore holds processed scans awaiting confirmation. Bounded; when
// full the oldest pending scan is dropped to make room.
type pendingStore struct {
	mu    sync.Mutex
	max   int
	scans map[string]domain.PendingScan
}

func newPendingStore(max int) *pendingStore {
	if max <= 0 {
		max = 128
	}
	return &pendingStore{
		max:   max,
		scans: make(map[string]domain.PendingScan),
	}
}

func (p *pendingStore) Put(id string, fields extract.Fields) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.scans) >= p.max {
		oldestID := ""
		var oldestAt time.Time
		for id, scan := range p.scans {
			if oldestID == "" || scan.CreatedAt.Before(oldestAt) {
				oldestID = id
				oldestAt = scan.CreatedAt
			}
		}
		delete(p.scans, oldestID)
	}

	p.scans[id] = domain.PendingScan{
		ID:        id,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
}

func (p *pendingStore) Get(id string) (domain.PendingScan, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	scan, ok := p.scans[id]
	return scan, ok
}

func (p *pendingStore) Delete(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.scans, id)
}
