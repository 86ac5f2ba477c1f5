package engine

import (
	"sync"
	"time"
)

type rememberedEngine struct {
	name      string
	expiresAt time.Time
}

// DomainMemory remembers which engine last served each domain. Entries
// expire after ttl and are swept once per ttl interval.
type DomainMemory struct {
	entries sync.Map // host -> rememberedEngine
	ttl     time.Duration
	done    chan struct{}
	once    sync.Once
}

// NewDomainMemory creates a DomainMemory and starts its sweeper.
func NewDomainMemory(ttl time.Duration) *DomainMemory {
	if ttl <= 0 {
		ttl = time.Hour
	}
	dm := &DomainMemory{ttl: ttl, done: make(chan struct{})}
	go dm.sweep()
	return dm
}

// Get returns the remembered engine for host, or "" if none is live.
func (dm *DomainMemory) Get(host string) string {
	v, ok := dm.entries.Load(host)
	if !ok {
		return ""
	}
	e := v.(rememberedEngine)
	if time.Now().After(e.expiresAt) {
		dm.entries.Delete(host)
		return ""
	}
	return e.name
}

func (dm *DomainMemory) Set(host, engineName string) {
	dm.entries.Store(host, rememberedEngine{name: engineName, expiresAt: time.Now().Add(dm.ttl)})
}

func (dm *DomainMemory) Delete(host string) {
	dm.entries.Delete(host)
}

// Stop terminates the sweeper. It is safe to call more than once.
func (dm *DomainMemory) Stop() {
	dm.once.Do(func() { close(dm.done) })
}

func (dm *DomainMemory) sweep() {
	ticker := time.NewTicker(dm.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-dm.done:
			return
		case now := <-ticker.C:
			dm.entries.Range(func(k, v any) bool {
				if now.After(v.(rememberedEngine).expiresAt) {
					dm.entries.Delete(k)
				}
				return true
			})
		}
	}
}
