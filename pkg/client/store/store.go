// Package store holds the client-side state containers. Each store
// caches one domain's fetched data plus loading/error bookkeeping,
// guards its state with a mutex and notifies subscribers after every
// mutation. Stores are constructed once at application start and passed
// by reference to whatever renders them.
package store

import (
	"sync"
	"time"
)

// Clock abstracts time so freshness rules can be tested.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// notifier fans out change notifications to subscribers. Stores embed it;
// callbacks run synchronously on the mutating goroutine and must not call
// back into the store.
type notifier struct {
	mu   sync.Mutex
	subs []func()
}

// Subscribe registers fn to run after every state change.
func (n *notifier) Subscribe(fn func()) {
	n.mu.Lock()
	n.subs = append(n.subs, fn)
	n.mu.Unlock()
}

func (n *notifier) notify() {
	n.mu.Lock()
	subs := make([]func(), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
