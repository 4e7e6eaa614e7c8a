package state

import (
	"sync"
	"sync/atomic"
)

// ObserverID identifies a registered observer so it can be removed later.
type ObserverID uint64

var lastObserverID atomic.Uint64

func nextObserverID() ObserverID {
	return ObserverID(lastObserverID.Add(1))
}

type observer[T any] struct {
	id ObserverID
	fn func(T)
}

// observerList keeps callbacks in registration order.
type observerList[T any] struct {
	mu    sync.Mutex
	items []observer[T]
}

func (l *observerList[T]) add(fn func(T)) ObserverID {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := nextObserverID()
	l.items = append(l.items, observer[T]{id: id, fn: fn})
	return id
}

func (l *observerList[T]) remove(id ObserverID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, o := range l.items {
		if o.id == id {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *observerList[T]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// notify calls every observer synchronously with v. An empty list is a no-op.
func (l *observerList[T]) notify(v T) {
	l.mu.Lock()
	items := make([]observer[T], len(l.items))
	copy(items, l.items)
	l.mu.Unlock()

	for _, o := range items {
		if o.fn != nil {
			o.fn(v)
		}
	}
}
