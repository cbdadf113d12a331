package store

import "sync"

// Unsubscribe releases a live subscription. Calling it more than once is a
// no-op; once it returns the callback will not be invoked again.
type Unsubscribe func()

// feed fans full-collection snapshots out to independent subscribers.
// Deliveries run synchronously on the publishing goroutine while holding the
// read lock, so Unsubscribe blocks until in-flight deliveries finish and its
// guarantee holds even across goroutines. Callbacks must not subscribe,
// unsubscribe or trigger another publish.
type feed[T any] struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(T, error)
}

func newFeed[T any]() *feed[T] {
	return &feed[T]{subs: make(map[int]func(T, error))}
}

func (f *feed[T]) subscribe(fn func(T, error)) Unsubscribe {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
		})
	}
}

func (f *feed[T]) publish(snapshot T, err error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, fn := range f.subs {
		fn(snapshot, err)
	}
}
