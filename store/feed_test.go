package store

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedDeliversToEverySubscriber(t *testing.T) {
	f := newFeed[int]()

	var a, b int
	unsubA := f.subscribe(func(v int, err error) { a = v })
	unsubB := f.subscribe(func(v int, err error) { b = v })
	defer unsubB()

	f.publish(7, nil)
	assert.Equal(t, 7, a)
	assert.Equal(t, 7, b)

	unsubA()
	f.publish(9, nil)
	assert.Equal(t, 7, a)
	assert.Equal(t, 9, b)
}

func TestFeedNoDeliveryAfterUnsubscribeReturns(t *testing.T) {
	f := newFeed[int]()

	var calls int64
	unsub := f.subscribe(func(int, error) {
		atomic.AddInt64(&calls, 1)
	})

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			f.publish(i, nil)
		}
		close(done)
	}()

	// Unsubscribe waits out any in-flight delivery; the count observed here
	// must be final no matter how the publisher goroutine is scheduled.
	unsub()
	final := atomic.LoadInt64(&calls)
	<-done
	assert.Equal(t, final, atomic.LoadInt64(&calls))
}
