package bridge

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue[int]()
	for i := range 5 {
		require.True(t, q.Push(i))
	}

	for i := range 5 {
		v, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestQueuePopBlocksUntilPush(t *testing.T) {
	q := NewQueue[string]()

	got := make(chan string, 1)
	go func() {
		v, ok := q.Pop()
		if ok {
			got <- v
		}
	}()

	// Give the popper a moment to block first.
	time.Sleep(10 * time.Millisecond)
	q.Push("hello")

	select {
	case v := <-got:
		assert.Equal(t, "hello", v)
	case <-time.After(time.Second):
		t.Fatal("Pop never returned after Push")
	}
}

func TestQueueCloseWakesPop(t *testing.T) {
	q := NewQueue[int]()

	done := make(chan bool, 1)
	go func() {
		_, ok := q.Pop()
		done <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Pop never returned after Close")
	}
}

func TestQueueCloseDrainsRemainingItems(t *testing.T) {
	q := NewQueue[int]()
	q.Push(1)
	q.Push(2)
	q.Close()

	// Pushes after close are dropped.
	assert.False(t, q.Push(3))

	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = q.Pop()
	assert.False(t, ok)

	// Closing again is a no-op.
	q.Close()
}

func TestQueueTryPop(t *testing.T) {
	q := NewQueue[int]()

	_, ok := q.TryPop()
	assert.False(t, ok)

	q.Push(42)
	v, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestQueuePushNeverBlocksUnderBacklog(t *testing.T) {
	q := NewQueue[int]()

	// No consumer at all; every push must still return promptly.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 10000 {
			q.Push(i)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Push blocked with no consumer")
	}

	var wg sync.WaitGroup
	wg.Add(1)
	seen := 0
	go func() {
		defer wg.Done()
		for {
			_, ok := q.TryPop()
			if !ok {
				return
			}
			seen++
		}
	}()
	wg.Wait()
	assert.Equal(t, 10000, seen)
}
