package engine

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepPoolRunsEverySubmission(t *testing.T) {
	p := NewPrepPool(4)

	var count atomic.Int64
	for range 100 {
		p.Submit(func() {
			count.Add(1)
		})
	}
	p.Wait()

	assert.Equal(t, int64(100), count.Load())
}

func TestPrepPoolReusableAcrossFrames(t *testing.T) {
	p := NewPrepPool(2)

	var count atomic.Int64
	for range 3 {
		for range 10 {
			p.Submit(func() {
				count.Add(1)
			})
		}
		p.Wait()
	}

	assert.Equal(t, int64(30), count.Load())
}

func TestPrepPoolDefaultWorkerCount(t *testing.T) {
	p := NewPrepPool(0)

	done := make(chan struct{})
	p.Submit(func() {
		close(done)
	})
	p.Wait()

	select {
	case <-done:
	default:
		t.Fatal("submitted work never ran")
	}
}
