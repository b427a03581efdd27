package engine

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// PrepPool manages a bounded set of reusable goroutines for the parallel CPU
// prep phase of a frame, typically inside PackageRenderData. Workers persist
// across frames, avoiding per-frame goroutine spawn/teardown overhead.
//
// Submit and Wait must be called from a single goroutine; the submitted
// functions run concurrently on the pool workers.
type PrepPool struct {
	pool worker.DynamicWorkerPool
	wg   sync.WaitGroup

	// next numbers submitted tasks for the pool's bookkeeping.
	next int
}

// NewPrepPool creates a pool with the given worker count. A count of zero or
// less defaults to NumCPU-1, leaving a core for the event and user-logic
// goroutines.
//
// Parameters:
//   - workers: number of pool workers (<= 0 for the default)
//
// Returns:
//   - *PrepPool: the ready pool
func NewPrepPool(workers int) *PrepPool {
	if workers <= 0 {
		workers = max(runtime.NumCPU()-1, 1)
	}
	return &PrepPool{
		// Queue size of 256 accommodates typical per-frame task counts with headroom.
		pool: worker.NewDynamicWorkerPool(workers, 256, 1*time.Second),
	}
}

// Submit schedules fn to run on a pool worker.
//
// Parameters:
//   - fn: the work to run; must not call Submit or Wait itself
func (p *PrepPool) Submit(fn func()) {
	p.wg.Add(1)
	id := p.next
	p.next++
	p.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer p.wg.Done()
			fn()
			return nil, nil
		},
	})
}

// Wait blocks until every submitted function has finished.
func (p *PrepPool) Wait() {
	p.wg.Wait()
}
