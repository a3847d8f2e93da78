// SPDX-License-Identifier: MIT

// Package schedule - barrier worker pool.
//
// Purpose:
//   - Run many short parallel phases without spawning goroutines per phase.
//   - Make every phase a full barrier: Run returns after all chunks finished.
//
// Concurrency:
//   - Run and Close are serialized by an internal mutex; a Pool may be shared,
//     but concurrent Run calls execute one after another.
//   - The chunk body runs concurrently on up to Workers() goroutines and must
//     only touch data disjoint from other chunks of the same phase.

package schedule

import (
	"sync"
	"sync/atomic"
)

// phase is the descriptor of one Run; reused across Run calls.
type phase struct {
	chunks []Range
	mode   Mode
	body   func(Range)
	active int          // workers taking part in this phase
	cursor atomic.Int64 // next chunk to claim in Pull mode
}

// run processes the share of worker id.
func (ph *phase) run(id int) {
	if ph.mode == Pull {
		for {
			c := int(ph.cursor.Add(1)) - 1
			if c >= len(ph.chunks) {
				return
			}
			ph.body(ph.chunks[c])
		}
	}
	for c := id; c < len(ph.chunks); c += ph.active {
		ph.body(ph.chunks[c])
	}
}

// Pool is a fixed set of workers executing phases behind a barrier.
type Pool struct {
	mu      sync.Mutex
	workers int
	inbox   []chan *phase  // inbox[w-1] feeds worker w; worker 0 is the caller
	pending sync.WaitGroup // worker shares still running in the current phase
	exited  sync.WaitGroup // worker goroutines still alive
	ph      phase
	closed  bool
}

// NewPool starts a pool with the given number of workers.
// workers-1 goroutines are started; the goroutine calling Run is worker 0,
// so NewPool(1) starts none and runs every phase inline.
//
// Errors:
//   - ErrBadWorkers if workers < 1.
func NewPool(workers int) (*Pool, error) {
	if workers < 1 {
		return nil, ErrBadWorkers
	}
	p := &Pool{
		workers: workers,
		inbox:   make([]chan *phase, workers-1),
	}
	p.exited.Add(workers - 1)
	for w := 1; w < workers; w++ {
		in := make(chan *phase, 1)
		p.inbox[w-1] = in
		go p.worker(w, in)
	}

	return p, nil
}

func (p *Pool) worker(id int, in <-chan *phase) {
	defer p.exited.Done()
	for ph := range in {
		ph.run(id)
		p.pending.Done()
	}
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// Run executes body once per chunk and returns after all of them finished.
//
// Implementation:
//   - Stage 1: active = min(Workers, len(chunks)); reset the phase descriptor.
//   - Stage 2: hand the descriptor to workers 1..active-1.
//   - Stage 3: process worker 0's share on the calling goroutine.
//   - Stage 4: wait for the other shares (barrier).
//
// In Static mode chunk c runs on worker c mod active; in Pull mode workers
// claim chunks in list order from a shared cursor.
//
// Errors:
//   - ErrNilBody if body is nil.
//   - ErrPoolClosed after Close.
func (p *Pool) Run(chunks []Range, mode Mode, body func(Range)) error {
	if body == nil {
		return ErrNilBody
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	if len(chunks) == 0 {
		return nil
	}

	active := min(p.workers, len(chunks))
	ph := &p.ph
	ph.chunks, ph.mode, ph.body, ph.active = chunks, mode, body, active
	ph.cursor.Store(0)

	if active > 1 {
		p.pending.Add(active - 1)
		for w := 1; w < active; w++ {
			p.inbox[w-1] <- ph
		}
	}
	ph.run(0)
	p.pending.Wait()

	// drop references so a finished phase does not pin caller data
	ph.chunks, ph.body = nil, nil

	return nil
}

// Close stops the worker goroutines and waits for them to exit.
// It is idempotent; Run after Close returns ErrPoolClosed.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for _, in := range p.inbox {
		close(in)
	}
	p.mu.Unlock()
	p.exited.Wait()
}
