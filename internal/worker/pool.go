// Package worker provides a worker pool for parallel position analysis.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessgame-go/internal/config"
)

// WorkItem is one subtree to analyse: the position after a root move.
type WorkItem struct {
	Index int    // Position in the submitted batch
	FEN   string // Position to search from
	Move  string // Root move that led to FEN, in UCI notation
	Depth int    // Remaining depth below FEN
}

// ProcessResult is the outcome of one WorkItem.
type ProcessResult struct {
	Index int
	Move  string
	Nodes uint64
	Error error
}

// ProcessFunc analyses one item. It runs on a pool goroutine.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed set of goroutines. Results arrive in
// completion order; ProcessAll restores submission order.
type Pool struct {
	numWorkers  int
	bufferSize  int
	work        chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithConfig takes the worker count and buffer size from cfg.
func WithConfig(cfg *config.AnalysisConfig) PoolOption {
	return func(p *Pool) {
		if cfg == nil {
			return
		}
		WithWorkers(cfg.Workers)(p)
		WithBufferSize(cfg.BufferSize)(p)
	}
}

// NewPool creates a worker pool. processFunc is required; other settings
// default to 1 worker and a buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker analyses items until the work channel is closed. Once the pool is
// stopped, remaining items are skipped.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.work {
		if p.IsStopped() {
			continue
		}
		p.results <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// TrySubmit queues an item without blocking. It reports false when the
// buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.work <- item:
		return true
	default:
		return false
	}
}

// Stop makes the workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes the result
// channel.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel that receives each finished item.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ProcessAll starts the pool, feeds it items and returns every result
// ordered by Index. When ctx ends first the pool is stopped, items not yet
// started are dropped and ctx's error is returned with the partial results.
// The pool cannot be reused afterwards.
func (p *Pool) ProcessAll(ctx context.Context, items []WorkItem) ([]ProcessResult, error) {
	p.Start()
	go func() {
		defer p.Close()
		for _, item := range items {
			select {
			case p.work <- item:
			case <-ctx.Done():
				p.Stop()
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.Results() {
		results = append(results, r)
		if ctx.Err() != nil {
			p.Stop()
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
