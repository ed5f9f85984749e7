package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a bounded worker pool.
type Pool interface {
	// TrySubmit queues the task only if there is room right now. It returns false once the pool is stopped.
	TrySubmit(Task) bool
	// Stop rejects new tasks, runs everything already queued and waits for the workers.
	Stop()
}

// NewPool creates a pool with n workers and a queue of the given size.
// n<=0 defaults to 1, queue<0 defaults to 0.
func NewPool(n, queue int) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &pool{jobs: make(chan Task, queue)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
}

func (p *pool) TrySubmit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
