package server

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Gate bounds the number of connections concurrently inside the session
// loop. A slot is held from admission until the session ends, so idle
// keep-alive connections occupy capacity.
type Gate struct {
	sem      *semaphore.Weighted
	capacity int64
}

func NewGate(capacity int64) *Gate {
	if capacity < 1 {
		capacity = 1
	}
	return &Gate{
		sem:      semaphore.NewWeighted(capacity),
		capacity: capacity,
	}
}

// Acquire blocks until a slot is free or ctx is done.
func (g *Gate) Acquire(ctx context.Context) error {
	return g.sem.Acquire(ctx, 1)
}

// Release returns a slot. It never blocks and must be called exactly once
// per successful Acquire.
func (g *Gate) Release() {
	g.sem.Release(1)
}

// Capacity returns the fixed slot count.
func (g *Gate) Capacity() int64 {
	return g.capacity
}
