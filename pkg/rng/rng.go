// Package rng builds the random sources samplers draw from.
package rng

import (
	"math/rand/v2"
	"sync"
	"time"
)

// NewSource returns a PCG source seeded with seed.
// A zero seed picks a time-based seed; the seed actually used is returned so
// callers can log it and replay the run.
func NewSource(seed uint64) (*rand.PCG, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15), seed
}

// Locked serializes access to an underlying source so one seeded source can be
// shared by samplers running on different goroutines.
type Locked struct {
	mu  sync.Mutex
	src rand.Source
}

// NewLocked wraps src.
func NewLocked(src rand.Source) *Locked {
	return &Locked{src: src}
}

// Uint64 implements rand.Source.
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Uint64()
}
