package engine

import (
	"sync"
	"time"
)

// FrameStat describes one completed frame.
type FrameStat struct {
	// Duration is the time spent draining the queue, building and painting.
	Duration time.Duration
	// Painted reports whether the frame produced new output.
	Painted bool
	// Callbacks is the number of dispatched callbacks run in this frame.
	Callbacks int
}

// FrameStatsBuffer is a ring buffer of recent frame stats.
type FrameStatsBuffer struct {
	mu       sync.RWMutex
	samples  []FrameStat
	index    int
	capacity int
	count    int
}

// NewFrameStatsBuffer creates a buffer keeping the last capacity frames.
func NewFrameStatsBuffer(capacity int) *FrameStatsBuffer {
	if capacity <= 0 {
		capacity = 60
	}
	return &FrameStatsBuffer{
		samples:  make([]FrameStat, capacity),
		capacity: capacity,
	}
}

// Add records a frame.
func (b *FrameStatsBuffer) Add(stat FrameStat) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples[b.index] = stat
	b.index = (b.index + 1) % b.capacity
	if b.count < b.capacity {
		b.count++
	}
}

// Samples returns a copy of the recorded frames, oldest first.
func (b *FrameStatsBuffer) Samples() []FrameStat {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}

	result := make([]FrameStat, b.count)
	if b.count < b.capacity {
		copy(result, b.samples[:b.count])
	} else {
		// Full: the oldest sample sits at b.index.
		copy(result, b.samples[b.index:])
		copy(result[b.capacity-b.index:], b.samples[:b.index])
	}
	return result
}

// Count returns the number of samples currently in the buffer.
func (b *FrameStatsBuffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}
