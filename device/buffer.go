// SPDX-License-Identifier: EPL-2.0

package device

import (
	"sync"

	"github.com/ik5/mixbus/signal"
)

// Buffer is an in-memory Device. Queued blocks are kept in order; Consume
// plays them back by lowering the queued frame count, which can happen on
// another goroutine.
type Buffer struct {
	mu     sync.Mutex
	blocks []signal.Signal
	queued int
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) QueuedSamples() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.queued
}

// Queue stores a copy of block.
func (b *Buffer) Queue(block signal.Signal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.blocks = append(b.blocks, block.Clone())
	b.queued += block.Len()
	return nil
}

// Consume marks up to n frames as played and returns how many were.
func (b *Buffer) Consume(n int) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n = max(0, min(n, b.queued))
	b.queued -= n
	return n
}

// Blocks returns the queued blocks in arrival order.
func (b *Buffer) Blocks() []signal.Signal {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]signal.Signal, len(b.blocks))
	copy(out, b.blocks)
	return out
}
