// SPDX-License-Identifier: EPL-2.0

package device

import (
	"testing"

	"github.com/ik5/mixbus/internal/audiotest"
)

func TestBuffer_QueueAndConsume(t *testing.T) {
	t.Parallel()

	buf := NewBuffer()
	block := audiotest.Ramp(2, 8, 0.1)
	if err := buf.Queue(block); err != nil {
		t.Fatal(err)
	}
	buf.Queue(block)

	if buf.QueuedSamples() != 16 {
		t.Errorf("QueuedSamples() = %d, want 16", buf.QueuedSamples())
	}

	tests := []struct {
		n, want, left int
	}{
		{5, 5, 11},
		{-3, 0, 11},
		{100, 11, 0},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := buf.Consume(tt.n); got != tt.want || buf.QueuedSamples() != tt.left {
			t.Errorf("Consume(%d) = %d, queued %d, want %d, %d", tt.n, got, buf.QueuedSamples(), tt.want, tt.left)
		}
	}
}

func TestBuffer_StoresCopies(t *testing.T) {
	t.Parallel()

	buf := NewBuffer()
	block := audiotest.Constant(1, 4, 0.5)
	buf.Queue(block)
	block.ScaleInPlace(0)

	if !buf.Blocks()[0].Equal(audiotest.Constant(1, 4, 0.5)) {
		t.Error("queued block changed with the caller's signal")
	}
}
