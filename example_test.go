// SPDX-License-Identifier: EPL-2.0

package mixbus_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/mixbus"
	"github.com/ik5/mixbus/device"
	"github.com/ik5/mixbus/formats/wav"
	"github.com/ik5/mixbus/mixer"
	"github.com/ik5/mixbus/signal"
)

// Example_mixdown renders a one-track project to a WAV file.
func Example_mixdown() {
	dir, err := os.MkdirTemp("", "mixbus-example")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	// a 1000-frame mono take
	take, _ := os.Create(filepath.Join(dir, "take.wav"))
	w, _ := wav.NewWriter(take, 48000, 1, 16)
	w.Queue(signal.NewSignal(1, 1000))
	w.Close()
	take.Close()

	project := []byte(`
chunk_size: 256
sample_rate: 48000
channels: 2
master: 0
buses:
  - key: 0
    inputs: [1]
tracks:
  - path: take.wav
    channel: 1
`)
	os.WriteFile(filepath.Join(dir, "session.yaml"), project, 0o644)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	res, err := mixbus.MixdownFile(context.Background(),
		filepath.Join(dir, "session.yaml"), filepath.Join(dir, "mix.wav"),
		mixbus.WithLogger(logger))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Blocks: %d\n", res.Blocks)
	fmt.Printf("Frames: %d\n", res.Frames)
	// Output:
	// Blocks: 4
	// Frames: 1024
}

// Example_feedback shows that a routing loop still evaluates in one pass.
func Example_feedback() {
	m, _ := mixer.New(mixer.Config{ChunkSize: 4, SampleRate: 48000, Channels: 1})

	// 1 -> 2 -> 1, and the master listens to 1
	m.Connect(0, 1)
	m.Connect(1, 2)
	m.Connect(2, 1)
	m.SetGain(2, 0.5)

	buf := device.NewBuffer()
	pump := device.NewPump(m, 0, buf)
	block, _ := signal.FromChannels([][]signal.Sample{{1, 1, 1, 1}})
	pump.Add(device.ProducerFunc(func(d device.Depositor) error {
		return d.DepositSignal(2, block)
	}))

	if _, err := pump.Step(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	out := buf.Blocks()[0]
	v, _ := out.At(0, 0)
	fmt.Printf("Master: %v\n", v)
	// Output: Master: 0.5
}
