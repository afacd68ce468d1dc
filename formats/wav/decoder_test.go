// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// buildWAV assembles a canonical 44-byte header followed by payload.
func buildWAV(formatTag uint16, sampleRate, channels, bitDepth int, payload []byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := uint16(channels * bitDepth / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(payload)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, formatTag)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitDepth))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)

	return buf.Bytes()
}

func pcm16(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

func readAll(t *testing.T, data []byte) []float32 {
	t.Helper()

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var out []float32
	buf := make([]float32, 3)
	for range 1000 {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("decoder never reached io.EOF")
	return nil
}

func TestDecoder_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate, channels, bits int
	}{
		{8000, 1, 16},
		{44100, 2, 16},
		{48000, 6, 24},
		{22050, 1, 8},
		{96000, 2, 32},
	}

	for _, tt := range tests {
		frame := make([]byte, tt.channels*tt.bits/8)
		data := buildWAV(formatPCM, tt.rate, tt.channels, tt.bits, frame)

		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%+v: Decode() error = %v", tt, err)
		}
		if src.SampleRate() != tt.rate || src.Channels() != tt.channels {
			t.Errorf("%+v: got %d Hz, %d channels", tt, src.SampleRate(), src.Channels())
		}
		if err := src.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}
}

func TestDecoder_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		bits    int
		payload []byte
		want    []float32
	}{
		{"16-bit", 16, pcm16(0, 16384, -16384, math.MinInt16), []float32{0, 0.5, -0.5, -1}},
		{"8-bit unsigned", 8, []byte{128, 192, 64, 0}, []float32{0, 0.5, -0.5, -1}},
		{"24-bit", 24, []byte{0, 0, 0, 0, 0, 0x40, 0, 0, 0xC0, 0, 0, 0x80}, []float32{0, 0.5, -0.5, -1}},
		{"32-bit", 32, []byte{0, 0, 0, 0, 0, 0, 0, 0x40, 0, 0, 0, 0xC0, 0, 0, 0, 0x80}, []float32{0, 0.5, -0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := readAll(t, buildWAV(formatPCM, 8000, 1, tt.bits, tt.payload))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d samples, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecoder_StereoInterleaved(t *testing.T) {
	t.Parallel()

	got := readAll(t, buildWAV(formatPCM, 44100, 2, 16, pcm16(8192, -8192, 16384, -16384)))
	want := []float32{0.25, -0.25, 0.5, -0.5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_NotWAV(t *testing.T) {
	t.Parallel()

	inputs := [][]byte{
		[]byte("This is not a WAV file"),
		{},
		[]byte("RIFF"),
	}
	for _, in := range inputs {
		if _, err := (Decoder{}).Decode(bytes.NewReader(in)); !errors.Is(err, ErrNotWavFile) {
			t.Errorf("Decode(%q) error = %v, want ErrNotWavFile", in, err)
		}
	}
}

func TestDecoder_FloatEncodingRejected(t *testing.T) {
	t.Parallel()

	data := buildWAV(3, 48000, 1, 32, make([]byte, 8))
	if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestDecoder_NonSeekableInput(t *testing.T) {
	t.Parallel()

	data := buildWAV(formatPCM, 16000, 1, 16, pcm16(100, 200, 300))
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if err != nil || n != 3 {
		t.Errorf("ReadSamples() = %d, %v, want 3, nil", n, err)
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(buildWAV(formatPCM, 8000, 1, 16, pcm16(1, 2))))
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]float32, 10)
	if n, err := src.ReadSamples(buf); n != 2 || err != nil {
		t.Fatalf("first read = %d, %v, want 2, nil", n, err)
	}
	for range 2 {
		if n, err := src.ReadSamples(buf); n != 0 || err != io.EOF {
			t.Errorf("read past end = %d, %v, want 0, io.EOF", n, err)
		}
	}
}

func TestSource_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(buildWAV(formatPCM, 8000, 1, 16, pcm16(1))))
	if err != nil {
		t.Fatal(err)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(buildWAV(formatPCM, 8000, 1, 16, pcm16(1, 2, 3))))
	if err != nil {
		t.Fatal(err)
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() before reading = %d, want 4096", src.BufSize())
	}
	src.ReadSamples(make([]float32, 8192))
	if src.BufSize() != 8192 {
		t.Errorf("BufSize() after reading = %d, want 8192", src.BufSize())
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 48000)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	data := buildWAV(formatPCM, 48000, 2, 16, pcm16(samples...))
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
