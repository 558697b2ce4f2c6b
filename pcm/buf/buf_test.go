package buf_test

import (
	"errors"
	"testing"

	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-pcm/internal/testutil"
	"github.com/cwbudde/algo-pcm/pcm/buf"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

func TestToFloatBuffer(t *testing.T) {
	b, err := buf.ToFloatBuffer([]sample.I16{-32768, 0, 16384, -16384}, 2, 44100)
	if err != nil {
		t.Fatalf("ToFloatBuffer: %v", err)
	}

	if b.Format.NumChannels != 2 || b.Format.SampleRate != 44100 {
		t.Errorf("format = %+v", b.Format)
	}
	testutil.RequireSliceNearlyEqual(t, b.Data, []float64{-1.0, 0.0, 0.5, -0.5}, 0)
}

func TestToFloatBufferRejectsPartialFrame(t *testing.T) {
	if _, err := buf.ToFloatBuffer([]sample.F64{0.1, 0.2, 0.3}, 2, 48000); !errors.Is(err, buf.ErrPartialFrame) {
		t.Errorf("err = %v, want ErrPartialFrame", err)
	}
}

func TestFromFloatBuffer(t *testing.T) {
	b := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 48000},
		Data:   []float64{-1.0, 0.0, 0.5},
	}

	samples, channels, err := buf.FromFloatBuffer[sample.I16](b)
	if err != nil {
		t.Fatalf("FromFloatBuffer: %v", err)
	}
	if channels != 1 {
		t.Errorf("channels = %d, want 1", channels)
	}

	want := []sample.I16{-32768, 0, 16384}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("samples[%d] = %d, want %d", i, samples[i], want[i])
		}
	}
}

func TestFromFloatBufferNil(t *testing.T) {
	if _, _, err := buf.FromFloatBuffer[sample.F64](nil); !errors.Is(err, buf.ErrNilBuffer) {
		t.Errorf("err = %v, want ErrNilBuffer", err)
	}
	if _, _, err := buf.FromFloatBuffer[sample.F64](&audio.FloatBuffer{}); !errors.Is(err, buf.ErrNilBuffer) {
		t.Errorf("err = %v, want ErrNilBuffer", err)
	}
}

func TestIntBufferRoundTrip(t *testing.T) {
	src := []sample.I16{-32768, -100, 0, 100, 32767}

	b, err := buf.ToIntBuffer(src, 1, 44100, 16)
	if err != nil {
		t.Fatalf("ToIntBuffer: %v", err)
	}
	if b.SourceBitDepth != 16 {
		t.Errorf("SourceBitDepth = %d, want 16", b.SourceBitDepth)
	}

	back, channels, err := buf.FromIntBuffer[sample.I16](b)
	if err != nil {
		t.Fatalf("FromIntBuffer: %v", err)
	}
	if channels != 1 {
		t.Errorf("channels = %d, want 1", channels)
	}
	for i := range src {
		if back[i] != src[i] {
			t.Errorf("back[%d] = %d, want %d", i, back[i], src[i])
		}
	}
}

func TestToIntBufferWidens(t *testing.T) {
	b, err := buf.ToIntBuffer([]sample.I16{256}, 1, 44100, 24)
	if err != nil {
		t.Fatalf("ToIntBuffer: %v", err)
	}

	// 16-bit 256 left-aligns to 24-bit 65536.
	if b.Data[0] != 65536 {
		t.Errorf("Data[0] = %d, want 65536", b.Data[0])
	}
}

func TestToIntBufferRejectsDepth(t *testing.T) {
	if _, err := buf.ToIntBuffer([]sample.I16{0}, 1, 44100, 12); !errors.Is(err, buf.ErrBitDepth) {
		t.Errorf("err = %v, want ErrBitDepth", err)
	}
}

func TestFromIntBufferDefaultsDepth(t *testing.T) {
	b := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:   []int{16384},
	}

	samples, _, err := buf.FromIntBuffer[sample.F64](b)
	if err != nil {
		t.Fatalf("FromIntBuffer: %v", err)
	}
	if samples[0] != 0.5 {
		t.Errorf("samples[0] = %v, want 0.5", samples[0])
	}
}
