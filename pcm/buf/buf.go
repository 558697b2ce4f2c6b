package buf

import (
	"fmt"

	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-pcm/pcm/frame"
	"github.com/cwbudde/algo-pcm/pcm/sample"
)

func validShape(n, channels int) error {
	if channels < 1 || channels > frame.MaxChannels {
		return fmt.Errorf("%w: %d not in [1, %d]", frame.ErrChannelCount, channels, frame.MaxChannels)
	}
	if n%channels != 0 {
		return fmt.Errorf("%w: %d samples across %d channels", ErrPartialFrame, n, channels)
	}

	return nil
}

// ToFloatBuffer converts interleaved samples into a go-audio float buffer
// holding full-scale amplitudes in [-1, 1).
func ToFloatBuffer[S sample.Sample](samples []S, channels, sampleRate int) (*audio.FloatBuffer, error) {
	if err := validShape(len(samples), channels); err != nil {
		return nil, err
	}

	out := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:   make([]float64, len(samples)),
	}
	for i, s := range samples {
		out.Data[i] = sample.ToFloat64(s)
	}

	return out, nil
}

// FromFloatBuffer converts a go-audio float buffer into interleaved samples
// of format S, returning the samples and the channel count.
func FromFloatBuffer[S sample.Sample](b *audio.FloatBuffer) ([]S, int, error) {
	if b == nil || b.Format == nil {
		return nil, 0, ErrNilBuffer
	}
	if err := validShape(len(b.Data), b.Format.NumChannels); err != nil {
		return nil, 0, err
	}

	out := make([]S, len(b.Data))
	for i, v := range b.Data {
		out[i] = sample.FromFloat64[S](v)
	}

	return out, b.Format.NumChannels, nil
}

// ToIntBuffer converts interleaved samples into a go-audio integer buffer at
// the given source bit depth (8, 16, 24 or 32).
func ToIntBuffer[S sample.Sample](samples []S, channels, sampleRate, bitDepth int) (*audio.IntBuffer, error) {
	if err := validShape(len(samples), channels); err != nil {
		return nil, err
	}

	out := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}
	switch bitDepth {
	case 8:
		for i, s := range samples {
			out.Data[i] = int(sample.To[sample.I8](s))
		}
	case 16:
		for i, s := range samples {
			out.Data[i] = int(sample.To[sample.I16](s))
		}
	case 24:
		for i, s := range samples {
			out.Data[i] = int(sample.To[sample.I24](s))
		}
	case 32:
		for i, s := range samples {
			out.Data[i] = int(sample.To[sample.I32](s))
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}

	return out, nil
}

// FromIntBuffer converts a go-audio integer buffer into interleaved samples
// of format S, returning the samples and the channel count. A zero source
// bit depth is read as 16, matching go-audio decoders that leave it unset.
func FromIntBuffer[S sample.Sample](b *audio.IntBuffer) ([]S, int, error) {
	if b == nil || b.Format == nil {
		return nil, 0, ErrNilBuffer
	}
	if err := validShape(len(b.Data), b.Format.NumChannels); err != nil {
		return nil, 0, err
	}

	depth := b.SourceBitDepth
	if depth == 0 {
		depth = 16
	}

	out := make([]S, len(b.Data))
	switch depth {
	case 8:
		for i, v := range b.Data {
			out[i] = sample.To[S](sample.I8(v))
		}
	case 16:
		for i, v := range b.Data {
			out[i] = sample.To[S](sample.I16(v))
		}
	case 24:
		for i, v := range b.Data {
			out[i] = sample.To[S](sample.I24(v))
		}
	case 32:
		for i, v := range b.Data {
			out[i] = sample.To[S](sample.I32(v))
		}
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrBitDepth, depth)
	}

	return out, b.Format.NumChannels, nil
}
