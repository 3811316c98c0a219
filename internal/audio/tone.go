package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// bytesPerFrame 16-bit 立体声，每帧 4 字节
const bytesPerFrame = 4

// ToneStream is a one-second buffer of a sine tone in the PCM layout
// Ebitengine's audio.Player expects (16-bit signed little-endian, stereo).
// The frequency is rounded to whole hertz so the buffer loops without a click.
type ToneStream struct {
	data       []byte // PCM data
	sampleRate int64  // Sample rate in Hz
	frequency  int    // Tone frequency in Hz (whole cycles per buffer)
	offset     int64  // Current read position
}

// NewToneStream renders a sine tone.
//
// Parameters:
//   - sampleRate: output sample rate in Hz, must be positive
//   - frequency: tone frequency in Hz, must be in (0, sampleRate/2]
//   - amplitude: peak level in [0, 1]
//
// Returns:
//   - *ToneStream: rendered stream positioned at the start
//   - error: if a parameter is out of range
func NewToneStream(sampleRate int, frequency, amplitude float64) (*ToneStream, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	cycles := int(math.Round(frequency))
	if cycles <= 0 || cycles > sampleRate/2 {
		return nil, fmt.Errorf("frequency %.1f Hz out of range for sample rate %d", frequency, sampleRate)
	}
	if amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("amplitude %.2f out of range [0, 1]", amplitude)
	}

	data := make([]byte, sampleRate*bytesPerFrame)
	for i := 0; i < sampleRate; i++ {
		v := amplitude * math.Sin(2*math.Pi*float64(cycles)*float64(i)/float64(sampleRate))
		sample := uint16(int16(v * math.MaxInt16))
		// 左右声道写入相同样本
		binary.LittleEndian.PutUint16(data[i*bytesPerFrame:], sample)
		binary.LittleEndian.PutUint16(data[i*bytesPerFrame+2:], sample)
	}

	return &ToneStream{
		data:       data,
		sampleRate: int64(sampleRate),
		frequency:  cycles,
	}, nil
}

// Read reads PCM data into p.
// Implements io.Reader interface.
func (s *ToneStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
// Implements io.Seeker interface.
func (s *ToneStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length returns the buffer length in bytes.
// Used as the loop length for audio.NewInfiniteLoop.
func (s *ToneStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate returns the sample rate in Hz.
func (s *ToneStream) SampleRate() int64 {
	return s.sampleRate
}

// Frequency returns the rendered frequency in Hz.
func (s *ToneStream) Frequency() int {
	return s.frequency
}
