package audio

import (
	"encoding/binary"
	"io"
	"testing"
)

func TestNewToneStreamLength(t *testing.T) {
	s, err := NewToneStream(48000, 220, 0.5)
	if err != nil {
		t.Fatalf("NewToneStream error: %v", err)
	}
	if s.Length() != 48000*bytesPerFrame {
		t.Errorf("Length = %d, want %d", s.Length(), 48000*bytesPerFrame)
	}
	if s.Frequency() != 220 || s.SampleRate() != 48000 {
		t.Errorf("unexpected format: %d Hz @ %d", s.Frequency(), s.SampleRate())
	}
}

func TestNewToneStreamRoundsFrequency(t *testing.T) {
	s, err := NewToneStream(8000, 440.4, 1)
	if err != nil {
		t.Fatalf("NewToneStream error: %v", err)
	}
	if s.Frequency() != 440 {
		t.Errorf("Frequency = %d, want 440", s.Frequency())
	}
}

func TestNewToneStreamInvalid(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate int
		frequency  float64
		amplitude  float64
	}{
		{"zero sample rate", 0, 220, 0.5},
		{"zero frequency", 48000, 0, 0.5},
		{"above nyquist", 8000, 4001, 0.5},
		{"negative amplitude", 48000, 220, -0.1},
		{"amplitude above one", 48000, 220, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewToneStream(tt.sampleRate, tt.frequency, tt.amplitude); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestToneStreamStartsAtZeroAndIsStereo(t *testing.T) {
	s, err := NewToneStream(8000, 100, 1)
	if err != nil {
		t.Fatalf("NewToneStream error: %v", err)
	}

	buf := make([]byte, 8*bytesPerFrame)
	if _, err := io.ReadFull(s, buf); err != nil {
		t.Fatalf("ReadFull error: %v", err)
	}
	if first := int16(binary.LittleEndian.Uint16(buf)); first != 0 {
		t.Errorf("first sample = %d, want 0", first)
	}
	for i := 0; i < 8; i++ {
		left := binary.LittleEndian.Uint16(buf[i*bytesPerFrame:])
		right := binary.LittleEndian.Uint16(buf[i*bytesPerFrame+2:])
		if left != right {
			t.Errorf("frame %d: left %d != right %d", i, left, right)
		}
	}
	// 100Hz @ 8000Hz: 第 20 帧为波峰
	if _, err := s.Seek(20*bytesPerFrame, io.SeekStart); err != nil {
		t.Fatalf("Seek error: %v", err)
	}
	if _, err := io.ReadFull(s, buf[:bytesPerFrame]); err != nil {
		t.Fatalf("ReadFull error: %v", err)
	}
	if peak := int16(binary.LittleEndian.Uint16(buf)); peak < 32000 {
		t.Errorf("peak sample = %d, want near max", peak)
	}
}

func TestToneStreamSeekAndEOF(t *testing.T) {
	s, _ := NewToneStream(8000, 100, 0.5)

	if pos, err := s.Seek(-4, io.SeekEnd); err != nil || pos != s.Length()-4 {
		t.Fatalf("Seek(-4, End) = %d, %v", pos, err)
	}
	buf := make([]byte, 16)
	n, err := s.Read(buf)
	if n != 4 || err != nil {
		t.Errorf("Read at tail = %d, %v; want 4, nil", n, err)
	}
	if _, err := s.Read(buf); err != io.EOF {
		t.Errorf("Read past end error = %v, want io.EOF", err)
	}
	if _, err := s.Seek(-1, io.SeekStart); err == nil {
		t.Error("negative seek should fail")
	}
	if _, err := s.Seek(0, 42); err == nil {
		t.Error("invalid whence should fail")
	}
}
