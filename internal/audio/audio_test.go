package audio

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestSynthesizeProducesStereoPCM(t *testing.T) {
	tests := []struct {
		cue     Cue
		seconds float64
	}{
		{Chop, 0.12},
		{Death, 0.6},
		{OutOfTime, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			pcm := Synthesize(tt.cue)
			wantLen := int(SampleRate*tt.seconds) * bytesPerFrame
			if len(pcm) != wantLen {
				t.Fatalf("Expected %d bytes, got %d", wantLen, len(pcm))
			}

			var peak int16
			for i := 0; i+bytesPerFrame <= len(pcm); i += bytesPerFrame {
				left := int16(binary.LittleEndian.Uint16(pcm[i:]))
				right := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
				if left != right {
					t.Fatalf("frame %d: channels differ (%d vs %d)", i/bytesPerFrame, left, right)
				}
				if left < 0 {
					left = -left
				}
				if left > peak {
					peak = left
				}
			}
			if peak < 1000 {
				t.Errorf("Expected an audible cue, peak amplitude %d", peak)
			}
		})
	}
}

func TestSynthesizeUnknownCue(t *testing.T) {
	if pcm := Synthesize(Cue(99)); pcm != nil {
		t.Errorf("Expected nil for unknown cue, got %d bytes", len(pcm))
	}
}

func TestChopIsDeterministic(t *testing.T) {
	a := Synthesize(Chop)
	b := Synthesize(Chop)
	if string(a) != string(b) {
		t.Error("Expected the chop cue to be identical between calls")
	}
}

func TestWAVRoundTrip(t *testing.T) {
	pcm := Synthesize(Death)
	path := filepath.Join(t.TempDir(), Death.FileName())
	if err := os.WriteFile(path, EncodeWAV(pcm), 0o644); err != nil {
		t.Fatalf("Failed to write wav: %v", err)
	}

	decoded, err := LoadClip(path)
	if err != nil {
		t.Fatalf("Failed to load clip: %v", err)
	}
	if len(decoded) != len(pcm) {
		t.Errorf("Expected %d bytes after decoding, got %d", len(pcm), len(decoded))
	}
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	if _, err := DecodeWAV([]byte("definitely not a wav file")); err == nil {
		t.Error("Expected an error for invalid wav data")
	}
}

func TestCueFileNames(t *testing.T) {
	want := map[Cue]string{
		Chop:      "chop.wav",
		Death:     "death.wav",
		OutOfTime: "out_of_time.wav",
	}
	for c, name := range want {
		if got := c.FileName(); got != name {
			t.Errorf("%d.FileName() = %q, want %q", c, got, name)
		}
	}
}
