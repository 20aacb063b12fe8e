package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/rand"
)

// Synthesize generates the fallback waveform for a cue as 16-bit signed
// little-endian stereo PCM at SampleRate.
func Synthesize(c Cue) []byte {
	switch c {
	case Chop:
		return genChop()
	case Death:
		return genDeath()
	case OutOfTime:
		return genOutOfTime()
	default:
		return nil
	}
}

// genChop is a short burst of noise over a low thump.
func genChop() []byte {
	const dur = 0.12
	n := int(SampleRate * dur)
	buf := make([]byte, n*bytesPerFrame)
	// Fixed seed so the cue sounds the same every run.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		noise := (rng.Float64()*2 - 1) * math.Exp(-40*t) * 0.6
		thump := math.Sin(2*math.Pi*90*t) * math.Exp(-25*t) * 0.5
		putStereo16(buf, i, noise+thump)
	}
	return buf
}

// genDeath is a tone falling from 440 Hz to 110 Hz.
func genDeath() []byte {
	const dur = 0.6
	n := int(SampleRate * dur)
	buf := make([]byte, n*bytesPerFrame)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		freq := 440 - 330*(t/dur)
		phase += 2 * math.Pi * freq / SampleRate
		envelope := 1 - t/dur
		// Odd harmonic gives it some grit
		v := (math.Sin(phase) + 0.3*math.Sin(3*phase)) * 0.5 * envelope
		putStereo16(buf, i, v)
	}
	return buf
}

// genOutOfTime is a buzzer alternating between two pitches.
func genOutOfTime() []byte {
	const dur = 0.8
	const step = 0.2
	n := int(SampleRate * dur)
	buf := make([]byte, n*bytesPerFrame)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		freq := 660.0
		if int(t/step)%2 == 1 {
			freq = 440
		}
		fade := 1.0
		if rem := dur - t; rem < 0.05 {
			fade = rem / 0.05
		}
		putStereo16(buf, i, math.Sin(2*math.Pi*freq*t)*0.4*fade)
	}
	return buf
}

// putStereo16 writes a [-1,1] sample to both channels of frame i.
func putStereo16(buf []byte, i int, sample float64) {
	if sample > 1 {
		sample = 1
	} else if sample < -1 {
		sample = -1
	}
	v := int16(sample * math.MaxInt16)
	binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], uint16(v))
	binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], uint16(v))
}

// EncodeWAV wraps PCM produced by Synthesize in a RIFF/WAVE container.
func EncodeWAV(pcm []byte) []byte {
	var b bytes.Buffer
	write := func(v any) {
		// bytes.Buffer writes never fail
		_ = binary.Write(&b, binary.LittleEndian, v)
	}

	b.WriteString("RIFF")
	write(uint32(36 + len(pcm)))
	b.WriteString("WAVE")

	b.WriteString("fmt ")
	write(uint32(16))                         // chunk size
	write(uint16(1))                          // PCM
	write(uint16(channels))                   // channels
	write(uint32(SampleRate))                 // sample rate
	write(uint32(SampleRate * bytesPerFrame)) // byte rate
	write(uint16(bytesPerFrame))              // block align
	write(uint16(16))                         // bits per sample

	b.WriteString("data")
	write(uint32(len(pcm)))
	b.Write(pcm)

	return b.Bytes()
}
