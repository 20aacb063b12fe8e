// Package audio plays the sound cues of the game: the chop, the death
// squish and the out-of-time buzzer.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog"
)

const (
	SampleRate    = 44100
	channels      = 2
	bytesPerFrame = channels * 2 // 16-bit samples
)

// Cue identifies a sound effect.
type Cue int

const (
	Chop Cue = iota
	Death
	OutOfTime
)

// Cues lists every cue in playback priority order.
var Cues = []Cue{Chop, Death, OutOfTime}

// String returns the cue name, which is also the base name of its sound file.
func (c Cue) String() string {
	switch c {
	case Chop:
		return "chop"
	case Death:
		return "death"
	case OutOfTime:
		return "out_of_time"
	default:
		return "unknown"
	}
}

// FileName returns the conventional file name of the cue's sample.
func (c Cue) FileName() string {
	return c.String() + ".wav"
}

// Player plays sound cues.
type Player interface {
	Play(c Cue)
}

// Silent is a Player that plays nothing.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}

// Bank holds one ready-to-play sample per cue.
type Bank struct {
	players map[Cue]*audio.Player
	logger  zerolog.Logger
}

// NewBank creates the audio context and a player for each clip. Cues
// missing from clips are synthesized.
func NewBank(clips map[Cue][]byte, volume float64, logger zerolog.Logger) *Bank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}

	b := &Bank{
		players: make(map[Cue]*audio.Player, len(Cues)),
		logger:  logger,
	}
	for _, c := range Cues {
		pcm, ok := clips[c]
		if !ok {
			pcm = Synthesize(c)
		}
		p := ctx.NewPlayerFromBytes(pcm)
		p.SetVolume(volume)
		b.players[c] = p
	}
	return b
}

// Play restarts the cue from the beginning.
func (b *Bank) Play(c Cue) {
	p, ok := b.players[c]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		b.logger.Warn().Err(err).Stringer("cue", c).Msg("failed to rewind sound")
		return
	}
	p.Play()
}

// LoadClip decodes a WAV file into PCM at SampleRate.
func LoadClip(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeWAV(data)
}

// DecodeWAV decodes WAV data into 16-bit stereo PCM at SampleRate,
// resampling when needed.
func DecodeWAV(data []byte) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav samples: %w", err)
	}
	return pcm, nil
}
