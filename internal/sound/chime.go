// Package sound plays the completion chime.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// SampleRate is the rate the chime is synthesised and played at.
const SampleRate = beep.SampleRate(44100)

type note struct {
	frequency float64
	length    time.Duration
}

var chimeNotes = []note{
	{frequency: 880, length: 180 * time.Millisecond},
	{frequency: 0, length: 60 * time.Millisecond},
	{frequency: 660, length: 320 * time.Millisecond},
}

// Player plays a streamer on an audio device.
type Player interface {
	Play(streamer beep.Streamer) error
}

// SpeakerPlayer plays through beep/speaker, initialising it on first use.
type SpeakerPlayer struct {
	once       sync.Once
	sampleRate beep.SampleRate
	err        error
}

// NewSpeakerPlayer creates a player for the given sample rate.
func NewSpeakerPlayer(sampleRate beep.SampleRate) *SpeakerPlayer {
	return &SpeakerPlayer{sampleRate: sampleRate}
}

// Play queues streamer on the speaker.
func (player *SpeakerPlayer) Play(streamer beep.Streamer) error {
	player.once.Do(func() {
		player.err = speaker.Init(player.sampleRate, player.sampleRate.N(100*time.Millisecond))
	})
	if player.err != nil {
		return fmt.Errorf("init speaker: %w", player.err)
	}
	speaker.Play(streamer)
	return nil
}

// Chime is a short two-note tone synthesised in code.
type Chime struct {
	mu     sync.Mutex
	player Player
	volume float64
}

// NewChime creates a chime that plays through player.
func NewChime(player Player, volume float64) *Chime {
	if player == nil {
		player = NewSpeakerPlayer(SampleRate)
	}
	return &Chime{player: player, volume: ClampVolume(volume)}
}

// SetVolume changes the amplitude of later plays.
func (chime *Chime) SetVolume(volume float64) {
	chime.mu.Lock()
	defer chime.mu.Unlock()
	chime.volume = ClampVolume(volume)
}

// Play starts the chime without waiting for it to finish.
func (chime *Chime) Play() error {
	if err := chime.player.Play(chime.Streamer()); err != nil {
		return fmt.Errorf("play chime: %w", err)
	}
	return nil
}

// Streamer returns a fresh finite streamer for the chime.
func (chime *Chime) Streamer() beep.Streamer {
	chime.mu.Lock()
	volume := chime.volume
	chime.mu.Unlock()

	streamers := make([]beep.Streamer, 0, len(chimeNotes))
	for _, n := range chimeNotes {
		if n.frequency <= 0 {
			streamers = append(streamers, beep.Silence(SampleRate.N(n.length)))
			continue
		}
		streamers = append(streamers, tone(SampleRate, n.frequency, n.length, volume))
	}
	return beep.Seq(streamers...)
}

// Length returns the number of samples a full chime produces.
func Length() int {
	total := 0
	for _, n := range chimeNotes {
		total += SampleRate.N(n.length)
	}
	return total
}

// tone is a sine wave with a linear fade-out.
func tone(sampleRate beep.SampleRate, frequency float64, length time.Duration, volume float64) beep.Streamer {
	total := sampleRate.N(length)
	position := 0
	step := 2 * math.Pi * frequency / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if position >= total {
				break
			}
			envelope := 1 - float64(position)/float64(total)
			value := volume * envelope * math.Sin(step*float64(position))
			samples[i][0] = value
			samples[i][1] = value
			position++
			n++
		}
		return n, true
	})
}

// ClampVolume limits a chime volume to [0, 1].
func ClampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
