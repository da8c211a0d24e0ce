package systems

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"ebiten-racer/ecs"
)

// AudioSystem plays sound effects in response to gameplay events. A
// missing sound file downgrades to silence; audio is never required for
// the demo to run.
type AudioSystem struct {
	active       bool
	audioContext *audio.Context
	sampleRate   int
	crashSound   []byte
}

// NewAudioSystem creates a new audio system
func NewAudioSystem() *AudioSystem {
	sampleRate := 44100
	return &AudioSystem{
		active:       true,
		audioContext: audio.NewContext(sampleRate),
		sampleRate:   sampleRate,
	}
}

func (s *AudioSystem) Priority() int {
	return 50
}

func (s *AudioSystem) IsActive() bool {
	return s.active
}

// Update is a no-op; playback is event-driven.
func (s *AudioSystem) Update(e *ecs.Engine, dt float64) {}

// Init subscribes to collision events.
func (s *AudioSystem) Init(e *ecs.Engine) {
	e.Events().Subscribe(EventCollision, func(ecs.Event) {
		s.playCrash()
	})
}

// LoadCrashSound decodes the wall-hit effect from a WAV file.
func (s *AudioSystem) LoadCrashSound(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open sound %s: %w", path, err)
	}
	defer file.Close()

	stream, err := wav.DecodeWithSampleRate(s.sampleRate, file)
	if err != nil {
		return fmt.Errorf("decode sound %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read sound %s: %w", path, err)
	}
	s.crashSound = pcm
	return nil
}

func (s *AudioSystem) playCrash() {
	if s.crashSound == nil {
		return
	}
	player := s.audioContext.NewPlayerFromBytes(s.crashSound)
	player.Play()
}
