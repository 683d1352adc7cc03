// Package notify plays the completion alert for a finished timer phase.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Notifier alerts the user that a phase has finished.
type Notifier interface {
	Notify(settings models.Settings, done timer.PhaseCompleted)
}

// tone is one note of an alert: frequency in Hz, or 0 for silence.
type tone struct {
	freq float64
	dur  time.Duration
}

var melodies = map[models.Sound][]tone{
	models.SoundBell:  {{880, 180 * time.Millisecond}, {0, 60 * time.Millisecond}, {880, 180 * time.Millisecond}},
	models.SoundChime: {{659, 150 * time.Millisecond}, {784, 150 * time.Millisecond}, {1047, 300 * time.Millisecond}},
	models.SoundDing:  {{1319, 250 * time.Millisecond}},
}

// Player plays alert tones on the default audio device and rings the
// terminal bell for vibration.
type Player struct {
	mu       sync.Mutex
	bell     io.Writer
	initOnce sync.Once
	audioOK  bool
	playing  sync.WaitGroup
}

// NewPlayer returns a Player that writes the terminal bell to bell.
func NewPlayer(bell io.Writer) *Player {
	return &Player{bell: bell}
}

func (p *Player) Notify(settings models.Settings, done timer.PhaseCompleted) {
	util.Debugf("notify: %s finished, sound=%s vibration=%t", done.Phase, settings.Sound, settings.Vibration)
	if settings.Vibration && p.bell != nil {
		p.mu.Lock()
		_, err := io.WriteString(p.bell, "\a")
		p.mu.Unlock()
		if err != nil {
			util.LogError("Terminal bell", err)
		}
	}
	if settings.Sound == models.SoundNone {
		return
	}
	if !p.initAudio() {
		return
	}
	streamer, err := Melody(settings.Sound)
	if err != nil {
		util.LogError("Build alert", err)
		return
	}
	p.playing.Add(1)
	speaker.Play(beep.Seq(streamer, beep.Callback(p.playing.Done)))
}

// Wait blocks until queued alerts finished playing or timeout elapsed.
func (p *Player) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		p.playing.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (p *Player) initAudio() bool {
	p.initOnce.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			util.LogError("Audio disabled: failed to initialize speaker", err)
			return
		}
		p.audioOK = true
	})
	return p.audioOK
}

// Melody builds the streamer for sound.
func Melody(sound models.Sound) (beep.Streamer, error) {
	notes, ok := melodies[sound]
	if !ok {
		return nil, fmt.Errorf("no melody for sound %q", sound)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, generators.Silence(samples))
			continue
		}
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(samples, sine))
	}
	return beep.Seq(parts...), nil
}

// Recorder keeps every notification; tests and headless runs use it.
type Recorder struct {
	mu    sync.Mutex
	Calls []Call
}

type Call struct {
	Settings models.Settings
	Done     timer.PhaseCompleted
}

func (r *Recorder) Notify(settings models.Settings, done timer.PhaseCompleted) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, Call{Settings: settings, Done: done})
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Calls)
}
