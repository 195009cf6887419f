package audio

import (
	"gridshot/internal/config"
	"gridshot/internal/event"
	"gridshot/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
)

// Feedback plays a cue for each gameplay event it receives. A disabled
// Feedback accepts events and stays silent.
type Feedback struct {
	ctx    *audio.Context
	bank   *Bank
	volume float64
	active []*audio.Player
	log    *logrus.Entry
}

// NewFeedback builds the cue bank and the audio context. Only one context
// may exist per process, so an existing one with the same rate is reused.
func NewFeedback(cfg config.AudioConfig) *Feedback {
	f := &Feedback{volume: cfg.Volume, log: logger.Component("audio")}
	if !cfg.Enabled {
		f.log.Info("audio disabled")
		return f
	}

	f.ctx = audio.CurrentContext()
	if f.ctx == nil {
		f.ctx = audio.NewContext(cfg.SampleRate)
	} else if f.ctx.SampleRate() != cfg.SampleRate {
		f.log.WithFields(logrus.Fields{
			"want": cfg.SampleRate,
			"have": f.ctx.SampleRate(),
		}).Warn("audio context already exists with another rate, audio disabled")
		f.ctx = nil
		return f
	}
	f.bank = NewBank(cfg)
	return f
}

// Enabled reports whether cues will be heard.
func (f *Feedback) Enabled() bool { return f.ctx != nil }

func (f *Feedback) Emit(e event.Event) {
	if c, ok := CueFor(e); ok {
		f.Play(c)
	}
}

func (f *Feedback) Play(c Cue) {
	if f.ctx == nil || f.volume <= 0 {
		return
	}
	pcm := f.bank.PCM(c)
	if len(pcm) == 0 {
		return
	}
	p := f.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(f.volume)
	p.Play()
	f.active = append(f.active, p)
}

// Update releases players that finished. Call once per tick.
func (f *Feedback) Update() {
	n := 0
	for _, p := range f.active {
		if p.IsPlaying() {
			f.active[n] = p
			n++
			continue
		}
		if err := p.Close(); err != nil {
			f.log.WithError(err).Debug("close audio player")
		}
	}
	clear(f.active[n:])
	f.active = f.active[:n]
}

// Close stops and releases every active player.
func (f *Feedback) Close() {
	for _, p := range f.active {
		_ = p.Close()
	}
	f.active = nil
}
