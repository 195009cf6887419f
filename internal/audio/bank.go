package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gridshot/internal/config"
	"gridshot/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/sirupsen/logrus"
)

// synthGain leaves headroom for mixed cues
const synthGain = 0.45

// Bank holds the decoded PCM for every cue.
type Bank struct {
	rate int
	pcm  [cueCount][]byte
}

// NewBank synthesizes every cue, then applies file overrides from the audio
// config. An override that cannot be read keeps the synthesized sound.
func NewBank(cfg config.AudioConfig) *Bank {
	log := logger.Component("audio")
	b := &Bank{rate: cfg.SampleRate}

	s := newSynth(cfg.SampleRate)
	for c := Cue(0); c < cueCount; c++ {
		b.pcm[c] = encodePCM16(s.generate(c), synthGain)
	}

	for name, path := range cfg.SFX {
		c, ok := CueByName(name)
		if !ok {
			log.WithField("cue", name).Warn("unknown sound cue in config")
			continue
		}
		pcm, err := decodeFile(path, cfg.SampleRate)
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{"cue": name, "path": path}).Warn("sound override failed, keeping synthesized cue")
			continue
		}
		b.pcm[c] = pcm
	}
	return b
}

// PCM returns the cue's 16-bit stereo samples.
func (b *Bank) PCM(c Cue) []byte {
	if c < 0 || c >= cueCount {
		return nil
	}
	return b.pcm[c]
}

func decodeFile(path string, sampleRate int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode wav %s: %w", path, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode ogg %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported sound format %q", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read decoded sound %s: %w", path, err)
	}
	return pcm, nil
}
