package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
)

const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono samples at unity gain
type floatBuffer []float64

type synth struct {
	rate int
	rng  *rand.Rand
}

func newSynth(rate int) *synth {
	return &synth{rate: rate, rng: rand.New(rand.NewSource(1))}
}

func (s *synth) samples(sec float64) int {
	return int(sec * float64(s.rate))
}

func (s *synth) oscillator(wave int, freq, sec float64) floatBuffer {
	return s.sweep(wave, freq, freq, sec)
}

// sweep glides the frequency linearly from f0 to f1 over the buffer.
func (s *synth) sweep(wave int, f0, f1, sec float64) floatBuffer {
	n := s.samples(sec)
	buf := make(floatBuffer, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		switch wave {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveSaw:
			buf[i] = 2 * (phase - 0.5)
		case waveNoise:
			buf[i] = s.rng.Float64()*2 - 1
		}

		freq := f0 + (f1-f0)*float64(i)/float64(n)
		phase += freq / float64(s.rate)
		if phase >= 1 {
			phase -= math.Floor(phase)
		}
	}
	return buf
}

func (s *synth) silence(sec float64) floatBuffer {
	return make(floatBuffer, s.samples(sec))
}

// envelope applies a linear attack/release in place.
func (s *synth) envelope(buf floatBuffer, attackSec, releaseSec float64) floatBuffer {
	total := len(buf)
	attack := s.samples(attackSec)
	release := s.samples(releaseSec)

	releaseStart := max(total-release, attack)
	for i := range buf {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
	return buf
}

// mix adds b scaled into a, extending a when b is longer.
func mix(a, b floatBuffer, scale float64) floatBuffer {
	if len(b) > len(a) {
		grown := make(floatBuffer, len(b))
		copy(grown, a)
		a = grown
	}
	for i := range b {
		a[i] += b[i] * scale
	}
	return a
}

func concat(bufs ...floatBuffer) floatBuffer {
	n := 0
	for _, b := range bufs {
		n += len(b)
	}
	out := make(floatBuffer, 0, n)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}

func (s *synth) generate(c Cue) floatBuffer {
	switch c {
	case CueShotPistol:
		body := s.envelope(s.sweep(waveSquare, 900, 200, 0.12), 0.002, 0.09)
		return mix(body, s.envelope(s.oscillator(waveNoise, 0, 0.05), 0.001, 0.04), 0.6)
	case CueShotSMG:
		body := s.envelope(s.sweep(waveSquare, 1200, 500, 0.06), 0.001, 0.04)
		return mix(body, s.envelope(s.oscillator(waveNoise, 0, 0.04), 0.001, 0.03), 0.5)
	case CueShotRifle:
		body := s.envelope(s.sweep(waveSaw, 700, 120, 0.2), 0.002, 0.15)
		return mix(body, s.envelope(s.oscillator(waveNoise, 0, 0.08), 0.001, 0.06), 0.7)
	case CueShotShotgun:
		blast := s.envelope(s.oscillator(waveNoise, 0, 0.3), 0.002, 0.25)
		return mix(blast, s.envelope(s.sweep(waveSine, 160, 60, 0.25), 0.002, 0.2), 0.8)
	case CueShotRocket:
		whoosh := s.envelope(s.oscillator(waveNoise, 0, 0.45), 0.05, 0.3)
		return mix(whoosh, s.envelope(s.sweep(waveSaw, 90, 40, 0.45), 0.02, 0.35), 0.7)
	case CueReload:
		click := func() floatBuffer { return s.envelope(s.oscillator(waveNoise, 0, 0.03), 0.001, 0.025) }
		return concat(click(), s.silence(0.12), click())
	case CueConsume:
		return s.envelope(s.sweep(waveSine, 400, 800, 0.3), 0.05, 0.15)
	case CuePlayerHurt:
		return s.envelope(s.sweep(waveSaw, 220, 140, 0.15), 0.005, 0.1)
	case CuePlayerDeath:
		return s.envelope(s.sweep(waveSaw, 300, 50, 1.0), 0.01, 0.6)
	case CueEnemyHurt:
		return s.envelope(s.sweep(waveSquare, 520, 420, 0.08), 0.002, 0.05)
	case CueEnemyDeath:
		return s.envelope(s.sweep(waveSquare, 600, 90, 0.4), 0.005, 0.3)
	case CueChest:
		n1 := s.envelope(s.oscillator(waveSquare, 987.77, 0.08), 0.002, 0.03)
		n2 := s.envelope(s.oscillator(waveSquare, 1318.51, 0.2), 0.002, 0.15)
		return concat(n1, n2)
	case CuePickup:
		return s.envelope(s.oscillator(waveSine, 1200, 0.07), 0.002, 0.05)
	case CueVictory:
		var out floatBuffer
		for _, f := range []float64{523.25, 659.25, 783.99, 1046.5} {
			out = concat(out, s.envelope(s.oscillator(waveSquare, f, 0.14), 0.005, 0.06))
		}
		return out
	}
	return nil
}

// encodePCM16 converts mono samples to the interleaved 16-bit little endian
// stereo stream the audio context plays, clipping at full scale.
func encodePCM16(buf floatBuffer, gain float64) []byte {
	out := make([]byte, len(buf)*4)
	for i, v := range buf {
		v = math.Max(-1, math.Min(1, v*gain))
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], sample)
		binary.LittleEndian.PutUint16(out[i*4+2:], sample)
	}
	return out
}
