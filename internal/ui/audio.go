package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/session"
)

// Sound is a short synthesized cue.
type Sound int

const (
	SoundMove Sound = iota
	SoundCapture
	SoundCastle
	SoundCheck
	SoundRejected
	SoundGameOver
)

const sampleRate = 44100

// envelope shapes amplitude over a clip; t is seconds, p is progress 0..1.
type envelope func(t, p float64) float64

func percussive(t, _ float64) float64 { return math.Exp(-t * 30) }

func attackDecay(_, p float64) float64 {
	if p < 0.1 {
		return p / 0.1
	}
	return 1 - (p-0.1)/0.9
}

func linearDecay(_, p float64) float64 { return 1 - p }

func swell(_, p float64) float64 {
	switch {
	case p < 0.1:
		return p / 0.1
	case p > 0.7:
		return (1 - p) / 0.3
	default:
		return 1
	}
}

// voice describes one clip: the summed partials and how they fade.
type voice struct {
	freqs     []float64
	duration  float64
	amplitude float64
	shape     envelope
	grain     bool // adds a wooden rattle to clicks
}

// samples renders the voice as mono floats in -1..1.
func (v voice) samples() []float64 {
	n := int(sampleRate * v.duration)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sampleRate
		var s float64
		for _, f := range v.freqs {
			s += math.Sin(2 * math.Pi * f * t)
		}
		s /= float64(len(v.freqs))
		if v.grain {
			s += (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		}
		out[i] = s * v.shape(t, float64(i)/float64(n)) * v.amplitude
	}
	return out
}

// pcm encodes mono samples as 16-bit little-endian stereo frames.
func pcm(samples []float64) []byte {
	data := make([]byte, len(samples)*4)
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		val := int16(s * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

func click(freq, duration, amplitude float64) []float64 {
	return voice{freqs: []float64{freq}, duration: duration, amplitude: amplitude, shape: percussive, grain: true}.samples()
}

// synthesize builds the clip for every sound.
func synthesize() map[Sound][]byte {
	castle := click(400, 0.06, 0.3)
	castle = append(castle, make([]float64, sampleRate/20)...)
	castle = append(castle, click(440, 0.06, 0.24)...)

	buzz := voice{freqs: []float64{150, 300}, duration: 0.1, amplitude: 0.25, shape: linearDecay}.samples()

	return map[Sound][]byte{
		SoundMove:     pcm(click(440, 0.08, 0.3)),
		SoundCapture:  pcm(click(330, 0.12, 0.5)),
		SoundCastle:   pcm(castle),
		SoundCheck:    pcm(voice{freqs: []float64{880}, duration: 0.15, amplitude: 0.4, shape: attackDecay}.samples()),
		SoundRejected: pcm(buzz),
		SoundGameOver: pcm(voice{freqs: []float64{261.63, 329.63, 392.00}, duration: 0.4, amplitude: 0.5, shape: swell}.samples()),
	}
}

// soundFor picks the cue for a move that was just played.
func soundFor(m board.Move, st session.Status) Sound {
	switch {
	case st == session.StatusCheckmate || st == session.StatusStalemate:
		return SoundGameOver
	case st == session.StatusCheck:
		return SoundCheck
	case m.IsCastle:
		return SoundCastle
	case m.IsCapture():
		return SoundCapture
	default:
		return SoundMove
	}
}

// AudioManager plays sound cues.
type AudioManager struct {
	context *audio.Context
	clips   map[Sound][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates the audio context and synthesizes every clip.
func NewAudioManager(enabled bool) *AudioManager {
	return &AudioManager{
		context: audio.NewContext(sampleRate),
		clips:   synthesize(),
		enabled: enabled,
		volume:  0.5,
	}
}

// Play starts a clip; overlapping clips each get their own player.
func (am *AudioManager) Play(s Sound) {
	if am == nil || !am.enabled {
		return
	}
	data, ok := am.clips[s]
	if !ok {
		return
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled turns sound on or off.
func (am *AudioManager) SetEnabled(enabled bool) {
	if am != nil {
		am.enabled = enabled
	}
}
