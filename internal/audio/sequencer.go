// Package audio implements the table core's sequencer command interface on
// top of gopxl/beep: looping synthesized music patterns, one-shot jingles
// that hand playback back to the music, and short effect blips. Everything
// is generated, no sample assets.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/arcadeworks/tui-pinball/internal/pin"
)

const sampleRate = beep.SampleRate(48000)

// Sequencer is the speaker-backed implementation of the core's audio
// command interface. A negative music position means silence. All mutation
// happens under the speaker lock, the way beep requires.
type Sequencer struct {
	mixer  *beep.Mixer
	master *gainStreamer
	music  *slotStreamer
	jingle *slotStreamer

	musicPos int
	noMusic  bool
}

// New initializes the speaker and starts the (initially silent) mix.
func New() (*Sequencer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	s := &Sequencer{
		mixer:    &beep.Mixer{},
		music:    &slotStreamer{},
		jingle:   &slotStreamer{},
		musicPos: -1,
	}
	s.mixer.Add(s.music)
	s.mixer.Add(s.jingle)
	s.master = &gainStreamer{inner: s.mixer, gain: 1}
	speaker.Play(s.master)
	return s, nil
}

// Close silences and detaches the mix. beep's speaker has no close; an empty
// mixer leaves no artifacts.
func (s *Sequencer) Close() {
	speaker.Lock()
	s.music.set(nil)
	s.jingle.set(nil)
	speaker.Unlock()
}

// SetMusic jumps the background music to a pattern position.
func (s *Sequencer) SetMusic(position int) {
	speaker.Lock()
	s.setMusicLocked(position)
	speaker.Unlock()
}

func (s *Sequencer) setMusicLocked(position int) {
	s.musicPos = position
	if position < 0 || s.noMusic {
		s.music.set(nil)
		return
	}
	s.music.set(beep.Loop(-1, newPattern(position)))
}

// PlayJingle interrupts music with a one-shot cue; when it finishes and
// returnTo is >= 0, music resumes at that position.
func (s *Sequencer) PlayJingle(j pin.Jingle, returnTo int) {
	speaker.Lock()
	defer speaker.Unlock()

	if j.Position < 0 {
		// A silence cue mutes the music outright.
		s.musicPos = j.Position
		s.music.set(nil)
		s.jingle.set(nil)
		return
	}
	s.music.set(nil)
	cue := beep.Take(sampleRate.N(time.Second*2), newPattern(j.Position))
	if j.Loop {
		s.music.set(beep.Loop(-1, newPattern(j.Position)))
		s.musicPos = j.Position
		s.jingle.set(nil)
		return
	}
	s.jingle.set(beep.Seq(cue, beep.Callback(func() {
		// Runs on the speaker goroutine, already under the lock.
		s.jingle.inner = nil
		if returnTo >= 0 {
			s.setMusicLocked(returnTo)
		} else {
			s.setMusicLocked(s.musicPos)
		}
	})))
}

// ForceEndLoop restarts the current pattern from its first beat, the
// closest analogue of finishing a tracker loop early.
func (s *Sequencer) ForceEndLoop() {
	speaker.Lock()
	s.setMusicLocked(s.musicPos)
	speaker.Unlock()
}

// SetNoMusic mutes or unmutes background music; jingles still play.
func (s *Sequencer) SetNoMusic(noMusic bool) {
	speaker.Lock()
	s.noMusic = noMusic
	s.setMusicLocked(s.musicPos)
	speaker.Unlock()
}

// SetMasterVolume sets the output gain, 0..256.
func (s *Sequencer) SetMasterVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 0x100 {
		volume = 0x100
	}
	speaker.Lock()
	s.master.gain = float64(volume) / 0x100
	speaker.Unlock()
}

// PlaySfx triggers a short effect blip.
func (s *Sequencer) PlaySfx(id pin.SfxID) {
	speaker.Lock()
	s.mixer.Add(newSfx(id))
	speaker.Unlock()
}

// Pause suspends playback without losing position.
func (s *Sequencer) Pause() {
	speaker.Lock()
	s.master.paused = true
	speaker.Unlock()
}

// Resume continues playback.
func (s *Sequencer) Resume() {
	speaker.Lock()
	s.master.paused = false
	speaker.Unlock()
}

// Tick returns the playback frame count at 60 Hz.
func (s *Sequencer) Tick() int {
	speaker.Lock()
	n := s.master.samples
	speaker.Unlock()
	return n / (int(sampleRate) / 60)
}

var _ pin.Sequencer = (*Sequencer)(nil)

// slotStreamer is a permanently mixed slot whose inner streamer can be
// swapped under the speaker lock; an empty slot streams silence forever so
// the mixer never drops it.
type slotStreamer struct {
	inner beep.Streamer
}

func (sl *slotStreamer) set(s beep.Streamer) {
	sl.inner = s
}

func (sl *slotStreamer) Stream(samples [][2]float64) (int, bool) {
	if sl.inner == nil {
		for i := range samples {
			samples[i][0] = 0
			samples[i][1] = 0
		}
		return len(samples), true
	}
	n, ok := sl.inner.Stream(samples)
	if !ok || n < len(samples) {
		sl.inner = nil
		for i := n; i < len(samples); i++ {
			samples[i][0] = 0
			samples[i][1] = 0
		}
	}
	return len(samples), true
}

func (sl *slotStreamer) Err() error { return nil }

// gainStreamer applies the master volume and the pause gate, and counts
// streamed samples for Tick.
type gainStreamer struct {
	inner   beep.Streamer
	gain    float64
	paused  bool
	samples int
}

func (g *gainStreamer) Stream(samples [][2]float64) (int, bool) {
	if g.paused {
		for i := range samples {
			samples[i][0] = 0
			samples[i][1] = 0
		}
		return len(samples), true
	}
	n, _ := g.inner.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= g.gain
		samples[i][1] *= g.gain
	}
	g.samples += n
	return len(samples), true
}

func (g *gainStreamer) Err() error { return nil }

// pattern is a tiny deterministic chiptune: a pentatonic bass/lead loop
// whose notes derive from the pattern position, so every table mood sounds
// distinct without any assets.
type pattern struct {
	pos   int
	t     int
	notes [8]float64
	tempo int // samples per step
}

var pentatonic = [5]float64{220.0, 261.63, 293.66, 329.63, 392.0}

func newPattern(position int) *pattern {
	p := &pattern{pos: position, tempo: sampleRate.N(time.Millisecond * 220)}
	seed := position*2654435761 + 97
	for i := range p.notes {
		seed = seed*1103515245 + 12345
		idx := (seed >> 8) & 0x7fffffff % len(pentatonic)
		octave := 1 << (uint(position%3))
		p.notes[i] = pentatonic[idx] * float64(octave) / 2
	}
	return p
}

func (p *pattern) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		step := (p.t / p.tempo) % len(p.notes)
		within := float64(p.t%p.tempo) / float64(p.tempo)
		freq := p.notes[step]
		t := float64(p.t) / float64(sampleRate)

		env := math.Exp(-within * 4)
		lead := 0.12 * env * square(2*math.Pi*freq*t)
		bass := 0.08 * math.Sin(2*math.Pi*(freq/2)*t)

		sample := lead + bass
		samples[i][0] = sample
		samples[i][1] = sample
		p.t++
		// One full loop is eight steps; wrap to keep t bounded.
		if p.t >= p.tempo*len(p.notes) {
			p.t = 0
			return i + 1, true
		}
	}
	return len(samples), true
}

func (p *pattern) Err() error { return nil }

func (p *pattern) Len() int      { return p.tempo * len(p.notes) }
func (p *pattern) Position() int { return p.t }
func (p *pattern) Seek(pos int) error {
	p.t = pos
	return nil
}

func square(x float64) float64 {
	if math.Sin(x) >= 0 {
		return 1
	}
	return -1
}

// newSfx builds a short one-shot effect for an id: each effect is a pitched
// blip with its own envelope character.
func newSfx(id pin.SfxID) beep.Streamer {
	var freq, dur, amp float64
	switch id {
	case pin.SfxFlipper:
		freq, dur, amp = 180, 0.06, 0.25
	case pin.SfxBumper:
		freq, dur, amp = 520, 0.09, 0.3
	case pin.SfxKicker:
		freq, dur, amp = 340, 0.12, 0.3
	case pin.SfxTarget:
		freq, dur, amp = 760, 0.08, 0.25
	case pin.SfxRoll:
		freq, dur, amp = 440, 0.05, 0.15
	case pin.SfxSpring:
		freq, dur, amp = 120, 0.25, 0.3
	case pin.SfxGameStart:
		freq, dur, amp = 660, 0.3, 0.3
	case pin.SfxDrain:
		freq, dur, amp = 90, 0.4, 0.35
	case pin.SfxExtraBall:
		freq, dur, amp = 880, 0.35, 0.3
	default:
		freq, dur, amp = 500+float64(id)*7, 0.1, 0.25
	}
	n := sampleRate.N(time.Duration(dur * float64(time.Second)))
	return beep.Take(n, &blip{freq: freq, amp: amp, total: n})
}

// blip is a decaying sine burst.
type blip struct {
	freq  float64
	amp   float64
	pos   int
	total int
}

func (b *blip) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(b.pos) / float64(sampleRate)
		env := 1 - float64(b.pos)/float64(b.total)
		sample := b.amp * env * math.Sin(2*math.Pi*b.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		b.pos++
	}
	return len(samples), true
}

func (b *blip) Err() error { return nil }
