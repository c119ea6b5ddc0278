package audio

import "github.com/arcadeworks/tui-pinball/internal/pin"

// Null is a silent sequencer for tests and headless runs. It records the
// last few commands so tests can assert on audio-visible behavior without a
// speaker.
type Null struct {
	MusicPos   int
	NoMusic    bool
	Volume     int
	Jingles    []pin.Jingle
	Sfx        []pin.SfxID
	PausedFlag bool
	ticks      int
}

// NewNull returns a silent sequencer.
func NewNull() *Null {
	return &Null{Volume: 0x100}
}

func (n *Null) SetMusic(position int)            { n.MusicPos = position }
func (n *Null) PlayJingle(j pin.Jingle, ret int) { n.Jingles = append(n.Jingles, j) }
func (n *Null) ForceEndLoop()                    {}
func (n *Null) SetNoMusic(noMusic bool)          { n.NoMusic = noMusic }
func (n *Null) SetMasterVolume(volume int)       { n.Volume = volume }
func (n *Null) PlaySfx(id pin.SfxID)             { n.Sfx = append(n.Sfx, id) }
func (n *Null) Pause()                           { n.PausedFlag = true }
func (n *Null) Resume()                          { n.PausedFlag = false }

// Tick advances on every call so pacing code keeps moving in tests.
func (n *Null) Tick() int {
	n.ticks++
	return n.ticks
}

var _ pin.Sequencer = (*Null)(nil)
