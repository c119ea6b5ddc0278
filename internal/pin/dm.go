package pin

// Dot-matrix display dimensions in DM pixels.
const (
	DMWidth  = 160
	DMHeight = 16
)

// Font selects a dot-matrix text size.
type Font int

const (
	FontH7  Font = iota // 5x7 glyphs
	FontH13             // 5x7 glyphs doubled to 10x14
)

// DotMatrix is the table's score/message display: a monochrome pixel grid
// with an on/off state used for blinking and a save slot used by the pause
// overlay.
type DotMatrix struct {
	pixels   [DMHeight][DMWidth]bool
	saved    [DMHeight][DMWidth]bool
	on       bool
	blinking bool
	blinkCnt int
}

func newDotMatrix() DotMatrix {
	return DotMatrix{on: true}
}

// Clear blanks the display.
func (d *DotMatrix) Clear() {
	d.pixels = [DMHeight][DMWidth]bool{}
}

// Save stores the current pixel grid for a later Restore.
func (d *DotMatrix) Save() {
	d.saved = d.pixels
}

// Restore brings back the saved pixel grid and stops blinking.
func (d *DotMatrix) Restore() {
	d.pixels = d.saved
	d.blinking = false
	d.on = true
}

// SetState forces the display lit or dark.
func (d *DotMatrix) SetState(on bool) {
	d.on = on
}

// State reports whether the display is currently lit.
func (d *DotMatrix) State() bool {
	return d.on
}

// SetBlink starts or stops display blinking.
func (d *DotMatrix) SetBlink(on bool) {
	d.blinking = on
	if !on {
		d.on = true
	}
}

// BlinkFrame advances the blink phase by one rendered frame.
func (d *DotMatrix) BlinkFrame() {
	if !d.blinking {
		return
	}
	d.blinkCnt++
	if d.blinkCnt >= 15 {
		d.blinkCnt = 0
		d.on = !d.on
	}
}

// Pixels returns a copy of the pixel grid for the render snapshot.
func (d *DotMatrix) Pixels() [DMHeight][DMWidth]bool {
	return d.pixels
}

// Puts draws text at a DM coordinate. Glyphs missing from the font render as
// blanks; drawing is clipped to the display.
func (d *DotMatrix) Puts(font Font, x, y int, text string) {
	for i := 0; i < len(text); i++ {
		g, ok := dmGlyphs[text[i]]
		if !ok {
			g = dmGlyphs[' ']
		}
		switch font {
		case FontH7:
			d.putGlyph(x, y, g, 1)
			x += 6
		case FontH13:
			d.putGlyph(x, y, g, 2)
			x += 12
		}
	}
}

func (d *DotMatrix) putGlyph(x, y int, g [7]byte, scale int) {
	for row := 0; row < 7; row++ {
		for col := 0; col < 5; col++ {
			if g[row]&(1<<(4-col)) == 0 {
				continue
			}
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					px := x + col*scale + sx
					py := y + row*scale + sy
					if px >= 0 && px < DMWidth && py >= 0 && py < DMHeight {
						d.pixels[py][px] = true
					}
				}
			}
		}
	}
}

// dmGlyphs is the built-in 5x7 glyph set. Each byte is one row, bit 4 the
// leftmost column.
var dmGlyphs = map[byte][7]byte{
	' ': {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'A': {0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'B': {0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E},
	'C': {0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E},
	'D': {0x1E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1E},
	'E': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F},
	'F': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10},
	'G': {0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0E},
	'H': {0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'I': {0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'J': {0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C},
	'K': {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11},
	'L': {0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F},
	'M': {0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11},
	'N': {0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x11},
	'O': {0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'P': {0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10},
	'Q': {0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D},
	'R': {0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11},
	'S': {0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E},
	'T': {0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04},
	'U': {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'V': {0x11, 0x11, 0x11, 0x11, 0x11, 0x0A, 0x04},
	'W': {0x11, 0x11, 0x11, 0x15, 0x15, 0x15, 0x0A},
	'X': {0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11},
	'Y': {0x11, 0x11, 0x0A, 0x04, 0x04, 0x04, 0x04},
	'Z': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F},
	'0': {0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E},
	'1': {0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'2': {0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F},
	'3': {0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E},
	'4': {0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02},
	'5': {0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E},
	'6': {0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E},
	'7': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08},
	'8': {0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E},
	'9': {0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C},
	'-': {0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00},
	'.': {0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C},
	'!': {0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04},
	'?': {0x0E, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04},
	':': {0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x0C, 0x00},
	'(': {0x02, 0x04, 0x08, 0x08, 0x08, 0x04, 0x02},
	')': {0x08, 0x04, 0x02, 0x02, 0x02, 0x04, 0x08},
}
