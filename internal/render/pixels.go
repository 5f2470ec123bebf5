package render

import "image/color"

// Cell colours for the two automaton states.
var (
	GreenColor = color.RGBA{R: 46, G: 184, B: 92, A: 255}
	RedColor   = color.RGBA{R: 200, G: 48, B: 48, A: 255}
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// Non-zero cells use on, zero cells use off.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
