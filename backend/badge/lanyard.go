package badge

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
)

const (
	lanyardWidth  = 414
	lanyardHeight = 100
)

// RenderLanyard produces the small strap texture: an off-white base with a
// faint horizontal sheen. Purely decorative, no external inputs.
func RenderLanyard() ([]byte, error) {
	dc := gg.NewContext(lanyardWidth, lanyardHeight)

	dc.SetHexColor("#fafafa")
	dc.Clear()

	sheen := gg.NewLinearGradient(0, 0, lanyardWidth, 0)
	sheen.AddColorStop(0, color.NRGBA{R: 255, G: 255, B: 255, A: 5})
	sheen.AddColorStop(0.5, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	sheen.AddColorStop(1, color.NRGBA{R: 255, G: 255, B: 255, A: 5})
	dc.SetFillStyle(sheen)
	dc.DrawRectangle(0, 0, lanyardWidth, lanyardHeight)
	dc.Fill()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("lanyard: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
