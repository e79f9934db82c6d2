package badge

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"portfolio/backend/models"
)

const (
	canvasSize  = 1024
	badgeHeight = 778 // top 76% of the canvas; the rest stays transparent
	halfWidth   = canvasSize / 2
	padding     = 35.0

	qrTarget = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
)

// Charcoal gray-blue used for all text and heatmap cells.
const (
	textR = 0.28
	textG = 0.33
	textB = 0.40
)

var dotColors = []string{"#6366f1", "#8b5cf6", "#a78bfa", "#ec4899"}

var (
	boldFont    = mustParseFont(gobold.TTF)
	regularFont = mustParseFont(goregular.TTF)
)

func mustParseFont(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// Renderer composes the identity badge: background, avatar, name block,
// decoration dots and contribution heatmap on the front face, QR code on the
// back face. Every visual input degrades independently; Render never fails
// because an asset is missing.
type Renderer struct {
	assetsDir string
	profile   models.Profile
	logger    *log.Logger
	now       func() time.Time

	nameFace  font.Face
	titleFace font.Face
	yearFace  font.Face
	labelFace font.Face
}

func NewRenderer(assetsDir string, profile models.Profile, logger *log.Logger) *Renderer {
	return &Renderer{
		assetsDir: assetsDir,
		profile:   profile,
		logger:    logger,
		now:       time.Now,
		nameFace:  newFace(boldFont, 48),
		titleFace: newFace(regularFont, 24),
		yearFace:  newFace(boldFont, 32),
		labelFace: newFace(regularFont, 21),
	}
}

func (r *Renderer) loadAsset(name string) (image.Image, error) {
	return gg.LoadImage(filepath.Join(r.assetsDir, name))
}

// drawCover draws img scaled to cover the w×h box at (x, y), clipped to a
// rounded rectangle.
func drawCover(dc *gg.Context, img image.Image, x, y, w, h, radius float64) {
	bounds := img.Bounds()
	sx := w / float64(bounds.Dx())
	sy := h / float64(bounds.Dy())
	scale := sx
	if sy > sx {
		scale = sy
	}

	dc.Push()
	dc.DrawRoundedRectangle(x, y, w, h, radius)
	dc.Clip()
	dc.Translate(x+w/2, y+h/2)
	dc.Scale(scale, scale)
	dc.DrawImageAnchored(img, 0, 0, 0.5, 0.5)
	dc.ResetClip()
	dc.Pop()
}

// Render composes the full badge for the given calendar and returns it as a
// 1024×1024 PNG.
func (r *Renderer) Render(calendar models.ContributionCalendar) ([]byte, error) {
	dc := gg.NewContext(canvasSize, canvasSize)

	background, err := r.loadAsset("images/bg-light.png")
	if err != nil {
		r.logger.Printf("warning: failed to load badge background: %v", err)
		background = nil
	}

	r.drawFront(dc, background, calendar)
	r.drawBack(dc, background)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("badge: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawPanelBackground(dc *gg.Context, background image.Image, mirrored bool) {
	dc.Push()
	if mirrored {
		dc.Translate(canvasSize, 0)
		dc.Scale(-1, 1)
	}
	dc.DrawRectangle(0, 0, halfWidth, badgeHeight)
	dc.Clip()
	if background != nil {
		bounds := background.Bounds()
		dc.Scale(halfWidth/float64(bounds.Dx()), float64(badgeHeight)/float64(bounds.Dy()))
		dc.DrawImage(background, 0, 0)
	} else {
		dc.SetRGB(0.95, 0.94, 0.97)
		dc.DrawRectangle(0, 0, halfWidth, badgeHeight)
		dc.Fill()
	}
	dc.ResetClip()
	dc.Pop()
}

func (r *Renderer) drawFront(dc *gg.Context, background image.Image, calendar models.ContributionCalendar) {
	r.drawPanelBackground(dc, background, false)

	// Year, top right.
	dc.SetFontFace(r.yearFace)
	dc.SetRGBA(textR, textG, textB, 0.7)
	dc.DrawStringAnchored(fmt.Sprintf("%d", r.now().Year()), halfWidth-padding, 50, 1, 0.5)

	// Avatar in a rounded frame; omitted when the asset cannot be loaded.
	textX := padding
	if r.profile.Avatar != "" {
		if avatar, err := r.loadAsset(r.profile.Avatar); err != nil {
			r.logger.Printf("warning: failed to load avatar: %v", err)
		} else {
			drawCover(dc, avatar, padding, 240, 180, 220, 12)
			textX = padding + 180 + 25
		}
	}

	// Name on two lines, then title, then decoration dots.
	first, second := splitName(r.profile.Name)
	dc.SetFontFace(r.nameFace)
	dc.SetRGB(textR, textG, textB)
	dc.DrawString(first, textX, 300)
	if second != "" {
		dc.DrawString(second, textX, 355)
	}

	dc.SetFontFace(r.titleFace)
	dc.SetRGBA(textR, textG, textB, 0.8)
	dc.DrawString(r.profile.Title, textX, 395)

	for i, hex := range dotColors {
		dc.SetHexColor(hex)
		dc.DrawCircle(textX+7+float64(i)*24, 425, 7)
		dc.Fill()
	}

	r.drawHeatmap(dc, calendar, padding, halfWidth-padding, 580)
}

func (r *Renderer) drawBack(dc *gg.Context, background image.Image) {
	r.drawPanelBackground(dc, background, true)

	qr, err := qrcode.New(qrTarget, qrcode.Medium)
	if err != nil {
		r.logger.Printf("warning: QR code generation failed: %v", err)
		return
	}
	qr.DisableBorder = true
	qr.ForegroundColor = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}
	qr.BackgroundColor = color.Transparent

	const qrSize = 150.0
	const panelPad = 16.0
	centerX := float64(halfWidth + halfWidth/2)
	centerY := float64(badgeHeight) / 2

	dc.SetRGBA(1, 1, 1, 0.6)
	dc.DrawRoundedRectangle(centerX-qrSize/2-panelPad, centerY-qrSize/2-panelPad, qrSize+2*panelPad, qrSize+2*panelPad, 12)
	dc.Fill()
	dc.DrawImageAnchored(qr.Image(int(qrSize)), int(centerX), int(centerY), 0.5, 0.5)
}

// splitName breaks a display name into at most two lines at the first space.
func splitName(name string) (string, string) {
	for i, c := range name {
		if c == ' ' {
			return name[:i], name[i+1:]
		}
	}
	return name, ""
}
