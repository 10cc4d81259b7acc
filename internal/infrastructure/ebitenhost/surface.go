package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/platformer/internal/application/gfx"
)

// Debug font cell size.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// Screen draws onto an ebiten image. Glyphs come from the debug font,
// rendered once per rune and scaled to the requested font metrics.
type Screen struct {
	target *ebiten.Image
	glyphs map[rune]*ebiten.Image
}

// NewScreen creates an empty glyph cache.
func NewScreen() *Screen {
	return &Screen{glyphs: make(map[rune]*ebiten.Image)}
}

// Target sets the image the next operations draw on.
func (s *Screen) Target(img *ebiten.Image) {
	s.target = img
}

func (s *Screen) Clear(c color.RGBA) {
	s.target.Fill(c)
}

func (s *Screen) Rect(x, y, w, h int, c color.RGBA) {
	ebitenutil.DrawRect(s.target, float64(x), float64(y), float64(w), float64(h), c)
}

func (s *Screen) Glyph(f gfx.Font, r rune, x, y int, c color.RGBA) {
	m := gfx.MetricsOf(f)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(m.Width)/debugGlyphW, float64(m.Height)/debugGlyphH)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	s.target.DrawImage(s.glyph(r), op)
}

func (s *Screen) glyph(r rune) *ebiten.Image {
	if img, ok := s.glyphs[r]; ok {
		return img
	}
	img := ebiten.NewImage(debugGlyphW, debugGlyphH)
	ebitenutil.DebugPrint(img, string(r))
	s.glyphs[r] = img
	return img
}
