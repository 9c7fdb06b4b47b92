// Package fontstash is a small glyph atlas manager: it parses real
// outline fonts with golang.org/x/image/font/sfnt, rasterizes glyphs on
// demand with golang.org/x/image/vector, and packs them into a single
// growable alpha texture using a shelf packer (C8).
package fontstash

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// INVALID is the sentinel handle returned when a font lookup fails.
const INVALID = -1

// Align mirrors the horizontal/vertical alignment bitmask used by the
// text pipeline; it is redefined here so this package has no import
// cycle back to the core module.
type Align int

const (
	AlignLeft Align = 1 << iota
	AlignCenter
	AlignRight
	AlignTop
	AlignMiddle
	AlignBottom
	AlignBaseline
)

type glyphKey struct {
	font int
	rune rune
	size int32 // size quantized to 1/10th pixel
}

type glyph struct {
	x0, y0, x1, y1 int
	advance        float32
	offsetX        float32
	offsetY        float32
}

type fontEntry struct {
	name string
	face *sfnt.Font
	buf  sfnt.Buffer
}

// Quad is one glyph's screen-space quad plus its atlas UVs in [0,1].
type Quad struct {
	X0, Y0, X1, Y1 float32
	S0, T0, S1, T1 float32
}

// Stash owns the font list and the shared glyph atlas.
type Stash struct {
	fonts  []*fontEntry
	glyphs map[glyphKey]*glyph

	width, height int
	data          []byte // single-channel alpha atlas

	shelfX, shelfY, shelfH int // next free packing cursor

	dirty [4]int // x0,y0,x1,y1 of the region touched since last ValidateTexture

	size    float32
	spacing float32
	blur    float32
	align   Align
	fontID  int
}

// New creates a stash with an initial atlas of w x h pixels.
func New(w, h int) *Stash {
	s := &Stash{
		glyphs: make(map[glyphKey]*glyph),
		width:  w, height: h,
		data:   make([]byte, w*h),
		fontID: INVALID,
	}
	s.resetDirty()
	return s
}

func (s *Stash) resetDirty() { s.dirty = [4]int{s.width, s.height, 0, 0} }

func (s *Stash) markDirty(x0, y0, x1, y1 int) {
	if x0 < s.dirty[0] {
		s.dirty[0] = x0
	}
	if y0 < s.dirty[1] {
		s.dirty[1] = y0
	}
	if x1 > s.dirty[2] {
		s.dirty[2] = x1
	}
	if y1 > s.dirty[3] {
		s.dirty[3] = y1
	}
}

// AddFontFromMemory parses data as an outline font (TrueType/OpenType)
// and registers it under name, returning its handle.
func (s *Stash) AddFontFromMemory(name string, data []byte) (int, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return INVALID, fmt.Errorf("fontstash: parse %s: %w", name, err)
	}
	s.fonts = append(s.fonts, &fontEntry{name: name, face: f})
	return len(s.fonts) - 1, nil
}

// AddFont parses the outline font at filePath and registers it under
// name, returning its handle.
func (s *Stash) AddFont(name, filePath string) (int, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return INVALID, fmt.Errorf("fontstash: read %s: %w", filePath, err)
	}
	return s.AddFontFromMemory(name, data)
}

// GetFontByName returns the handle of a previously added font, or
// INVALID if no font by that name was registered.
func (s *Stash) GetFontByName(name string) int {
	for i, f := range s.fonts {
		if f.name == name {
			return i
		}
	}
	return INVALID
}

// SetSize, SetSpacing, SetBlur, SetAlign, SetFont configure the style
// used by subsequent TextIterForRunes/TextBounds/VerticalMetrics calls.
func (s *Stash) SetSize(size float32)    { s.size = size }
func (s *Stash) SetSpacing(sp float32)   { s.spacing = sp }
func (s *Stash) SetBlur(b float32)       { s.blur = b }
func (s *Stash) SetAlign(a Align)        { s.align = a }
func (s *Stash) SetFont(font int)        { s.fontID = font }

// ResetAtlas replaces the atlas with a fresh, larger bitmap and drops
// all previously packed glyphs (they will be re-rasterized on demand).
func (s *Stash) ResetAtlas(w, h int) {
	s.width, s.height = w, h
	s.data = make([]byte, w*h)
	s.glyphs = make(map[glyphKey]*glyph)
	s.shelfX, s.shelfY, s.shelfH = 0, 0, 0
	s.resetDirty()
}

// ValidateTexture returns the [x0,y0,x1,y1] bounds touched since the
// last call, or nil if nothing changed.
func (s *Stash) ValidateTexture() []int {
	if s.dirty[2] <= s.dirty[0] || s.dirty[3] <= s.dirty[1] {
		return nil
	}
	d := []int{s.dirty[0], s.dirty[1], s.dirty[2], s.dirty[3]}
	s.resetDirty()
	return d
}

// GetTextureData returns the atlas bitmap and its dimensions.
func (s *Stash) GetTextureData() ([]byte, int, int) { return s.data, s.width, s.height }

func (s *Stash) font() *fontEntry {
	if s.fontID < 0 || s.fontID >= len(s.fonts) {
		return nil
	}
	return s.fonts[s.fontID]
}

func (s *Stash) glyphFor(r rune) *glyph {
	fe := s.font()
	if fe == nil {
		return nil
	}
	key := glyphKey{font: s.fontID, rune: r, size: int32(s.size * 10)}
	if g, ok := s.glyphs[key]; ok {
		return g
	}
	g := s.rasterize(fe, r)
	s.glyphs[key] = g
	return g
}

func (s *Stash) rasterize(fe *fontEntry, r rune) *glyph {
	ppem := fixed.I(int(s.size + 0.5))
	gi, err := fe.face.GlyphIndex(&fe.buf, r)
	if err != nil || gi == 0 {
		return &glyph{x0: -1}
	}

	adv, err := fe.face.GlyphAdvance(&fe.buf, gi, ppem, font.HintingNone)
	advance := float32(0)
	if err == nil {
		advance = float32(adv) / 64.0
	}

	segs, err := fe.face.LoadGlyph(&fe.buf, gi, ppem, nil)
	if err != nil || len(segs) == 0 {
		return &glyph{x0: -1, advance: advance}
	}

	bounds, _, err := fe.face.GlyphBounds(&fe.buf, gi, ppem, font.HintingNone)
	if err != nil {
		return &glyph{x0: -1, advance: advance}
	}

	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return &glyph{x0: -1, advance: advance}
	}
	w += 2
	h += 2

	rast := vector.NewRasterizer(w, h)
	ox := -bounds.Min.X.Floor() + 1
	oy := -bounds.Min.Y.Floor() + 1
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			rast.MoveTo(segPt(seg.Args[0], ox, oy))
		case sfnt.SegmentOpLineTo:
			rast.LineTo(segPt(seg.Args[0], ox, oy))
		case sfnt.SegmentOpQuadTo:
			rast.QuadTo(segPt(seg.Args[0], ox, oy), segPt(seg.Args[1], ox, oy))
		case sfnt.SegmentOpCubeTo:
			rast.CubeTo(segPt(seg.Args[0], ox, oy), segPt(seg.Args[1], ox, oy), segPt(seg.Args[2], ox, oy))
		}
	}

	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	rast.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	gx, gy, ok := s.pack(w, h)
	if !ok {
		return &glyph{x0: -1, advance: advance}
	}
	for y := 0; y < h; y++ {
		copy(s.data[(gy+y)*s.width+gx:(gy+y)*s.width+gx+w], alpha.Pix[y*alpha.Stride:y*alpha.Stride+w])
	}
	s.markDirty(gx, gy, gx+w, gy+h)

	return &glyph{
		x0: gx, y0: gy, x1: gx + w, y1: gy + h,
		advance: advance,
		offsetX: float32(bounds.Min.X.Floor()) - 1,
		offsetY: float32(bounds.Min.Y.Floor()) - 1,
	}
}

func segPt(p fixed.Point26_6, ox, oy int) (px, py float32) {
	return float32(p.X.Floor() + ox), float32(p.Y.Floor() + oy)
}

// pack finds room for a w x h box using a simple shelf packer, growing
// to a new shelf row when the current one is exhausted.
func (s *Stash) pack(w, h int) (x, y int, ok bool) {
	if s.shelfX+w > s.width {
		s.shelfX = 0
		s.shelfY += s.shelfH
		s.shelfH = 0
	}
	if s.shelfY+h > s.height {
		return 0, 0, false
	}
	x, y = s.shelfX, s.shelfY
	s.shelfX += w
	if h > s.shelfH {
		s.shelfH = h
	}
	return x, y, true
}

// Iter walks runes of a string, emitting one Quad per drawable glyph.
type Iter struct {
	s       *Stash
	runes   []rune
	idx     int
	x, y    float32
	PrevGlyphMissing bool
}

// TextIterForRunes begins iterating runes at (x,y) in the currently
// selected font/size/spacing.
func (s *Stash) TextIterForRunes(x, y float32, runes []rune) *Iter {
	return &Iter{s: s, runes: runes, x: x, y: y}
}

// Next advances to the next drawable glyph, returning its quad and
// whether one was produced (false at end of input).
func (it *Iter) Next() (Quad, bool) {
	for it.idx < len(it.runes) {
		r := it.runes[it.idx]
		it.idx++
		g := it.s.glyphFor(r)
		if g == nil || g.x0 < 0 {
			it.PrevGlyphMissing = true
			continue
		}
		it.PrevGlyphMissing = false
		w := float32(g.x1 - g.x0)
		h := float32(g.y1 - g.y0)
		q := Quad{
			X0: it.x + g.offsetX, Y0: it.y - g.offsetY - h,
			X1: it.x + g.offsetX + w, Y1: it.y - g.offsetY,
			S0: float32(g.x0) / float32(it.s.width), T0: float32(g.y0) / float32(it.s.height),
			S1: float32(g.x1) / float32(it.s.width), T1: float32(g.y1) / float32(it.s.height),
		}
		it.x += g.advance + it.s.spacing
		return q, true
	}
	return Quad{}, false
}

// X returns the iterator's current pen X: the start x plus the
// horizontal advance consumed so far.
func (it *Iter) X() float32 { return it.x }

// TextBounds measures str without emitting quads, returning its advance
// and [xmin,ymin,xmax,ymax] bounds.
func (s *Stash) TextBounds(x, y float32, str string) (float32, []float32) {
	iter := s.TextIterForRunes(x, y, []rune(str))
	bounds := []float32{1e30, 1e30, -1e30, -1e30}
	any := false
	for {
		q, ok := iter.Next()
		if !ok {
			break
		}
		any = true
		bounds[0] = min32(bounds[0], q.X0)
		bounds[1] = min32(bounds[1], q.Y0)
		bounds[2] = max32(bounds[2], q.X1)
		bounds[3] = max32(bounds[3], q.Y1)
	}
	if !any {
		bounds = []float32{x, y, x, y}
	}
	return iter.x - x, bounds
}

// LineBounds returns the [ymin,ymax] of one line of text at baseline y
// in the current font size.
func (s *Stash) LineBounds(y float32) (float32, float32) {
	asc, desc, _ := s.VerticalMetrics()
	return y - asc, y - desc
}

// VerticalMetrics returns ascender, descender, and line-gap-inclusive
// line height for the currently selected font at the current size.
func (s *Stash) VerticalMetrics() (float32, float32, float32) {
	fe := s.font()
	if fe == nil {
		return 0, 0, 0
	}
	ppem := fixed.I(int(s.size + 0.5))
	metrics, err := fe.face.Metrics(&fe.buf, ppem, font.HintingNone)
	if err != nil {
		return 0, 0, 0
	}
	return float32(metrics.Ascent) / 64.0, -float32(metrics.Descent) / 64.0, float32(metrics.Height) / 64.0
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
