package vgcore

import "github.com/jbonneau/vgcore/fontstash"

// Text draws str at (x,y) with the current text style, returning the
// horizontal advance consumed.
func (c *Context) Text(x, y float32, str string) float32 {
	return c.TextRune(x, y, []rune(str))
}

// TextRune is Text for an already-decoded rune slice.
func (c *Context) TextRune(x, y float32, runes []rune) float32 {
	state := c.getState()
	if state.fontID == fontInvalid {
		return 0
	}
	scale := state.getFontScale() * c.devicePxRatio
	invscale := 1.0 / scale

	c.fs.SetSize(state.fontSize * scale)
	c.fs.SetSpacing(state.letterSpacing * scale)
	c.fs.SetBlur(0)
	c.fs.SetAlign(fontstash.Align(state.textAlign))
	c.fs.SetFont(state.fontID)

	vertexCount := maxI(2, len(runes)) * 6
	verts := make([]Vertex, 0, vertexCount)

	iter := c.fs.TextIterForRunes(x*scale, y*scale, runes)
	for {
		quad, ok := iter.Next()
		if !ok {
			break
		}
		if iter.PrevGlyphMissing {
			if !c.allocTextAtlas() {
				break
			}
			continue
		}

		c0, c1 := state.xform.TransformPoint(quad.X0*invscale, quad.Y0*invscale)
		c2, c3 := state.xform.TransformPoint(quad.X1*invscale, quad.Y0*invscale)
		c4, c5 := state.xform.TransformPoint(quad.X1*invscale, quad.Y1*invscale)
		c6, c7 := state.xform.TransformPoint(quad.X0*invscale, quad.Y1*invscale)

		verts = appendVert(verts, c0, c1, quad.S0, quad.T0)
		verts = appendVert(verts, c2, c3, quad.S1, quad.T0)
		verts = appendVert(verts, c4, c5, quad.S1, quad.T1)
		verts = appendVert(verts, c0, c1, quad.S0, quad.T0)
		verts = appendVert(verts, c4, c5, quad.S1, quad.T1)
		verts = appendVert(verts, c6, c7, quad.S0, quad.T1)
	}

	c.flushTextTexture()
	c.renderText(verts)
	return iter.X()*invscale - x
}

// TextBounds measures str without drawing it, returning its horizontal
// advance and [xmin,ymin,xmax,ymax] bounds in local coordinate space.
func (c *Context) TextBounds(x, y float32, str string) (float32, []float32) {
	state := c.getState()
	if state.fontID == fontInvalid {
		return 0, nil
	}
	scale := state.getFontScale() * c.devicePxRatio
	invscale := 1.0 / scale

	c.fs.SetSize(state.fontSize * scale)
	c.fs.SetSpacing(state.letterSpacing * scale)
	c.fs.SetBlur(0)
	c.fs.SetAlign(fontstash.Align(state.textAlign))
	c.fs.SetFont(state.fontID)

	width, bounds := c.fs.TextBounds(x*scale, y*scale, str)
	if bounds != nil {
		bounds[1], bounds[3] = c.fs.LineBounds(y * scale)
		for i := range bounds {
			bounds[i] *= invscale
		}
	}
	return width * invscale, bounds
}

// TextMetrics returns ascender, descender, and line height for the
// current text style, in local coordinate space.
func (c *Context) TextMetrics() (float32, float32, float32) {
	state := c.getState()
	if state.fontID == fontInvalid {
		return 0, 0, 0
	}
	scale := state.getFontScale() * c.devicePxRatio
	invscale := 1.0 / scale

	c.fs.SetSize(state.fontSize * scale)
	c.fs.SetFont(state.fontID)

	asc, desc, lineH := c.fs.VerticalMetrics()
	return asc * invscale, desc * invscale, lineH * invscale
}

type charClass int

const (
	classSpace charClass = iota
	classNewline
	classChar
	classCJK
)

func classify(r rune) charClass {
	switch r {
	case ' ', '\t':
		return classSpace
	case '\n', '\r':
		return classNewline
	}
	if (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3000 && r <= 0x30FF) {
		return classCJK
	}
	return classChar
}

// TextRow is one line produced by TextBreakLines: the rune range it
// spans, its measured width, and the rune index at which the next row
// starts.
type TextRow struct {
	Start, End int
	Width      float32
	NextStart  int
}

// TextBreakLines runs a small state machine over runes classifying each
// as space/newline/CJK/other, greedily packing words onto each row up
// to maxWidth, always breaking at newlines and, on overflow, breaking
// before any CJK character as well as at word boundaries (§4.6).
func (c *Context) TextBreakLines(runes []rune, maxWidth float32) []TextRow {
	state := c.getState()
	if state.fontID == fontInvalid || len(runes) == 0 {
		return nil
	}

	var rows []TextRow
	rowStart := 0
	wordStart := 0
	var rowWidth, wordWidth float32
	lastWasSpace := true

	measure := func(lo, hi int) float32 {
		if lo >= hi {
			return 0
		}
		w, _ := c.TextBounds(0, 0, string(runes[lo:hi]))
		return w
	}

	flushRow := func(end int) {
		rows = append(rows, TextRow{Start: rowStart, End: end, Width: rowWidth, NextStart: end})
		rowStart = end
		rowWidth = 0
		wordStart = end
		wordWidth = 0
	}

	for i := 0; i < len(runes); i++ {
		cls := classify(runes[i])

		switch cls {
		case classNewline:
			flushRow(i)
			rows[len(rows)-1].NextStart = i + 1
			rowStart = i + 1
			wordStart = i + 1
			lastWasSpace = true
			continue
		case classSpace:
			if !lastWasSpace {
				rowWidth = measure(rowStart, i)
			}
			wordStart = i + 1
			wordWidth = 0
			lastWasSpace = true
		case classCJK:
			if rowWidth+wordWidth > maxWidth && rowStart < i {
				flushRow(i)
			}
			wordWidth = measure(i, i+1)
			rowWidth = measure(rowStart, i+1)
			if rowWidth > maxWidth && rowStart < i {
				flushRow(i)
				rowWidth = measure(rowStart, i+1)
			}
			wordStart = i + 1
			wordWidth = 0
			lastWasSpace = false
		default:
			wordWidth = measure(wordStart, i+1)
			if rowWidth+wordWidth > maxWidth && rowStart < wordStart {
				flushRow(wordStart)
				wordWidth = measure(wordStart, i+1)
			}
			rowWidth = measure(rowStart, i+1)
			lastWasSpace = false
		}
	}

	if rowStart < len(runes) {
		rows = append(rows, TextRow{Start: rowStart, End: len(runes), Width: measure(rowStart, len(runes)), NextStart: len(runes)})
	}

	return rows
}
