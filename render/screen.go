package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pdrpinto/tilepath"
)

// Canvas is the part of tcell.Screen that Draw needs.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var glyphStyles = [...]tcell.Style{
	GlyphOpenTile: tcell.StyleDefault.Foreground(tcell.ColorGray),
	GlyphWall:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true),
	GlyphClosed:   tcell.StyleDefault.Foreground(tcell.ColorBlue),
	GlyphFrontier: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	GlyphCurrent:  tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true),
	GlyphPath:     tcell.StyleDefault.Foreground(tcell.ColorGreen),
	GlyphStart:    tcell.StyleDefault.Foreground(tcell.ColorPurple),
	GlyphGoal:     tcell.StyleDefault.Foreground(tcell.ColorPurple),
}

// Style returns the terminal style of a glyph.
func (g Glyph) Style() tcell.Style { return glyphStyles[g] }

// Draw paints g and the overlay onto c with the top-left cell at (left, top).
func Draw(c Canvas, left, top int, g tilepath.Grid, o Overlay) {
	for y, row := range Glyphs(g, o) {
		for x, glyph := range row {
			c.SetContent(left+x, top+y, glyph.Rune(), nil, glyph.Style())
		}
	}
}

// DrawText writes s on one line starting at (left, top).
func DrawText(c Canvas, left, top int, s string, style tcell.Style) {
	x := left
	for _, r := range s {
		c.SetContent(x, top, r, nil, style)
		x++
	}
}
