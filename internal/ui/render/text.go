package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawTextLine draws text from startX, clipped to maxWidth columns, and
// returns the column after the last cell written.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := runewidth.RuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

// fillLine pads row y from startX to endX with blanks.
func (r *Renderer) fillLine(startX, endX, y int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
