package render

import (
	"math"

	"dorian-ca/internal/core"

	"github.com/gdamore/tcell/v2"
)

// TerminalSink paints frames onto a tcell screen. Rectangles are expected in
// cell units; every cell becomes two terminal columns so it looks square.
type TerminalSink struct {
	screen     tcell.Screen
	cols, rows int
	status     string
	background tcell.Style
}

// NewTerminalSink draws a cols*rows grid onto screen.
func NewTerminalSink(screen tcell.Screen, cols, rows int) *TerminalSink {
	return &TerminalSink{
		screen:     screen,
		cols:       cols,
		rows:       rows,
		background: tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// SetStatus sets the text line drawn below the grid.
func (t *TerminalSink) SetStatus(s string) { t.status = s }

// DrawFrame clears the screen, paints the batches and shows the result.
func (t *TerminalSink) DrawFrame(batches []core.DrawBatch) error {
	t.screen.Fill(' ', t.background)
	for _, b := range batches {
		style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(b.Color.R), int32(b.Color.G), int32(b.Color.B)))
		for _, r := range b.Rects {
			x0, y0 := int(math.Floor(r.X)), int(math.Floor(r.Y))
			x1, y1 := int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H))
			for y := max(y0, 0); y < min(y1, t.rows); y++ {
				for x := max(x0, 0); x < min(x1, t.cols); x++ {
					t.screen.SetContent(x*2, y, ' ', nil, style)
					t.screen.SetContent(x*2+1, y, ' ', nil, style)
				}
			}
		}
	}
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range t.status {
		t.screen.SetContent(i, t.rows, r, nil, text)
	}
	t.screen.Show()
	return nil
}

var _ core.FrameSink = (*TerminalSink)(nil)
