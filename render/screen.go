package render

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

var glyphStyles = map[rune]tcell.Style{
	GlyphFree:     tcell.StyleDefault.Foreground(tcell.ColorGray),
	GlyphMargin:   tcell.StyleDefault.Foreground(tcell.ColorOlive),
	GlyphBox:      tcell.StyleDefault.Foreground(tcell.ColorBlue),
	GlyphRoute:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
	GlyphAnchor:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
	GlyphCrossing: tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// StyleFor returns the style a glyph is drawn with.
func StyleFor(glyph rune) tcell.Style {
	if s, ok := glyphStyles[glyph]; ok {
		return s
	}
	return tcell.StyleDefault
}

// DrawFrame draws the part of f that starts at cell (row, col) into the
// screen's top-left corner, leaving the last screen line free.
func DrawFrame(s tcell.Screen, f *Frame, row, col int) {
	w, h := s.Size()
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			glyph := f.At(row+y, col+x)
			s.SetContent(x, y, glyph, nil, StyleFor(glyph))
		}
	}
}

// Viewer shows a frame on a terminal screen and scrolls it with the arrow
// keys or hjkl.
type Viewer struct {
	screen   tcell.Screen
	frame    *Frame
	row, col int
}

// NewViewer creates a viewer on an initialized screen.
func NewViewer(s tcell.Screen) *Viewer {
	return &Viewer{screen: s, frame: &Frame{}}
}

// SetFrame replaces the frame, keeping the scroll position where it still fits.
func (v *Viewer) SetFrame(f *Frame) {
	if f == nil {
		f = &Frame{}
	}
	v.frame = f
	v.scroll(0, 0)
}

// Offset returns the cell shown in the top-left corner.
func (v *Viewer) Offset() (row, col int) {
	return v.row, v.col
}

// Draw redraws the screen.
func (v *Viewer) Draw() {
	v.screen.Clear()
	DrawFrame(v.screen, v.frame, v.row, v.col)

	w, h := v.screen.Size()
	status := []rune(v.frame.Title + "  [arrows/hjkl scroll, q quit]")
	for x := 0; x < w && x < len(status); x++ {
		v.screen.SetContent(x, h-1, status[x], nil, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}

// HandleEvent applies one input event and reports whether the viewer should
// keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		w, h := v.screen.Size()
		page := max(1, h-2)
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.scroll(-1, 0)
		case tcell.KeyDown:
			v.scroll(1, 0)
		case tcell.KeyLeft:
			v.scroll(0, -1)
		case tcell.KeyRight:
			v.scroll(0, 1)
		case tcell.KeyPgUp:
			v.scroll(-page, 0)
		case tcell.KeyPgDn:
			v.scroll(page, 0)
		case tcell.KeyHome:
			v.row, v.col = 0, 0
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'k':
				v.scroll(-1, 0)
			case 'j':
				v.scroll(1, 0)
			case 'h':
				v.scroll(0, -1)
			case 'l':
				v.scroll(0, 1)
			case 'H':
				v.scroll(0, -max(1, w/2))
			case 'L':
				v.scroll(0, max(1, w/2))
			}
		}
	case *tcell.EventResize:
		v.scroll(0, 0)
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) scroll(dRow, dCol int) {
	w, h := v.screen.Size()
	maxRow := max(0, v.frame.Rows()-(h-1))
	maxCol := max(0, v.frame.Cols()-w)
	v.row = min(max(0, v.row+dRow), maxRow)
	v.col = min(max(0, v.col+dCol), maxCol)
}

// Run draws and handles input until the user quits or ctx is done. Frames
// received on updates replace the shown frame.
func (v *Viewer) Run(ctx context.Context, updates <-chan *Frame) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case f, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			v.SetFrame(f)
			v.Draw()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
