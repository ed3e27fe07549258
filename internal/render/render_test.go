package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"dorian-ca/internal/core"

	"github.com/gdamore/tcell/v2"
)

var red = color.RGBA{R: 255, A: 255}

func TestImageSinkRasterizesBatches(t *testing.T) {
	sink := NewImageSink(8, 4)
	batches := []core.DrawBatch{{
		Color: red,
		Rects: []core.Rect{{X: 2, Y: 0, W: 2, H: 2}, {X: 6, Y: 2, W: 4, H: 4}},
	}}
	if err := sink.DrawFrame(batches); err != nil {
		t.Fatal(err)
	}
	img := sink.Image()
	if got := img.RGBAAt(3, 1); got != red {
		t.Fatalf("pixel (3,1) = %v, want red", got)
	}
	if got := img.RGBAAt(7, 3); got != red {
		t.Fatalf("clipped rect pixel (7,3) = %v, want red", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Fatalf("background pixel = %v", got)
	}

	if err := sink.DrawFrame(nil); err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(3, 1); got == red {
		t.Fatal("DrawFrame must clear the previous frame")
	}
}

func TestImageSinkFractionalCellsTile(t *testing.T) {
	sink := NewImageSink(10, 1)
	var rects []core.Rect
	for x := 0; x < 3; x++ {
		rects = append(rects, core.Rect{X: float64(x) * 10.0 / 3, W: 10.0 / 3, H: 1})
	}
	if err := sink.DrawFrame([]core.DrawBatch{{Color: red, Rects: rects}}); err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 10; x++ {
		if sink.Image().RGBAAt(x, 0) != red {
			t.Fatalf("gap at pixel %d", x)
		}
	}
}

func TestRecorderWritesAVI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	rec, err := NewRecorder(path, 16, 16, 10, 80)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	frame := []core.DrawBatch{{Color: red, Rects: []core.Rect{{X: 4, Y: 4, W: 8, H: 8}}}}
	for i := 0; i < 3; i++ {
		if err := rec.DrawFrame(frame); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	if rec.Frames() != 3 {
		t.Fatalf("frames = %d", rec.Frames())
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := rec.DrawFrame(frame); err == nil {
		t.Fatal("drawing after Close must fail")
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected a non-empty AVI file, err=%v", err)
	}
}

func TestTerminalSinkPaintsDoubleWidthCells(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(20, 6)

	sink := NewTerminalSink(screen, 5, 4)
	sink.SetStatus("gen 1")
	batches := []core.DrawBatch{{Color: red, Rects: []core.Rect{{X: 1, Y: 2, W: 1, H: 1}}}}
	if err := sink.DrawFrame(batches); err != nil {
		t.Fatal(err)
	}

	want := tcell.NewRGBColor(255, 0, 0)
	for _, x := range []int{2, 3} {
		_, _, style, _ := screen.GetContent(x, 2)
		if _, bg, _ := style.Decompose(); bg != want {
			t.Fatalf("column %d background = %v, want red", x, bg)
		}
	}
	_, _, style, _ := screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg == want {
		t.Fatal("unpainted cell must keep the background")
	}
	if r, _, _, _ := screen.GetContent(0, 4); r != 'g' {
		t.Fatalf("status line starts with %q", r)
	}
}
