package render

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"dorian-ca/internal/core"

	"github.com/icza/mjpeg"
)

// Recorder encodes every frame it receives into an MJPEG AVI file.
type Recorder struct {
	sink   *ImageSink
	writer mjpeg.AviWriter
	buf    bytes.Buffer
	opts   jpeg.Options
	frames int
	path   string
	closed bool
}

// NewRecorder creates the AVI file at path for w*h pixel frames.
func NewRecorder(path string, w, h, fps, quality int) (*Recorder, error) {
	if fps <= 0 {
		fps = 30
	}
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	writer, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("creating recorder %s: %w", path, err)
	}
	return &Recorder{
		sink:   NewImageSink(w, h),
		writer: writer,
		opts:   jpeg.Options{Quality: quality},
		path:   path,
	}, nil
}

// DrawFrame rasterizes the batches and appends them as one video frame.
func (r *Recorder) DrawFrame(batches []core.DrawBatch) error {
	if r.closed {
		return fmt.Errorf("recorder %s: closed", r.path)
	}
	if err := r.sink.DrawFrame(batches); err != nil {
		return err
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, r.sink.Image(), &r.opts); err != nil {
		return fmt.Errorf("encoding frame %d: %w", r.frames, err)
	}
	if err := r.writer.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames reports how many frames were written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalizes the AVI index. It is safe to call more than once.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.writer.Close()
}

var _ core.FrameSink = (*Recorder)(nil)
