package render

import (
	"image"

	"github.com/echoflaresat/whitted/colors"
)

// Frame is a dense row-major buffer of linear colors; pixel (x, y) lives
// at Pix[y*Width+x] and y grows upward on the image plane.
type Frame struct {
	Width  int
	Height int
	Pix    []colors.Color4
}

func NewFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidResolution
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]colors.Color4, width*height),
	}, nil
}

func (f *Frame) At(x, y int) colors.Color4 {
	return f.Pix[y*f.Width+x]
}

func (f *Frame) Set(x, y int, c colors.Color4) {
	f.Pix[y*f.Width+x] = c
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	out := &Frame{Width: f.Width, Height: f.Height, Pix: make([]colors.Color4, len(f.Pix))}
	copy(out.Pix, f.Pix)
	return out
}

// Image encodes the frame for display with the given gamma (see
// colors.Color4.Encode). Rows are flipped so the top of the view is
// row 0 of the image.
func (f *Frame) Image(gamma float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		row := f.Height - 1 - y
		for x := 0; x < f.Width; x++ {
			img.SetNRGBA(x, row, f.At(x, y).Encode(gamma).ToNRGBA())
		}
	}
	return img
}
