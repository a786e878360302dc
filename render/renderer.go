package render

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/echoflaresat/whitted/colors"
	"github.com/echoflaresat/whitted/log"
	"github.com/echoflaresat/whitted/vectors"
)

var logger = log.New("render")

// Options tune a Render call. The zero value renders one centered sample
// per pixel with GOMAXPROCS workers.
type Options struct {
	// Maximum number of rows traced concurrently; 0 means GOMAXPROCS.
	Workers int

	// Supersampling grid size per axis; values below 2 trace a single
	// ray through the pixel center.
	Samples int
}

// GenerateSupersamplingOffsets returns n×n offsets in [-0.5, +0.5] for
// supersampling, as pairs (dx, dy) with pixel-center spacing.
func GenerateSupersamplingOffsets(n int) [][2]float64 {
	if n <= 0 {
		return nil
	}
	step := 1.0 / float64(n)
	out := make([][2]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := (float64(i)+0.5)*step - 0.5
			dy := (float64(j)+0.5)*step - 0.5
			out = append(out, [2]float64{dx, dy})
		}
	}
	return out
}

// Render traces every pixel of frame from the scene camera. Rows are
// distributed over a bounded pool of goroutines; each pixel is written by
// exactly one of them so no locking is needed on the frame.
//
// The camera is copied when Render starts. Callers must not Animate the
// scene until Render returns. If ctx is cancelled the frame is left
// partially written and an error wrapping ErrInterrupted is returned.
func (s *Scene) Render(ctx context.Context, frame *Frame, opts Options) (FrameStats, error) {
	if frame == nil || frame.Width <= 0 || frame.Height <= 0 || len(frame.Pix) != frame.Width*frame.Height {
		return FrameStats{}, ErrInvalidResolution
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	samples := opts.Samples
	if samples < 1 {
		samples = 1
	}
	offsets := GenerateSupersamplingOffsets(samples)
	weight := 1.0 / float64(len(offsets))

	camera := s.camera
	W, H := frame.Width, frame.Height

	var (
		rays       atomic.Int64
		shadowRays atomic.Int64
		rowsDone   atomic.Int64
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := 0; y < H; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t := tracer{scene: s}
			for x := 0; x < W; x++ {
				var radiance vectors.Vec3
				for _, off := range offsets {
					ray := camera.ComputeRay(float64(x)+0.5+off[0], float64(y)+0.5+off[1], W, H)
					radiance = radiance.Add(t.trace(ray, 0))
				}
				frame.Set(x, y, colors.FromRadiance(radiance.Scale(weight)))
			}
			rays.Add(t.rays)
			shadowRays.Add(t.shadowRays)

			done := rowsDone.Add(1)
			if done%int64(max(H/10, 1)) == 0 {
				logger.Debugf("%3d%% of rows traced", done*100/int64(H))
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	stats := FrameStats{
		Width:      W,
		Height:     H,
		Workers:    workers,
		Rays:       rays.Load(),
		ShadowRays: shadowRays.Load(),
		RenderTime: time.Since(start),
	}
	if err != nil {
		return stats, fmt.Errorf("%w: %v", ErrInterrupted, err)
	}
	return stats, nil
}
