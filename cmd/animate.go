package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/echoflaresat/whitted/output"
	"github.com/echoflaresat/whitted/render"
)

// Render an orbit of the camera around its look-at point as a numbered
// image sequence.
func Animate(ctx *cli.Context) error {
	setupLogging(ctx)

	frames := ctx.Int("frames")
	if frames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", frames)
	}
	dt := ctx.Float64("dt")

	scene, name, err := loadScene(ctx)
	if err != nil {
		return err
	}

	outDir := ctx.String("out-dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	cache, err := render.NewFrameCache(ctx.Int("cache-size"))
	if err != nil {
		return err
	}

	frame, err := render.NewFrame(ctx.Int("width"), ctx.Int("height"))
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := renderOptions(ctx)
	gamma := ctx.Float64("gamma")
	ext := ctx.String("format")

	logger.Noticef("animating %q: %d frames, dt = %g rad", name, frames, dt)
	allStats := make([]render.FrameStats, 0, frames)
	for i := 0; i < frames; i++ {
		stats, err := scene.RenderCached(runCtx, cache, frame, opts)
		if err != nil {
			return err
		}
		allStats = append(allStats, stats)

		path := output.FrameName(outDir, i, ext)
		if err := output.Write(path, frame.Image(gamma)); err != nil {
			return err
		}
		logger.Infof("frame %d -> %s (cached: %t)", i, path, stats.Cached)

		scene.Animate(dt)
	}

	displayFrameStats(allStats)
	return nil
}
