package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/echoflaresat/whitted/output"
	"github.com/echoflaresat/whitted/render"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	scene, name, err := loadScene(ctx)
	if err != nil {
		return err
	}

	frame, err := render.NewFrame(ctx.Int("width"), ctx.Int("height"))
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering %q at %dx%d", name, frame.Width, frame.Height)
	stats, err := scene.Render(runCtx, frame, renderOptions(ctx))
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err := output.Write(out, frame.Image(ctx.Float64("gamma"))); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)

	displayFrameStats([]render.FrameStats{stats})
	return nil
}

func displayFrameStats(frames []render.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Size", "Workers", "Rays", "Shadow rays", "Rays/s", "Render time"})

	var rays, shadowRays int64
	var total float64
	for i, stat := range frames {
		rays += stat.Rays
		shadowRays += stat.ShadowRays
		total += stat.RenderTime.Seconds()

		renderTime := fmt.Sprintf("%s", stat.RenderTime)
		if stat.Cached {
			renderTime = "cached"
		}
		table.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%dx%d", stat.Width, stat.Height),
			fmt.Sprintf("%d", stat.Workers),
			fmt.Sprintf("%d", stat.Rays),
			fmt.Sprintf("%d", stat.ShadowRays),
			fmt.Sprintf("%.0f", stat.RaysPerSecond()),
			renderTime,
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", rays), fmt.Sprintf("%d", shadowRays), "", fmt.Sprintf("%.3fs", total)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
