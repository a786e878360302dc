package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/echoflaresat/whitted/config"
	"github.com/echoflaresat/whitted/render"
	"github.com/echoflaresat/whitted/sun"
)

// sceneFlags are shared by every command that renders.
var sceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "preset, p",
		Value: "glass",
		Usage: "built-in scene to render when no scene file is given",
	},
	cli.IntFlag{
		Name:  "width",
		Value: 600,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 600,
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "workers",
		Value: 0,
		Usage: "number of rows traced concurrently (0 = one per CPU)",
	},
	cli.IntFlag{
		Name:  "samples",
		Value: 1,
		Usage: "supersampling grid size per pixel axis",
	},
	cli.Float64Flag{
		Name:  "gamma",
		Value: 0,
		Usage: "display gamma; 0 selects the sRGB curve, 1 writes linear values",
	},
	cli.StringFlag{
		Name:  "sun-time",
		Usage: "replace the scene lights with the Sun at this RFC3339 instant (or \"now\")",
	},
	cli.Float64Flag{
		Name:  "lat",
		Value: 47.5,
		Usage: "observer latitude in degrees for --sun-time",
	},
	cli.Float64Flag{
		Name:  "lon",
		Value: 19.05,
		Usage: "observer longitude in degrees (east positive) for --sun-time",
	},
	cli.Float64Flag{
		Name:  "sun-radiance",
		Value: 2,
		Usage: "radiance of the Sun light for --sun-time",
	},
}

// loadScene resolves the scene description from the first argument (a
// JSON file) or the --preset flag and builds it.
func loadScene(ctx *cli.Context) (*render.Scene, string, error) {
	var (
		sc   *config.Scene
		name string
		err  error
	)

	switch ctx.NArg() {
	case 0:
		name = ctx.String("preset")
		sc, err = config.Preset(name)
	case 1:
		name = ctx.Args().First()
		sc, err = config.Load(name)
	default:
		return nil, "", errors.New("expected at most one scene file argument")
	}
	if err != nil {
		return nil, "", err
	}

	if ts := ctx.String("sun-time"); ts != "" {
		light, err := sunLight(ts, ctx.Float64("lat"), ctx.Float64("lon"), ctx.Float64("sun-radiance"))
		if err != nil {
			return nil, "", err
		}
		sc.Lights = []config.Light{light}
	}

	scene, err := sc.Build()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", name, err)
	}
	logger.Infof("loaded scene %q: %d objects, %d lights", name, len(scene.Objects()), len(scene.Lights()))
	return scene, name, nil
}

func sunLight(ts string, lat, lon, radiance float64) (config.Light, error) {
	at := time.Now()
	if ts != "now" {
		var err error
		if at, err = time.Parse(time.RFC3339, ts); err != nil {
			return config.Light{}, fmt.Errorf("invalid --sun-time: %w", err)
		}
	}

	obs := sun.Observer{Lat: lat, Lon: lon}
	dir, err := sun.Direction(at, obs)
	if err != nil {
		return config.Light{}, err
	}
	if elev, _ := sun.Elevation(at, obs); elev < 0 {
		logger.Warningf("the Sun is %.1f° below the horizon at %s", -elev, at.UTC().Format(time.RFC3339))
	}

	return config.Light{
		Direction: config.Vec{dir.X, dir.Y, dir.Z},
		Radiance:  config.Vec{radiance, radiance, radiance},
	}, nil
}

func renderOptions(ctx *cli.Context) render.Options {
	return render.Options{
		Workers: ctx.Int("workers"),
		Samples: ctx.Int("samples"),
	}
}
