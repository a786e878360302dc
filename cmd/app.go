package cmd

import (
	"github.com/urfave/cli"
)

// NewApp assembles the command line interface.
func NewApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes with a recursive Whitted-style ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Trace one frame of a scene and write it as PNG or TIFF, depending on the
extension of --out. The scene is read from the JSON file given as argument
or, without an argument, taken from the built-in preset named by --preset.`,
			ArgsUsage: "[scene.json]",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			}, sceneFlags...),
			Action: RenderFrame,
		},
		{
			Name:  "animate",
			Usage: "render a camera orbit as an image sequence",
			Description: `
Render --frames frames, rotating the camera by --dt radians about the
vertical axis through its look-at point between frames. Poses that repeat
within an orbit are served from an in-memory frame cache.`,
			ArgsUsage: "[scene.json]",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "frames, n",
					Value: 63,
					Usage: "number of frames to render",
				},
				cli.Float64Flag{
					Name:  "dt",
					Value: 0.1,
					Usage: "camera rotation per frame in radians",
				},
				cli.StringFlag{
					Name:  "out-dir, o",
					Value: "frames",
					Usage: "directory receiving the numbered frames",
				},
				cli.StringFlag{
					Name:  "format",
					Value: "png",
					Usage: "frame image format (png or tif)",
				},
				cli.IntFlag{
					Name:  "cache-size",
					Value: 64,
					Usage: "number of rendered frames kept for reuse",
				},
			}, sceneFlags...),
			Action: Animate,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
	}

	return app
}
