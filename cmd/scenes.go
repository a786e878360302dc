package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/echoflaresat/whitted/config"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Preset", "Objects", "Materials", "Lights", "FOV"})

	for _, name := range config.Presets() {
		sc, err := config.Preset(name)
		if err != nil {
			return err
		}

		kinds := make([]string, 0, len(sc.Objects))
		for _, obj := range sc.Objects {
			kinds = append(kinds, obj.Type)
		}
		table.Append([]string{
			name,
			strings.Join(kinds, ", "),
			fmt.Sprintf("%d", len(sc.Materials)),
			fmt.Sprintf("%d", len(sc.Lights)),
			fmt.Sprintf("%g°", sc.Camera.FOVDeg),
		})
	}

	table.Render()
	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}
