package main

import (
	"os"

	"github.com/echoflaresat/whitted/cmd"
	"github.com/echoflaresat/whitted/log"
)

func main() {
	app := cmd.NewApp()
	if err := app.Run(os.Args); err != nil {
		log.New("whitted").Error(err)
		os.Exit(1)
	}
}
