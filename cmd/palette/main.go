package main

import (
	"context"
	"log"

	"github.com/paletteapp/palette/internal/cli"
	"github.com/paletteapp/palette/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
