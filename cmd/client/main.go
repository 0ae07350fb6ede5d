package main

import (
	"context"
	"log"

	"github.com/podstream/podstream-cli/internal/cli"
	"github.com/podstream/podstream-cli/internal/config"
	"github.com/podstream/podstream-cli/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
