// Copyright 2025 Saviare LTDA
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/saviare/campus-api/internal/config"
	"github.com/saviare/campus-api/internal/server"
)

func main() {
	cmd := &cli.Command{
		Name:   "campus-api",
		Usage:  "Start the Saviare campus API server",
		Flags:  config.Flags(),
		Action: server.Run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
