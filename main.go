package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"initenv/pkg/cli"
)

func main() {
	// Replaced once flags are parsed; covers errors raised before that.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cli.Execute()
}
