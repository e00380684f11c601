package main

import (
	"os"

	"github.com/idilsaglam/demo/internal/cli"
)

func main() {
	// Hand everything after the program name to the CLI; it owns flags,
	// config resolution and exit codes.
	os.Exit(cli.Run(os.Args[1:]))
}
