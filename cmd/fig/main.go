package main

import (
	"os"

	"github.com/dshills/fig/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
