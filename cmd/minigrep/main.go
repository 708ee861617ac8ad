package main

import (
	"os"

	"github.com/mvp-joe/minigrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
