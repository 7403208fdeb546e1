package main

import (
	"os"

	"lexflow/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
