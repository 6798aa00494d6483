package main

import (
	"os"

	"github.com/JaLnYn/zed-pyenvselect/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
