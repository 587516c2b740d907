package main

import (
	"context"
	"os"

	"github.com/m-mizutani/relhook/pkg/cli"
)

func main() {
	if err := cli.RunListener(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
