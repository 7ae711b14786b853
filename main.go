package main

import (
	"fmt"
	"os"

	"github.com/qyinm/placetui/cli"
)

func main() {
	if err := cli.NewApp().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
