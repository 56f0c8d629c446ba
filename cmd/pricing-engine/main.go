package main

import (
	"fmt"
	"os"

	"github.com/vidinfra/pricing-engine/cmd/pricing-engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
