package main

import (
	"os"

	"github.com/vcrobe/siteheader/cmd/headerctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
