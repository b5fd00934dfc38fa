package main

import (
	"os"

	"github.com/llehouerou/reel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
