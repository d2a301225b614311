// huewheel - A hue-wheel colour palette generator
//
// huewheel builds six-colour palettes around the hue wheel and scores
// each swatch's contrast against a dark or light background.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/huewheel/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
