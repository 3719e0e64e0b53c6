// Command selbounds replays selection scenarios through the lifecycle and
// prints the paint chunks and selection records of every frame.
//
// Usage:
//
//	selbounds run scenario.toml [--json] [--engine ng|legacy] [--verbose]
//	selbounds draw scenario.toml -o out.png [--frame N] [--scale 2]
package main

import (
	"os"

	"github.com/gogpu/selbounds/cmd/selbounds/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
