package main

import (
	"github.com/daniel-nimptsch/demultiplex-scripts/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
