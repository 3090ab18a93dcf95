package main

import (
	"os"

	"github.com/ConservationInternational/trends.earth-schemas/cmd/teschemas/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
