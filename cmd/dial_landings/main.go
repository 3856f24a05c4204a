package main

import (
	"os"

	"github.com/paulcager/dial_counter/internal/app"
	"github.com/paulcager/dial_counter/internal/solver"
)

func main() {
	os.Exit(app.Run("dial_landings", solver.Landings, os.Args[1:], os.Stdout, os.Stderr))
}
