package main

import (
	"os"

	"github.com/san-kum/folio/internal/cli"
	"github.com/san-kum/folio/internal/gui"
)

func main() {
	if err := cli.New(gui.Run).Execute(); err != nil {
		os.Exit(1)
	}
}
