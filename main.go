package main

import (
	"os"

	"github.com/mohsinali45213/folio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
