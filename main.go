package main

import (
	"os"

	"github.com/castingdesk/castmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
