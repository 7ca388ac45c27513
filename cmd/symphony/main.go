package main

import (
	"os"

	"github.com/ikagiorgadze/symphony2/cmd/symphony/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
