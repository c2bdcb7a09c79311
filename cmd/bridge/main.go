package main

import (
	"os"

	"github.com/scp-tools/billing-bridge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
