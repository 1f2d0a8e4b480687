package main

import (
	"fmt"
	"os"

	"github.com/nickjhughes/ruffle/cmd/avm2sh/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
