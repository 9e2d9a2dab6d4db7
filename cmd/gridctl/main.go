package main

import (
	"fmt"
	"os"

	"github.com/lanternworks/gridlink/cmd/gridctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gridctl: %v\n", err)
		os.Exit(1)
	}
}
