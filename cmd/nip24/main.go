package main

import (
	"fmt"
	"os"

	"github.com/rezonia/nip24-client/cmd/nip24/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
