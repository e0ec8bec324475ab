// Command counter renders an interactive counter in the terminal or as a
// one-shot snapshot.
package main

import (
	"os"

	"github.com/go-drift/counter/cmd/counter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
