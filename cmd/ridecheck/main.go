// ridecheck decides whether visitors may use park attractions.
// Single binary; the default catalog is embedded.
package main

import (
	"fmt"
	"os"

	"github.com/corey/ridecheck/cmd/ridecheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		code := cmd.ExitCode(err)
		if !cmd.IsVerdict(err) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(code)
	}
}
