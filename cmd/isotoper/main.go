// Isotoper - Isotope pattern grouping for chromatographic peak lists
package main

import (
	"fmt"
	"os"

	"github.com/ChrisMcGann/isotoper/cmd/isotoper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
