// diskscan inventories a directory tree and reports sizes, counts,
// extension statistics and duplicate files.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/diskscan/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
