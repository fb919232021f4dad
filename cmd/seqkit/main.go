// Command seqkit applies order-preserving sequence helpers to YAML and JSON lists.
package main

import (
	"fmt"
	"os"

	"seqkit/internal/cli"
)

var version = "dev"

func main() {
	err := cli.NewRootCmd(version).Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
