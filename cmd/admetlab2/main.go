// Package main is the entry point for the admetlab2 CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/metalagman/admetlab2"
)

var exitFn = os.Exit

func main() {
	root := newRootCmd()
	exitWithError(root.OutOrStdout(), root.ExecuteContext(context.Background()))
}

// exitWithError prints err and exits with its mapped status. A nil err returns normally.
func exitWithError(w io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(w, err)

	exitFn(admetlab2.ExitCode(err))
}
