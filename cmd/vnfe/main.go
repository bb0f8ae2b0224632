package main

import (
	"fmt"
	"os"

	"vnfe/internal/app"
	"vnfe/internal/cli"
	"vnfe/internal/common"
)

func main() {
	opts, err := cli.Parse(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vnfe: %v\n", err)
		os.Exit(1)
	}

	if opts.ShowHelp {
		fmt.Println(cli.Usage())
		return
	}

	if opts.ListMethods {
		for _, name := range common.AvailableMethods() {
			fmt.Println(name)
		}
		return
	}

	if err := app.NewRuntime(opts).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vnfe: %v\n", err)
		os.Exit(1)
	}
}
