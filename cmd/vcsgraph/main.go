package main

import (
	"fmt"
	"os"

	"github.com/utkarsh5026/vcsgraph/cmd/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Red("error: ")+err.Error())
		os.Exit(1)
	}
}
