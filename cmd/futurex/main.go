package main

import (
	"fmt"
	"os"

	"github.com/futurexhq/futurex/internal/lms/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "futurex:", err)
		os.Exit(1)
	}
}
