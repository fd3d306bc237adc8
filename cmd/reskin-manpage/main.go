package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/reskin/internal/cli"
	"github.com/arthur-debert/reskin/internal/version"
)

func main() {
	header := &doc.GenManHeader{
		Title:   "RESKIN",
		Section: "1",
		Source:  "reskin " + version.Version,
		Manual:  "reskin manual",
	}

	if err := doc.GenMan(cli.NewRootCmd(), header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
