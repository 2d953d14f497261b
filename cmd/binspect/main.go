/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line entry point for binspect. Inspects an arbitrary binary file
and prints metadata, byte statistics, a hex dump, repeating patterns, an ASCII
rendering and a best-guess text encoding.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/binspect/cmd/binspect/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
