// Package main is the entry point for the phrase-highlighter CLI.
package main

import (
	"os"

	"phrase-highlighter/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
