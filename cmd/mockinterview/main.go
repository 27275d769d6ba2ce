// Package main provides a terminal front end for running a mock project
// interview without the browser.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mockinterview",
	Short: "Mock project interview from the terminal",
	Long:  "mockinterview reads a résumé, asks three questions about the candidate's projects, collects typed answers under a countdown and prints an evaluation report.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
