package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harrison/lookfor/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(color.Error, "%s %v\n", color.New(color.FgRed).Sprint("Error:"), err)
		os.Exit(1)
	}
}
