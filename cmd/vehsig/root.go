package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "vehsig",
	Short: "Vehsig CLI tool can perform common tasks related to stubbing " +
		"vehicle signal components for closed-loop simulation.",
	Long: `Vehsig CLI tool can perform common tasks related to stubbing ` +
		`vehicle signal components for closed-loop simulation. Currently, ` +
		`it supports generating stub sources and serving a component ` +
		`under the injection harness.`,
}

// execute adds all child commands to the root command and sets flags
// appropriately.
func execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
