// Package main is a local command line for trying dice formulas without Discord
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dice",
	Short: "Evaluate dice formulas the way the bot does",
	Long: `dice rolls and inspects free-text formulas such as "2d20 + d6 - 2 Attack".
Attribute references ($DEX, &Dexterity) are reported as unresolved since no character is loaded.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRollCmd())
	rootCmd.AddCommand(newParseCmd())
}
