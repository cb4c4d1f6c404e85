package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the portfolio contact form",
	Long: `contact drives the portfolio contact form from a terminal. It validates the
fields locally exactly like the web form and posts them once to the
submission endpoint.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("name", "", "Your name")
	rootCmd.PersistentFlags().String("email", "", "Your email address")
	rootCmd.PersistentFlags().String("message", "", "The message")
}
