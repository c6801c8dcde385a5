package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var fixturesFile string

var rootCmd = &cobra.Command{
	Use:   "commentctl",
	Short: "Operator tooling for the comment service",
	Long: `commentctl loads fixture comments into a user's store and evaluates
filter criteria against fixture files without a running service. It can
also applies schema migrations and mints development tokens for calling
the API locally.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fixturesFile, "file", "f", "fixtures.yaml", "Fixture file with posts and comments")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
