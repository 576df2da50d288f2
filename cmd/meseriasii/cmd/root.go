package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meseriasii",
	Short: "Meseriasii is a marketplace connecting service providers with customers",
	Long: `The backend for the Meseriasii marketplace: authentication, user profiles,
service offers, categories, and reviews over a document database.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
