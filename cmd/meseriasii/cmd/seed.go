package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meseriasii/meseriasii/repository"
	bboltstorage "github.com/meseriasii/meseriasii/storage/bbolt"
)

var seedDataDir string

var starterCategories = []string{
	"Electrician",
	"Instalator",
	"Zugrav",
	"Tamplar",
	"Zidar",
	"Gradinar",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the starter service categories into the document store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(seedDataDir, 0o700); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		store, err := bboltstorage.NewStoreFromFile(seedDataDir+"/meseriasii.db", nil)
		if err != nil {
			return fmt.Errorf("failed to open document store: %w", err)
		}
		defer store.Close()

		categories := repository.NewCategories(store)
		existing, err := categories.List()
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}
		present := make(map[string]bool, len(existing))
		for _, cat := range existing {
			present[cat.Name] = true
		}

		added := 0
		for _, name := range starterCategories {
			if present[name] {
				continue
			}
			if _, err := categories.Add(name); err != nil {
				return fmt.Errorf("adding category %s: %w", name, err)
			}
			added++
		}

		fmt.Printf("Seeded %d categories (%d already present)\n", added, len(existing))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedDataDir, "data-dir", "./data", "Directory for persistent data")
}
