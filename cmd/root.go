package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"neo-explorer/internal/ingest"
	"neo-explorer/internal/neodb"
)

var neoFile string
var cadFile string

var rootCmd = &cobra.Command{
	Use:   "neo-explorer",
	Short: "Explore near-Earth objects and their close approaches to Earth",
	Long: `neo-explorer loads NASA's near-Earth object catalog and close approach
data into an in-memory database and answers questions about it.

Examples:
  # Look up a single NEO
  neo-explorer inspect --pdes 433
  neo-explorer inspect --name Apophis --verbose

  # Query close approaches with filters
  neo-explorer query --start-date 2020-01-01 --max-distance 0.1
  neo-explorer query --hazardous --outfile results.csv

  # Serve the query API over HTTP
  neo-explorer serve --addr :8080`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&neoFile, "neofile",
		envOr("NEO_CSV_PATH", "data/neos.csv"), "Path to the NEO catalog CSV file")
	rootCmd.PersistentFlags().StringVar(&cadFile, "cadfile",
		envOr("CAD_JSON_PATH", "data/cad.json"), "Path to the close approach JSON file")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadDatabase reads both data files and links them.
func loadDatabase() *neodb.Database {
	neos, approaches, err := ingest.LoadAll(neoFile, cadFile)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}
	log.Printf("Loaded %d NEOs and %d close approaches", len(neos), len(approaches))
	return neodb.New(neos, approaches)
}
