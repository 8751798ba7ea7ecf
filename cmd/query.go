package cmd

import (
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"neo-explorer/internal/export"
	"neo-explorer/internal/neo"
	"neo-explorer/internal/neodb"
)

// Default number of results printed to the terminal when no limit is given.
// File output is unlimited by default.
const defaultPrintLimit = 10

var queryFlags struct {
	date      string
	startDate string
	endDate   string

	minDistance float64
	maxDistance float64
	minVelocity float64
	maxVelocity float64
	minDiameter float64
	maxDiameter float64

	hazardous    bool
	notHazardous bool

	limit   int
	outfile string
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query close approaches with filters",
	Long: `Query finds close approaches matching every given filter, in load
order. Results print to the terminal, or write to --outfile with the format
chosen by extension: .csv, .json, or .db/.sqlite for a SQLite database.`,
	Run: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	f := queryCmd.Flags()
	f.StringVar(&queryFlags.date, "date", "", "Only approaches on this date (YYYY-MM-DD)")
	f.StringVar(&queryFlags.startDate, "start-date", "", "Only approaches on or after this date (YYYY-MM-DD)")
	f.StringVar(&queryFlags.endDate, "end-date", "", "Only approaches on or before this date (YYYY-MM-DD)")
	f.Float64Var(&queryFlags.minDistance, "min-distance", 0, "Minimum approach distance in au")
	f.Float64Var(&queryFlags.maxDistance, "max-distance", 0, "Maximum approach distance in au")
	f.Float64Var(&queryFlags.minVelocity, "min-velocity", 0, "Minimum approach velocity in km/s")
	f.Float64Var(&queryFlags.maxVelocity, "max-velocity", 0, "Maximum approach velocity in km/s")
	f.Float64Var(&queryFlags.minDiameter, "min-diameter", 0, "Minimum NEO diameter in km")
	f.Float64Var(&queryFlags.maxDiameter, "max-diameter", 0, "Maximum NEO diameter in km")
	f.BoolVar(&queryFlags.hazardous, "hazardous", false, "Only potentially hazardous NEOs")
	f.BoolVar(&queryFlags.notHazardous, "not-hazardous", false, "Only non-hazardous NEOs")
	f.IntVar(&queryFlags.limit, "limit", 0, "Maximum number of results (0 = no limit for files, 10 for terminal output)")
	f.StringVarP(&queryFlags.outfile, "outfile", "o", "", "Write results to this file instead of the terminal")

	queryCmd.MarkFlagsMutuallyExclusive("hazardous", "not-hazardous")
}

func runQuery(cmd *cobra.Command, args []string) {
	filters := buildFilters(cmd)
	db := loadDatabase()

	limit := queryFlags.limit
	if limit == 0 && queryFlags.outfile == "" {
		limit = defaultPrintLimit
	}
	results := neodb.Limit(db.Query(filters...), limit)

	if queryFlags.outfile == "" {
		count := 0
		for ca := range results {
			fmt.Println(ca)
			count++
		}
		if count == 0 {
			fmt.Println("No matching close approaches.")
		}
		return
	}

	var err error
	switch {
	case strings.HasSuffix(queryFlags.outfile, ".csv"):
		err = writeToFile(queryFlags.outfile, results, export.WriteCSV)
	case strings.HasSuffix(queryFlags.outfile, ".json"):
		err = writeToFile(queryFlags.outfile, results, export.WriteJSON)
	case strings.HasSuffix(queryFlags.outfile, ".db"), strings.HasSuffix(queryFlags.outfile, ".sqlite"):
		err = export.WriteSQLite(queryFlags.outfile, results)
	default:
		log.Fatalf("Unsupported outfile extension: %s (want .csv, .json, .db or .sqlite)", queryFlags.outfile)
	}
	if err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}
	log.Printf("Wrote results to %s", queryFlags.outfile)
}

// buildFilters converts the set flags into filter predicates. Range flags
// only apply when given explicitly, so a zero bound still filters.
func buildFilters(cmd *cobra.Command) []neodb.Filter {
	var filters []neodb.Filter

	dates := []struct {
		flag  string
		raw   string
		build func(time.Time) neodb.Filter
	}{
		{"date", queryFlags.date, neodb.OnDate},
		{"start-date", queryFlags.startDate, neodb.StartDate},
		{"end-date", queryFlags.endDate, neodb.EndDate},
	}
	for _, d := range dates {
		if d.raw == "" {
			continue
		}
		t, err := time.ParseInLocation("2006-01-02", d.raw, time.UTC)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid --%s %q, want YYYY-MM-DD\n", d.flag, d.raw)
			os.Exit(1)
		}
		filters = append(filters, d.build(t))
	}

	ranges := []struct {
		flag  string
		value float64
		build func(float64) neodb.Filter
	}{
		{"min-distance", queryFlags.minDistance, neodb.MinDistance},
		{"max-distance", queryFlags.maxDistance, neodb.MaxDistance},
		{"min-velocity", queryFlags.minVelocity, neodb.MinVelocity},
		{"max-velocity", queryFlags.maxVelocity, neodb.MaxVelocity},
		{"min-diameter", queryFlags.minDiameter, neodb.MinDiameter},
		{"max-diameter", queryFlags.maxDiameter, neodb.MaxDiameter},
	}
	for _, rg := range ranges {
		if cmd.Flags().Changed(rg.flag) {
			filters = append(filters, rg.build(rg.value))
		}
	}

	if queryFlags.hazardous {
		filters = append(filters, neodb.Hazardous(true))
	}
	if queryFlags.notHazardous {
		filters = append(filters, neodb.Hazardous(false))
	}

	return filters
}

func writeToFile(path string, results iter.Seq[*neo.CloseApproach],
	write func(io.Writer, iter.Seq[*neo.CloseApproach]) error) error {

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
