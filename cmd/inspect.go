package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"neo-explorer/internal/neo"
)

var inspectPdes string
var inspectName string
var inspectVerbose bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Look up one NEO by designation or by name",
	Run:   runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectPdes, "pdes", "", "Primary designation of the NEO to inspect")
	inspectCmd.Flags().StringVar(&inspectName, "name", "", "IAU name of the NEO to inspect")
	inspectCmd.Flags().BoolVarP(&inspectVerbose, "verbose", "v", false, "Also list the NEO's close approaches")
	inspectCmd.MarkFlagsOneRequired("pdes", "name")
	inspectCmd.MarkFlagsMutuallyExclusive("pdes", "name")
}

func runInspect(cmd *cobra.Command, args []string) {
	db := loadDatabase()

	var o *neo.NearEarthObject
	if inspectPdes != "" {
		o = db.NEOByDesignation(inspectPdes)
	} else {
		o = db.NEOByName(inspectName)
	}
	if o == nil {
		log.Fatal("No matching NEO found")
	}

	fmt.Println(o)
	if inspectVerbose {
		for _, ca := range o.Approaches {
			fmt.Printf("- %s\n", ca)
		}
	}
}
