package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"neo-explorer/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the close approach query API over HTTP",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", envOr("NEO_ADDR", ":8080"), "Address to listen on")
}

func runServe(cmd *cobra.Command, args []string) {
	db := loadDatabase()
	server := api.NewServer(db)

	s := &http.Server{
		Addr:    serveAddr,
		Handler: server.Routes(),
	}

	log.Printf("Starting server on %s", serveAddr)
	if err := s.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
