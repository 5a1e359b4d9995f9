package macroo

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/d3ku010/macroo/internal/server"
	"github.com/d3ku010/macroo/internal/store"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve summaries and chart series over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo store.Repository) error {
			router := server.NewRouter(repo)
			log.Printf("listening on %s", serveAddr)
			return http.ListenAndServe(serveAddr, router)
		})
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8790", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
