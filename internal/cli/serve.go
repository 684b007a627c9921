package cli

import (
	"fmt"

	"github.com/ehrlich-b/cubesync/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the web server, which exposes a shared cube over HTTP so multiple
clients can rotate and snapshot it concurrently.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		dimension, _ := cmd.Flags().GetInt("dimension")

		fmt.Printf("Starting web server at http://%s:%s (cube size %d)\n", host, port, dimension)

		server := web.NewServer(dimension)
		if err := server.Start(host + ":" + port); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
	serveCmd.Flags().IntP("dimension", "d", 3, "Cube dimension (2, 3, 4, etc.)")
}
