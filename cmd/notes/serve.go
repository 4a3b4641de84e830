package main

import (
	"fmt"
	"os"

	"github.com/b-hayes/notes/internal/core"
	"github.com/b-hayes/notes/internal/server"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var openBrowser bool
var port int

func init() {
	serveCmd.Flags().BoolVarP(&openBrowser, "open", "o", false, "Open the editor in the default browser")
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default is the configured port)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editor",
	Long:  `Serve the web editor and its JSON API for the notes directory.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		collection := core.CurrentCollection()
		configFile := collection.Config().ConfigFile
		addr := configFile.Address()
		if port > 0 {
			addr = fmt.Sprintf("%s:%d", configFile.Server.Host, port)
		} else {
			port = configFile.Server.Port
		}

		srv, err := server.New(collection)
		exitOnError(err)

		url := fmt.Sprintf("http://localhost:%d/", port)
		fmt.Printf("Editing %s on %s\n", collection.Path, url)
		if openBrowser {
			if err := browser.OpenURL(url); err != nil {
				fmt.Fprintf(os.Stderr, "Unable to browse to %s: %v\n", url, err)
			}
		}

		exitOnError(srv.ListenAndServe(cmd.Context(), addr))
	},
}
