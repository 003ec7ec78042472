package main

import (
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	debugLogs bool
	fetchFrom string
)

// root command
var rootCmd = &cobra.Command{
	Use:   "litholog",
	Short: "Lithology well-log catalog server and client",
}

// command for running the web server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cfgPath, debugLogs)
	},
}

// command for fetching logs from a running server and printing them
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch logs from a server and print them as tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd.Context(), fetchFrom)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "enable debug logging")
	fetchCmd.Flags().StringVar(&fetchFrom, "server", "http://localhost:8000", "base URL of the litholog server")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
}
