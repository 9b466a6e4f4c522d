package cmd

import "github.com/spf13/cobra"

var (
	rootCmd = &cobra.Command{
		Use:   "todos",
		Short: "A multi-tenant todo tracking service",
		Long:  `Todos is a task tracking service where each registered user owns a private list of todo items, exposed as a JSON HTTP API`,
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
