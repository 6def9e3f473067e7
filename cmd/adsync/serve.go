package main

import (
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia a API HTTP e o agendador incremental",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
