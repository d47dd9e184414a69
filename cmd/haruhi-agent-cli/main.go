package main

import (
	"os"

	"github.com/spf13/cobra"
)

var envFile string

func main() {
	root := &cobra.Command{
		Use:           "haruhi-agent-cli",
		Short:         "Manage the Haruhi agent's profile on Circlo",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env",
		"path to env file holding CIRCLO_TOKEN or CIRCLO_API_TOKEN")

	root.AddCommand(registerCmd())
	root.AddCommand(updateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
