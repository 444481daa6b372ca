package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyvault",
	Short: "Study Vault backend",
	Long:  `Study Vault serves the study-materials browser API and its moderation workflow.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
