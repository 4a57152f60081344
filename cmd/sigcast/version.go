package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/sigcast"
	"github.com/aretw0/sigcast/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sigcast",
	Run: func(cmd *cobra.Command, args []string) {
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(cmd.OutOrStdout(), sigcast.Version)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "sigcast version %s\n", sigcast.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("banner", false, "Print the banner")
}
