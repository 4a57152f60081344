package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/sigcast/pkg/domain"
)

var parseCmd = &cobra.Command{
	Use:   "parse LITERAL",
	Short: "Parse a literal and print its display and trace forms",
	Long:  `Sets a scratch signal of the given type from LITERAL and prints what get and trace render for it.`,
	Example: `  sigcast parse --type vector "[5](0,0,1,0,0)"
  sigcast parse --type matrix "[2,2]((1,0)(0,1))"
  sigcast parse --type double 42.0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("type")

		eng, _, err := newEngine(cmd)
		if err != nil {
			return err
		}
		defer eng.Close()

		sig, err := eng.NewSignal("literal", domain.TypeKey(key))
		if err != nil {
			return err
		}
		if err := sig.Set(args[0]); err != nil {
			return err
		}

		display, err := sig.Get()
		if err != nil {
			return err
		}
		trace, err := sig.Trace()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "get:   %s", display)
		fmt.Fprintf(out, "trace: %s", trace)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("type", "t", string(domain.KeyDouble), "Type key of the literal")
}
