package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/aretw0/sigcast/internal/config"
	"github.com/aretw0/sigcast/internal/logging"
	"github.com/aretw0/sigcast/pkg/trace"
)

var loadCmd = &cobra.Command{
	Use:   "load FILE",
	Short: "Load a signal bootstrap file and print every signal",
	Long:  `Declares the signals listed in FILE, sets their initial literals and prints the display form of each one. Signals listed under 'trace' are also written in trace form.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showMetrics, _ := cmd.Flags().GetBool("metrics")

		doc, err := config.Load(args[0])
		if err != nil {
			return err
		}

		eng, promReg, err := newEngine(cmd)
		if err != nil {
			return err
		}
		defer eng.Close()

		sink := logging.NewSlogSink(eng.Logger())
		if err := config.Apply(cmd.Context(), doc, eng); err != nil {
			sink.Append(fmt.Sprintf("Failed to load %s.", args[0]), logging.SeverityError)
			return err
		}
		sink.Append(fmt.Sprintf("Loaded %d signals from %s.", len(doc.Signals), args[0]), logging.SeverityInfo)

		out := cmd.OutOrStdout()
		for _, name := range eng.Signals().Names() {
			sig, err := eng.Signals().Lookup(name)
			if err != nil {
				return err
			}
			display, err := sig.Get()
			if err != nil {
				return err
			}
			if !strings.HasSuffix(display, "\n") {
				display += "\n"
			}
			fmt.Fprintf(out, "%s = %s", name, display)
		}

		if len(doc.Trace) > 0 {
			fmt.Fprintln(out, "# trace")
			rec := trace.NewRecorder(out)
			for _, name := range doc.Trace {
				sig, err := eng.Signals().Lookup(name)
				if err != nil {
					return err
				}
				rec.Add(sig)
			}
			if err := rec.Record(); err != nil {
				return err
			}
		}

		if showMetrics {
			families, err := promReg.Gather()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "# metrics")
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().Bool("metrics", false, "Print cast metrics in Prometheus text format after loading")
}
