// Command tbtctl evaluates the ship-deck-landing temporal behavior tree
// against a logged trace and reports its robustness, optimal
// segmentation, and alternative segmentations. See spec.md §6 for the
// full CLI surface.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tbt/internal/applog"
	"github.com/katalvlaran/tbt/internal/config"
	"github.com/katalvlaran/tbt/internal/runner"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logfile  string
		lazy     bool
		sampling bool
		debug    bool
		tau      uint
		rho      float32
		amount   uint
		children bool
	)

	cmd := &cobra.Command{
		Use:   "tbtctl",
		Short: "Evaluate and segment a temporal behavior tree against a logged trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Resolve(
				config.WithLogfile(logfile),
				config.WithLazy(lazy),
				config.WithSampling(sampling),
				config.WithDebug(debug),
				config.WithTau(int(tau)),
				config.WithRho(rho),
				config.WithAmount(int(amount)),
				config.WithChildrenOnly(children),
			)
			if err != nil {
				return err
			}

			log := applog.New(settings.Debug, "")
			defer log.Sync() //nolint:errcheck // best-effort flush on exit

			if err := runner.Run(settings, log); err != nil {
				log.Errorw("run failed", "error", err)

				return err
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&logfile, "logfile", "f", "", "input logfile prefix (required)")
	flags.BoolVarP(&lazy, "lazy", "l", false, "enable lazy/short-circuiting evaluation")
	flags.BoolVarP(&sampling, "sampling", "s", false, "enable subsampling heuristic")
	flags.BoolVarP(&debug, "debug", "d", false, "enable periodic progress prints")
	flags.UintVarP(&tau, "tau", "t", 20000, "time-distance threshold for alternatives")
	flags.Float32VarP(&rho, "rho", "r", 50.0, "robustness-distance threshold for alternatives")
	flags.UintVarP(&amount, "amount", "a", 3, "number of alternative segmentations")
	flags.BoolVarP(&children, "children", "c", false, "restrict segmentation printing to leaves")
	_ = cmd.MarkFlagRequired("logfile")

	return cmd
}
