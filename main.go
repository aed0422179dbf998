package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/b97tsk/idscan/internal/idrange"
	"github.com/b97tsk/idscan/internal/repeat"
)

// Set via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		eprintln(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "idscan",
		Short: "Classify identifiers against inclusive ranges",
		Long: `idscan reads a list of inclusive identifier ranges and answers questions
about the identifiers they cover.

Settings come from, in order of precedence: command line flags, IDSCAN_*
environment variables (IDSCAN_LOG_LEVEL, IDSCAN_WORKERS, ...), the file
named by --config, and the defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	bindFlags(cmd.PersistentFlags(), v)

	cmd.AddCommand(newInvalidCmd(v))
	cmd.AddCommand(newFreshCmd(v))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads the configuration, builds the logger and reads the input.
func setup(cmd *cobra.Command, v *viper.Viper) (c config, logger log.Logger, text string, err error) {
	c, err = loadConfig(v)
	if err != nil {
		return
	}
	logger = newLogger(cmd.ErrOrStderr(), c.LogLevel)

	text, err = readInput(cmd.InOrStdin(), c.File)
	if err != nil {
		return
	}
	level.Debug(logger).Log("msg", "read input", "file", c.File, "bytes", len(text))
	return
}

func newInvalidCmd(v *viper.Viper) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "invalid",
		Short: "Sum the identifiers in the ranges made of a repeated digit pattern",
		Long: `Reads comma-separated start-end ranges and sums every identifier they
cover whose decimal form is a digit pattern written exactly twice, like 6464.

With --all a pattern written two or more times counts too, like 111 or
1212121212. That mode tests every covered identifier, so keep the ranges
small or raise --workers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, logger, text, err := setup(cmd, v)
			if err != nil {
				return err
			}

			raw := idrange.Parse(text)
			set := idrange.Merge(raw)
			level.Debug(logger).Log("msg", "merged ranges", "parsed", len(raw), "merged", set.Len(), "covered", set.Count())

			r := report{Query: "doubles", Ranges: rangeStrings(set)}
			if all {
				s := repeat.Scanner{
					Workers:   c.Workers,
					ChunkSize: c.ChunkSize,
					Progress:  progressLogger(logger, set.Count()),
				}
				r.Query = "repeated"
				r.Result, err = s.SumRepeated(cmd.Context(), set)
				if err != nil {
					return errors.Wrap(err, "scanning ranges")
				}
			} else {
				r.Result = repeat.SumDoubles(set)
				if c.Format != _formatText {
					r.Matches = repeat.Doubles(set)
				}
			}

			return writeReport(cmd.OutOrStdout(), c.Format, r)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "count patterns written two or more times")

	return cmd
}

func newFreshCmd(v *viper.Viper) *cobra.Command {
	var total bool

	cmd := &cobra.Command{
		Use:   "fresh",
		Short: "Count the listed identifiers that fall in any range",
		Long: `Reads start-end ranges, one per line, then a blank line, then one
identifier per line, and counts the identifiers that fall in some range.

With --total the identifier list is ignored and the result is the number of
distinct identifiers the ranges cover.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, logger, text, err := setup(cmd, v)
			if err != nil {
				return err
			}

			head, tail := splitSections(text)
			raw := idrange.ParseLines(head)
			set := idrange.Merge(raw)
			level.Debug(logger).Log("msg", "merged ranges", "parsed", len(raw), "merged", set.Len())

			var r report
			if total {
				r = report{Query: "covered", Result: set.Count(), Ranges: rangeStrings(set)}
			} else {
				ids := parseIDs(tail)
				fresh := set.Filter(ids)
				level.Debug(logger).Log("msg", "checked identifiers", "listed", len(ids), "fresh", len(fresh))
				r = report{Query: "fresh", Result: uint64(len(fresh)), Matches: fresh}
			}

			return writeReport(cmd.OutOrStdout(), c.Format, r)
		},
	}

	cmd.Flags().BoolVarP(&total, "total", "t", false, "count every identifier the ranges cover")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fprintf(cmd.OutOrStdout(), "idscan version %s\n  commit: %s\n  built:  %s\n", version, commit, date)
		},
	}
}
