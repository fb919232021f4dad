package cli

import (
	"errors"
	"slices"

	"github.com/spf13/cobra"

	"seqkit/resample"
	"seqkit/seqs"
)

// resampleError maps library errors to exit codes: refused input is a
// failure, anything else a command error.
func resampleError(msg string, err error) error {
	if errors.Is(err, resample.ErrShrink) || errors.Is(err, resample.ErrEmptySource) {
		return WrapExitError(ExitFailure, msg, err)
	}
	return WrapExitError(ExitCommandError, msg, err)
}

func newStretchCmd(opts *RootOptions) *cobra.Command {
	var (
		length  int
		indices bool
	)

	cmd := &cobra.Command{
		Use:   "stretch --length N [file...]",
		Short: "Stretch each list to exactly N elements by repeating elements",
		Long: "stretch resamples each list to --length elements by nearest-lower index.\n" +
			"A list longer than --length is an error; it is never truncated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := readLists(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			log := loggerFrom(cmd)
			out := make([]any, 0, len(lists))
			for _, l := range lists {
				if indices {
					if err := resample.Check(len(l), length); err != nil {
						return resampleError("stretch", err)
					}
					out = append(out, resample.Indices(len(l), length))
					continue
				}
				stretched, err := resample.StretchContext(cmd.Context(), l, length, opts.Config.Workers)
				if err != nil {
					return resampleError("stretch", err)
				}
				log.Debug().Int("from", len(l)).Int("to", length).Msg("stretched")
				out = append(out, stretched)
			}
			return opts.emit(cmd, out...)
		},
	}
	cmd.Flags().IntVar(&length, "length", 0, "target length")
	cmd.Flags().BoolVar(&indices, "indices", false, "print the source index chosen for each position instead of the values")
	_ = cmd.MarkFlagRequired("length")
	return cmd
}

func newEvenCmd(opts *RootOptions) *cobra.Command {
	var (
		cycle bool
		zip   bool
	)

	cmd := &cobra.Command{
		Use:   "even <first> <second>",
		Short: "Bring two lists to the length of the longer one",
		Long: "even resamples the shorter of two lists by index so both have the same length.\n" +
			"With --cycle the shorter list is repeated from its start instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := exactLists(cmd.InOrStdin(), args, 2)
			if err != nil {
				return err
			}

			makeEven := resample.MakeEven[any, any]
			if cycle {
				makeEven = resample.MakeEvenByCycling[any, any]
			}
			a, b, err := makeEven(lists[0], lists[1])
			if err != nil {
				return resampleError("even", err)
			}

			if zip {
				rows := seqs.Map(seqs.Zip(slices.Values(a), slices.Values(b)), func(p seqs.Pair[any, any]) []any {
					return []any{p.V1, p.V2}
				})
				return opts.emit(cmd, slices.Collect(rows))
			}
			return opts.emit(cmd, a, b)
		},
	}
	cmd.Flags().BoolVar(&cycle, "cycle", false, "repeat the shorter list instead of resampling it")
	cmd.Flags().BoolVar(&zip, "zip", false, "print one list of pairs instead of two lists")
	return cmd
}
