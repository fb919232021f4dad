package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"seqkit/fn"
	"seqkit/seqs"
	"seqkit/sliceutil"
)

func newDedupeCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe [file...]",
		Short: "Remove duplicates, keeping each element's last occurrence",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := readLists(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := sliceutil.Map(lists, func(l []any) any {
				return sliceutil.UniqueLastBy(l, canonical)
			})
			loggerFrom(cmd).Debug().Int("documents", len(out)).Msg("deduplicated")
			return opts.emit(cmd, out...)
		},
	}
}

func newUpdateCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update <first> <second>",
		Short: "Elements of the first list missing from the second, followed by the second",
		Long: "update reads two list documents and prints the first without any element of the second,\n" +
			"followed by the whole second list in its own order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := exactLists(cmd.InOrStdin(), args, 2)
			if err != nil {
				return err
			}
			return opts.emit(cmd, sliceutil.UpdateFunc(lists[0], lists[1], sameValue))
		},
	}
}

func newDifferenceCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "difference <first> <second>",
		Short: "Elements of the first list missing from the second, in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := exactLists(cmd.InOrStdin(), args, 2)
			if err != nil {
				return err
			}
			return opts.emit(cmd, sliceutil.DifferenceUpdateFunc(lists[0], lists[1], sameValue))
		},
	}
}

func newFlattenCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten [file...]",
		Short: "Concatenate every list document into one list",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := readLists(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return opts.emit(cmd, sliceutil.Flatten(lists...))
		},
	}
}

func newBatchCmd(opts *RootOptions) *cobra.Command {
	var fieldName string

	cmd := &cobra.Command{
		Use:   "batch [file...]",
		Short: "Group consecutive elements sharing a value",
		Long: "batch splits each list into maximal runs of consecutive elements whose value\n" +
			"(or whose --field value, for maps) is the same. Nested fields are written a.b.c.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := readLists(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			prop := fieldPath(fieldName)

			out := sliceutil.Map(lists, func(l []any) any {
				batches := sliceutil.BatchByFunc(l, prop, sameValue)
				loggerFrom(cmd).Debug().Int("items", len(l)).Int("batches", len(batches)).Msg("batched")
				return sliceutil.Map(batches, func(b sliceutil.Batch[any, any]) any {
					return map[string]any{"prop": b.Prop, "items": b.Items}
				})
			})
			return opts.emit(cmd, out...)
		},
	}
	cmd.Flags().StringVar(&fieldName, "field", "", "group map elements by this dotted key path instead of the whole element")
	return cmd
}

func newPairsCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pairs [file...]",
		Short: "List the adjacent pairs of each list, wrapping from last to first",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := readLists(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			out := make([]any, 0, len(lists))
			for i, l := range lists {
				if len(l) == 0 {
					return NewExitError(ExitFailure, "pairs of an empty list are undefined")
				}
				pairs := seqs.Map(seqs.AdjacentPairs(l), func(p seqs.Pair[any, any]) []any {
					return []any{p.V1, p.V2}
				})
				out = append(out, slices.Collect(pairs))
				loggerFrom(cmd).Debug().Int("document", i+1).Int("pairs", len(l)).Msg("paired")
			}
			return opts.emit(cmd, out...)
		},
	}
}

func newCompactCmd(opts *RootOptions) *cobra.Command {
	var nullOnly bool

	cmd := &cobra.Command{
		Use:   "compact [file...]",
		Short: "Drop falsy elements (null, false, 0, empty strings, lists and maps)",
		Long: "compact drops every falsy element by default. With --null-only it drops nulls\n" +
			"alone and keeps zeros, false and empty values.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := readLists(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := sliceutil.Map(lists, func(l []any) any {
				if nullOnly {
					// The zero value of any is nil, so Compact removes exactly the
					// nulls. Maps and lists never equal nil, so == cannot panic.
					return sliceutil.Compact(l)
				}
				return sliceutil.Filter(l, truthy)
			})
			return opts.emit(cmd, out...)
		},
	}
	cmd.Flags().BoolVar(&nullOnly, "null-only", false, "drop only null elements")
	return cmd
}

// fieldPath projects a value through a dotted key path; "" is the identity.
// The projections compose right to left, so the last key is applied last.
func fieldPath(path string) func(any) any {
	if path == "" {
		return fn.Identity[any]
	}
	steps := sliceutil.Map(strings.Split(path, "."), field)
	slices.Reverse(steps)
	return fn.Compose(steps...)
}
