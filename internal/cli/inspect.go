package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seqkit/sliceutil"
)

func newTuplifyCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tuplify [file...]",
		Short: "Wrap scalar documents in a list; lists pass through",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := readDocuments(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return opts.emit(cmd, sliceutil.Map(docs, func(d any) any {
				return sliceutil.Tuplify(d)
			})...)
		},
	}
}

// typeChecks maps --type names to the dynamic types yaml.v3 decodes into.
var typeChecks = map[string]func([]any) bool{
	"string": sliceutil.AllInstances[string],
	"int":    sliceutil.AllInstances[int],
	"float":  sliceutil.AllInstances[float64],
	"bool":   sliceutil.AllInstances[bool],
	"list":   sliceutil.AllInstances[[]any],
	"map": func(l []any) bool {
		return sliceutil.All(l, func(v any) bool {
			switch v.(type) {
			case map[string]any, map[any]any:
				return true
			}
			return false
		})
	},
}

func newCheckTypeCmd(opts *RootOptions) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "check-type --type NAME [file...]",
		Short: "Check that every element of each list has the given type",
		Long: "check-type reports, per list, whether all elements are of --type\n" +
			"(string, int, float, bool, list or map). It exits 1 if any list fails.",
		RunE: func(cmd *cobra.Command, args []string) error {
			check, ok := typeChecks[typeName]
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown type %q", typeName))
			}
			lists, err := readLists(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			results := sliceutil.Map(lists, func(l []any) any {
				res := map[string]any{"all": check(l)}
				if i := sliceutil.FindIndex(l, func(v any) bool { return !check([]any{v}) }); i >= 0 {
					res["first_mismatch"] = i
				}
				return res
			})
			if err := opts.emit(cmd, results...); err != nil {
				return err
			}

			failed := sliceutil.ContainsFunc(results, func(r any) bool {
				return !r.(map[string]any)["all"].(bool)
			})
			if failed {
				return NewExitError(ExitFailure, fmt.Sprintf("not every element is a %s", typeName))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "expected element type")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
