package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqkit/internal/cli"
)

func TestCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"Dedupe", "[1, 2, 1, 3, 2]", []string{"dedupe"}, "[1, 3, 2]"},
		{"DedupeNested", `[{"a": 1}, {"a": 2}, {"a": 1}]`, []string{"dedupe"}, `[{"a": 2}, {"a": 1}]`},
		{"Update", "[1, 2, 3]\n---\n[2, 4]", []string{"update"}, "[1, 3, 2, 4]"},
		{"Difference", "[1, 2, 1, 3]\n---\n[3]", []string{"difference"}, "[1, 2, 1]"},
		{"Flatten", "[1, 2]\n---\n[3]\n---\n[4, 5]", []string{"flatten"}, "[1, 2, 3, 4, 5]"},
		{"FlattenNull", "[1]\n---\n", []string{"flatten"}, "[1]"},
		{
			"Batch", "[1, 1, 2, 2, 2, 3]", []string{"batch"},
			`[{"prop": 1, "items": [1, 1]}, {"prop": 2, "items": [2, 2, 2]}, {"prop": 3, "items": [3]}]`,
		},
		{
			"BatchField", `[{"r": "eu", "n": 1}, {"r": "eu", "n": 2}, {"r": "us", "n": 3}]`,
			[]string{"batch", "--field", "r"},
			`[{"prop": "eu", "items": [{"r": "eu", "n": 1}, {"r": "eu", "n": 2}]}, {"prop": "us", "items": [{"r": "us", "n": 3}]}]`,
		},
		{
			"BatchNestedField", `[{"m": {"k": 1}}, {"m": {"k": 1}}, {"m": {"k": 2}}]`,
			[]string{"batch", "--field", "m.k"},
			`[{"prop": 1, "items": [{"m": {"k": 1}}, {"m": {"k": 1}}]}, {"prop": 2, "items": [{"m": {"k": 2}}]}]`,
		},
		{"Pairs", `["a", "b", "c"]`, []string{"pairs"}, `[["a", "b"], ["b", "c"], ["c", "a"]]`},
		{"PairsSingle", `["a"]`, []string{"pairs"}, `[["a", "a"]]`},
		{"Compact", `[0, 1, "", "x", null, false, [], {}, [0]]`, []string{"compact"}, `[1, "x", [0]]`},
		{"CompactNullOnly", `[0, null, "", {}, false]`, []string{"compact", "--null-only"}, `[0, "", {}, false]`},
		{"Stretch", `["a", "b"]`, []string{"stretch", "--length", "4"}, `["a", "a", "b", "b"]`},
		{"StretchIndices", `["a", "b", "c"]`, []string{"stretch", "--length", "5", "--indices"}, `[0, 0, 1, 1, 2]`},
		{"EvenZip", "[1, 2]\n---\n[a, b, c, d]", []string{"even", "--zip"}, `[[1, "a"], [1, "b"], [2, "c"], [2, "d"]]`},
		{"EvenCycleZip", "[1, 2]\n---\n[a, b, c]", []string{"even", "--cycle", "--zip"}, `[[1, "a"], [2, "b"], [1, "c"]]`},
		{"TuplifyScalar", `"abc"`, []string{"tuplify"}, `["abc"]`},
		{"TuplifyList", `[1, 2]`, []string{"tuplify"}, `[1, 2]`},
		{"CheckType", `["a", "b"]`, []string{"check-type", "--type", "string"}, `{"all": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.stdin, nil, append(tt.args, "-o", "json")...)
			require.NoError(t, res.err)
			assert.JSONEq(t, tt.want, res.stdout)
		})
	}
}

func TestCommands_MultipleDocuments(t *testing.T) {
	res := run(t, "[1, 1]\n---\n[2, 3, 2]", nil, "dedupe")
	require.NoError(t, res.err)
	assert.Equal(t, "- 1\n---\n- 3\n- 2\n", res.stdout)
}

func TestCommands_Even(t *testing.T) {
	res := run(t, "[1, 2]\n---\n[a, b, c, d]", nil, "even")
	require.NoError(t, res.err)
	assert.Equal(t, "- 1\n- 1\n- 2\n- 2\n---\n- a\n- b\n- c\n- d\n", res.stdout)
}

func TestCommands_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte("- 1\n- 2\n- 3\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("[2, 4]"), 0o600))

	res := run(t, "", nil, "update", a, b, "-o", "json")
	require.NoError(t, res.err)
	assert.JSONEq(t, "[1, 3, 2, 4]", res.stdout)
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"StretchShrink", "[1, 2, 3]", []string{"stretch", "--length", "2"}, cli.ExitFailure, "shorter"},
		{"StretchIndicesShrink", "[1, 2, 3]", []string{"stretch", "--length", "2", "--indices"}, cli.ExitFailure, "shorter"},
		{"StretchEmpty", "[]", []string{"stretch", "--length", "2"}, cli.ExitFailure, "empty source"},
		{"PairsEmpty", "[]", []string{"pairs"}, cli.ExitFailure, "empty list"},
		{"EvenOneEmpty", "[]\n---\n[1]", []string{"even"}, cli.ExitFailure, "empty source"},
		{"UpdateOneDoc", "[1]", []string{"update"}, cli.ExitCommandError, "expected 2 documents"},
		{"NotAList", "{a: 1}", []string{"dedupe"}, cli.ExitCommandError, "not a list"},
		{"BadYAML", "[1, 2", []string{"dedupe"}, cli.ExitCommandError, "decoding"},
		{"MissingFile", "", []string{"dedupe", "/does/not/exist.yaml"}, cli.ExitCommandError, "opening input"},
		{"CheckTypeFails", "[1, \"a\"]", []string{"check-type", "--type", "int"}, cli.ExitFailure, "not every element"},
		{"CheckTypeUnknown", "[1]", []string{"check-type", "--type", "complex"}, cli.ExitCommandError, "unknown type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.stdin, nil, tt.args...)
			require.Error(t, res.err)
			assert.Equal(t, tt.wantCode, cli.GetExitCode(res.err))
			assert.ErrorContains(t, res.err, tt.wantErr)
		})
	}
}

func TestCheckType_ReportsFirstMismatch(t *testing.T) {
	res := run(t, "[1, 2, x, 4]", nil, "check-type", "--type", "int", "-o", "json")
	require.Error(t, res.err)
	assert.JSONEq(t, `{"all": false, "first_mismatch": 2}`, res.stdout)
}
