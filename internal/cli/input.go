package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotList is returned when a document that must be a list is not one.
var ErrNotList = errors.New("document is not a list")

// readDocuments decodes every YAML document from each path in order.
// "-" or no paths at all reads stdin. JSON input works as a YAML subset.
func readDocuments(stdin io.Reader, paths []string) ([]any, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var docs []any
	for _, p := range paths {
		var (
			fileDocs []any
			err      error
		)
		if p == "-" {
			fileDocs, err = decodeAll(stdin, p)
		} else {
			fileDocs, err = readFile(p)
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, fileDocs...)
	}
	return docs, nil
}

// readFile decodes every document of the file at path and closes it.
func readFile(path string) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "opening input", err)
	}
	defer f.Close()
	return decodeAll(f, path)
}

// decodeAll decodes YAML documents from r until EOF; name labels errors.
func decodeAll(r io.Reader, name string) ([]any, error) {
	var docs []any
	dec := yaml.NewDecoder(r)
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("decoding %s", name), err)
		}
		docs = append(docs, doc)
	}
}

// readLists is readDocuments for commands that only accept lists.
// A null document counts as an empty list.
func readLists(stdin io.Reader, paths []string) ([][]any, error) {
	docs, err := readDocuments(stdin, paths)
	if err != nil {
		return nil, err
	}

	lists := make([][]any, len(docs))
	for i, d := range docs {
		switch v := d.(type) {
		case []any:
			lists[i] = v
		case nil:
			lists[i] = []any{}
		default:
			return nil, WrapExitError(ExitCommandError,
				fmt.Sprintf("document %d", i+1), fmt.Errorf("%w: got %T", ErrNotList, d))
		}
	}
	return lists, nil
}

// exactLists is readLists requiring exactly n documents.
func exactLists(stdin io.Reader, paths []string, n int) ([][]any, error) {
	lists, err := readLists(stdin, paths)
	if err != nil {
		return nil, err
	}
	if len(lists) != n {
		return nil, NewExitError(ExitCommandError,
			fmt.Sprintf("expected %d documents, got %d", n, len(lists)))
	}
	return lists, nil
}

// canonical keys a decoded value by its YAML encoding, which is stable for
// nested maps because yaml.v3 sorts map keys.
func canonical(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(b)
}

// sameValue reports whether two decoded values encode identically.
func sameValue(a, b any) bool {
	return canonical(a) == canonical(b)
}

// truthy mirrors the usual dynamic-language notion of a falsy value:
// null, false, zero numbers, and empty strings, lists and maps.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case int:
		return t != 0
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	case map[any]any:
		return len(t) > 0
	default:
		return true
	}
}

// field projects v onto key when v is a map; other values project to nil.
func field(key string) func(any) any {
	return func(v any) any {
		switch m := v.(type) {
		case map[string]any:
			return m[key]
		case map[any]any:
			return m[key]
		}
		return nil
	}
}
