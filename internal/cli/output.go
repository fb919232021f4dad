package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"seqkit/internal/config"
	"seqkit/sliceutil"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation refused its input (shrinking stretch, empty pairs, failed check)
	ExitCommandError = 2 // Command error (unreadable input, wrong document count, bad flags)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Encoder writes result documents in the configured format.
// YAML documents share one stream and are separated by "---";
// JSON documents are written one per line.
type Encoder struct {
	w    io.Writer
	yenc *yaml.Encoder
}

// NewEncoder returns an Encoder for format writing to w.
func NewEncoder(format string, w io.Writer) *Encoder {
	e := &Encoder{w: w}
	if format != config.OutputJSON {
		e.yenc = yaml.NewEncoder(w)
		e.yenc.SetIndent(2)
	}
	return e
}

// Encode writes one document.
func (e *Encoder) Encode(v any) error {
	if e.yenc != nil {
		return e.yenc.Encode(v)
	}
	return json.NewEncoder(e.w).Encode(jsonSafe(v))
}

// Close flushes any buffered YAML output.
func (e *Encoder) Close() error {
	if e.yenc != nil {
		return e.yenc.Close()
	}
	return nil
}

// jsonSafe converts map[any]any, which encoding/json rejects, into
// map[string]any. yaml.v3 produces such maps for non-string keys.
func jsonSafe(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = jsonSafe(val)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = jsonSafe(val)
		}
		return m
	case []any:
		return sliceutil.Map(t, jsonSafe)
	default:
		return v
	}
}
