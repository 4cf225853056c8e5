package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Texter is implemented by payloads that have a plain-text rendering.
type Texter interface {
	Text() string
}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - text
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "text":
		return WriteText(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteText writes v.Text() when available, otherwise v's default formatting.
func WriteText(w io.Writer, v any) error {
	if t, ok := v.(Texter); ok {
		_, err := fmt.Fprintln(w, t.Text())
		return err
	}
	_, err := fmt.Fprintln(w, v)
	return err
}
