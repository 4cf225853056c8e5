package format

import (
	"bytes"
	"strings"
	"testing"
)

type textPayload struct {
	N int `json:"n"`
}

func (p textPayload) Text() string { return "n is set" }

func TestWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		pretty bool
		want   string
	}{
		{name: "json default", format: "", want: "{\"n\":1}\n"},
		{name: "json pretty", format: "json", pretty: true, want: "{\n  \"n\": 1\n}\n"},
		{name: "text", format: "text", want: "n is set\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := Write(&buf, textPayload{N: 1}, tt.format, tt.pretty); err != nil {
				t.Fatalf("Write: %v", err)
			}
			if buf.String() != tt.want {
				t.Fatalf("got %q want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(&bytes.Buffer{}, 1, "edn", false)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}

func TestWriteText_FallsBackToDefaultFormatting(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteText(&buf, 42); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if buf.String() != "42\n" {
		t.Fatalf("got %q", buf.String())
	}
}
