package tui

import "testing"

func TestDarkBackgroundFromColorFGBG(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		wantDark bool
		wantOK   bool
	}{
		{in: "15;0", wantDark: true, wantOK: true},
		{in: "0;15", wantDark: false, wantOK: true},
		{in: "15;default;0", wantDark: true, wantOK: true},
		{in: "7", wantDark: false, wantOK: true},
		{in: "", wantOK: false},
		{in: "15;x", wantOK: false},
	}
	for _, tt := range tests {
		dark, ok := darkBackgroundFromColorFGBG(tt.in)
		if ok != tt.wantOK || (ok && dark != tt.wantDark) {
			t.Fatalf("%q: got (%v, %v) want (%v, %v)", tt.in, dark, ok, tt.wantDark, tt.wantOK)
		}
	}
}

func TestMarkdownStyleConfig_DropsDocumentMargin(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"light", "dark"} {
		cfg := markdownStyleConfig(name)
		if cfg.Document.Margin == nil || *cfg.Document.Margin != 0 {
			t.Fatalf("%s: expected zero document margin", name)
		}
	}
}

func TestRenderMarkdown_HelpContent(t *testing.T) {
	t.Parallel()

	if got := renderMarkdown("   ", 40); got != "" {
		t.Fatalf("blank markdown should render empty, got %q", got)
	}
	out := renderMarkdown(helpMarkdown, 60)
	if out == "" {
		t.Fatalf("expected rendered help")
	}
}
