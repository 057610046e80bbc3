package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRendererSeverityLines(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	r := NewRenderer(out, errOut, ModeText)

	r.Success("trained")
	r.Warning("using default location")
	r.Error("path does not exist")

	if !strings.Contains(out.String(), "trained") {
		t.Errorf("stdout should contain success text, got: %s", out.String())
	}
	if !strings.Contains(out.String(), "using default location") {
		t.Errorf("stdout should contain warning text, got: %s", out.String())
	}
	if !strings.Contains(errOut.String(), "path does not exist") {
		t.Errorf("stderr should contain error text, got: %s", errOut.String())
	}
	if strings.Contains(out.String(), "path does not exist") {
		t.Error("error text must go to stderr, not stdout")
	}
}

func TestRendererEffectiveMode(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{"explicit text", ModeText, ModeText},
		{"explicit json", ModeJSON, ModeJSON},
		{"explicit markdown", ModeMarkdown, ModeMarkdown},
		{"auto on a buffer resolves to markdown", ModeAuto, ModeMarkdown},
		{"empty mode defaults to auto", "", ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), tt.mode)
			if got := r.EffectiveMode(); got != tt.want {
				t.Errorf("EffectiveMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRendererNonTTYOutputIsPlain(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, new(bytes.Buffer), ModeAuto)

	r.Success("done")

	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("non-TTY output must not contain escape codes, got: %q", out.String())
	}
}

func TestRendererHeader(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, new(bytes.Buffer), ModeMarkdown)

	r.Header(1, "Report")
	r.Header(2, "Details")

	got := out.String()
	if !strings.Contains(got, "# Report") {
		t.Errorf("markdown header level 1 missing, got: %s", got)
	}
	if !strings.Contains(got, "## Details") {
		t.Errorf("markdown header level 2 missing, got: %s", got)
	}
}

func TestRendererStatusLine(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, new(bytes.Buffer), ModeText)

	r.StatusLine("config", "success", "config.yml")
	r.StatusLine("model", "error", "")
	r.StatusLine("stories", "warn", "none found")

	got := out.String()
	for _, want := range []string{"config", "config.yml", "model", "stories", "none found"} {
		if !strings.Contains(got, want) {
			t.Errorf("status output should contain %q, got: %s", want, got)
		}
	}
}

func TestRendererJSON(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewRenderer(out, new(bytes.Buffer), ModeJSON)

	if err := r.JSON(map[string]int{"models": 3}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["models"] != 3 {
		t.Errorf("decoded models = %d, want 3", decoded["models"])
	}
}
