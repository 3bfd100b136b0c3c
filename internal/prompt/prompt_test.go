package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestAsk(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New(strings.NewReader("  answer  \n\n"), &out)

	if got := p.Ask("Name", "fallback"); got != "answer" {
		t.Errorf("Ask = %q, want answer", got)
	}
	if got := p.Ask("Name", "fallback"); got != "fallback" {
		t.Errorf("empty answer should take the default, got %q", got)
	}
	// EOF also falls back to the default.
	if got := p.Ask("Name", "fallback"); got != "fallback" {
		t.Errorf("Ask at EOF = %q", got)
	}
	if !strings.Contains(out.String(), "[fallback]") {
		t.Errorf("prompt missing default hint: %q", out.String())
	}
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"no\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"maybe\n", true, true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		p := New(strings.NewReader(tt.in), &out)
		if got := p.Confirm("Sure?", tt.def); got != tt.want {
			t.Errorf("Confirm(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
