package calendar

import (
	"strings"
	"testing"
)

func TestNewRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	if _, err := New("lunar"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	for _, mode := range []string{"gregorian", "jalali"} {
		if _, err := New(mode); err != nil {
			t.Errorf("New(%q) failed: %v", mode, err)
		}
	}
}

func TestGregorianCanonical(t *testing.T) {
	t.Parallel()
	cal, _ := New("gregorian")

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-01-01", "2024-01-01", false},
		{"2024/1/5", "2024-01-05", false},
		{" 2024-12-31 ", "2024-12-31", false},
		{"2024-02-29", "2024-02-29", false}, // leap year
		{"2023-02-29", "", true},
		{"2024-13-01", "", true},
		{"2024-01", "", true},
		{"someday", "", true},
	}

	for _, tt := range tests {
		got, err := cal.Canonical(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Canonical(%q) = %q, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Canonical(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJalaliCanonical(t *testing.T) {
	t.Parallel()
	cal, _ := New("jalali")

	valid := []string{"1402-01-31", "1402/07/30", "1402-12-29"}
	for _, in := range valid {
		if _, err := cal.Canonical(in); err != nil {
			t.Errorf("Canonical(%q) failed: %v", in, err)
		}
	}

	invalid := []string{
		"1402-13-01", // no 13th month
		"1402-07-31", // Mehr has 30 days
		"1402-12-30", // 1402 is not a leap year
		"1402-00-10",
	}
	for _, in := range invalid {
		if _, err := cal.Canonical(in); err == nil {
			t.Errorf("Canonical(%q) should fail", in)
		}
	}
}

func TestToday(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"gregorian", "jalali"} {
		cal, _ := New(mode)
		today := cal.Today()
		if _, err := cal.Canonical(today); err != nil {
			t.Errorf("%s Today() = %q does not validate: %v", mode, today, err)
		}
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()
	cal, _ := New("gregorian")

	if got := cal.Display("2024-01-05"); got != "2024/01/05" {
		t.Errorf("Display = %q", got)
	}
	// Unparsable values pass through untouched
	if got := cal.Display("???"); got != "???" {
		t.Errorf("Display of junk = %q", got)
	}
	if !strings.Contains(cal.Display("2024-06-07"), "/") {
		t.Error("Display should use slash separators")
	}
}
