package cli

import "testing"

func TestFormatMillions(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{18202, "$18.2B"},
		{1000, "$1.0B"},
		{999, "$999M"},
		{530, "$530M"},
		{0, "$0M"},
		{-403, "-$403M"},
		{-10005, "-$10.0B"},
	}
	for _, tt := range tests {
		if got := FormatMillions(tt.in); got != tt.want {
			t.Errorf("FormatMillions(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDeltaMillions(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{530, "+$530M"},
		{1877, "+$1.9B"},
		{-403, "-$403M"},
		{0, "+$0M"},
	}
	for _, tt := range tests {
		if got := FormatDeltaMillions(tt.in); got != tt.want {
			t.Errorf("FormatDeltaMillions(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatInterval(t *testing.T) {
	if got := FormatInterval(17000, 19000, false); got != "$17.0B – $19.0B" {
		t.Errorf("FormatInterval = %q", got)
	}
	if got := FormatInterval(0, 0, true); got != "—" {
		t.Errorf("degenerate FormatInterval = %q, want em-dash", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.115); got != "11.5%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatSignedPercent(0.115); got != "+11.5%" {
		t.Errorf("FormatSignedPercent = %q", got)
	}
	if got := FormatSignedPercent(-0.042); got != "-4.2%" {
		t.Errorf("FormatSignedPercent = %q", got)
	}
}

func TestFormatR2(t *testing.T) {
	if got := FormatR2(1.0); got != "1.000" {
		t.Errorf("FormatR2(1) = %q", got)
	}
	if got := FormatR2(0.987654); got != "0.988" {
		t.Errorf("FormatR2 = %q", got)
	}
	if got := FormatR2(-1e-15); got != "0.000" {
		t.Errorf("FormatR2(-0) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45417, "-45,417"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Errorf("empty sparkline = %q", got)
	}

	flat := Sparkline([]float64{5, 5, 5})
	if len([]rune(flat)) != 3 {
		t.Errorf("flat sparkline rune count = %d, want 3", len([]rune(flat)))
	}

	rising := []rune(Sparkline([]float64{13200, 13000, 13800, 15100, 16325, 18202}))
	if rising[len(rising)-1] != '█' {
		t.Errorf("max value should render the tallest block, got %q", rising[len(rising)-1])
	}
	if rising[1] != '▁' {
		t.Errorf("min value should render the shortest block, got %q", rising[1])
	}
}
