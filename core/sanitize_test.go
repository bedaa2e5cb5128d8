package core

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice Smith", "Alice Smith"},
		{`Ops/IT: "North" <region>`, "Ops_IT_ _North_ _region_"},
		{"line\r\nbreak", "line_break"},
		{"  padded  ", "padded"},
		{`a\b|c?d*e`, "a_b_c_d_e"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
