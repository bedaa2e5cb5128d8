package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(s *Settings) {},
			wantErr: "",
		},
		{
			name:    "marker column below one",
			mutate:  func(s *Settings) { s.Locator.MarkerColumn = 0 },
			wantErr: "marker column",
		},
		{
			name:    "missing section anchor",
			mutate:  func(s *Settings) { s.Locator.SectionAnchor = "" },
			wantErr: "section anchor",
		},
		{
			name:    "missing header anchor",
			mutate:  func(s *Settings) { s.Locator.HeaderAnchor = "" },
			wantErr: "header anchor",
		},
		{
			name:    "missing sheet prefix",
			mutate:  func(s *Settings) { s.SheetPrefix = "" },
			wantErr: "sheet prefix",
		},
		{
			name:    "missing DNC token",
			mutate:  func(s *Settings) { s.DNCToken = "" },
			wantErr: "DNC token",
		},
		{
			name:    "bad flagged color",
			mutate:  func(s *Settings) { s.TabColors.Flagged = "FF00" },
			wantErr: "RRGGBB",
		},
		{
			name:    "bad clean color",
			mutate:  func(s *Settings) { s.TabColors.Clean = "green" },
			wantErr: "RRGGBB",
		},
		{
			name:    "s3 prefix without bucket",
			mutate:  func(s *Settings) { s.S3.Prefix = "reports" },
			wantErr: "bucket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSettings()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Errorf("Validate() = nil, want error containing %q", tt.wantErr)
			} else if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
