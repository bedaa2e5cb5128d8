package config

import (
	"fmt"
	"regexp"
)

var rgbPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Validate checks a Settings for internal consistency. It assumes defaults
// have already been applied.
func Validate(s *Settings) error {
	if err := validateLocator(&s.Locator); err != nil {
		return err
	}
	if err := validateTabColors(&s.TabColors); err != nil {
		return err
	}
	if s.SheetPrefix == "" {
		return fmt.Errorf("sheet prefix is required")
	}
	if s.DNCToken == "" {
		return fmt.Errorf("DNC token is required")
	}
	if s.S3.Prefix != "" && s.S3.Bucket == "" {
		return fmt.Errorf("s3 prefix set but bucket is empty")
	}
	return nil
}

func validateLocator(l *LocatorSettings) error {
	if l.MarkerColumn < 1 {
		return fmt.Errorf("locator marker column must be >= 1, got %d", l.MarkerColumn)
	}
	if l.SectionAnchor == "" {
		return fmt.Errorf("locator section anchor is required")
	}
	if l.HeaderAnchor == "" {
		return fmt.Errorf("locator header anchor is required")
	}
	return nil
}

func validateTabColors(t *TabColorSettings) error {
	if !rgbPattern.MatchString(t.Flagged) {
		return fmt.Errorf("flagged tab color '%s' is not an RRGGBB value", t.Flagged)
	}
	if !rgbPattern.MatchString(t.Clean) {
		return fmt.Errorf("clean tab color '%s' is not an RRGGBB value", t.Clean)
	}
	return nil
}
