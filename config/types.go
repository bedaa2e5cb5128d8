package config

// LocatorSettings controls where the detail table anchors are scanned for
// inside a sheet.
type LocatorSettings struct {
	MarkerColumn  int    `json:"markerColumn,omitempty" yaml:"markerColumn,omitempty"`   // 1-based, default column B
	SectionAnchor string `json:"sectionAnchor,omitempty" yaml:"sectionAnchor,omitempty"` // e.g. "Detailed Results"
	HeaderAnchor  string `json:"headerAnchor,omitempty" yaml:"headerAnchor,omitempty"`   // e.g. "Audit Leader"
}

// TabColorSettings holds the tab colors applied to detail sheets after
// filtering.
type TabColorSettings struct {
	Flagged string `json:"flagged,omitempty" yaml:"flagged,omitempty"` // RRGGBB, any non-conforming row present
	Clean   string `json:"clean,omitempty" yaml:"clean,omitempty"`     // RRGGBB, no non-conforming rows
}

// S3Settings is the optional upload target for generated workbooks.
type S3Settings struct {
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// Settings is the full configuration for a split run.
type Settings struct {
	Input       string `json:"input,omitempty" yaml:"input,omitempty"`
	OutputDir   string `json:"outputDir,omitempty" yaml:"outputDir,omitempty"`
	SheetPrefix string `json:"sheetPrefix,omitempty" yaml:"sheetPrefix,omitempty"` // detail sheet name prefix, matched case-insensitively
	DNCToken    string `json:"dncToken,omitempty" yaml:"dncToken,omitempty"`       // substring marking a non-conforming result

	// Presort selects the pre-sorted intermediate strategy: the workbook is
	// sorted once by (leader, non-conformance) and each output is produced by
	// bulk range deletion. When false, every output is filtered and sorted
	// independently from the original. Both yield identical results.
	Presort *bool `json:"presort,omitempty" yaml:"presort,omitempty"`

	Locator   LocatorSettings  `json:"locator,omitempty" yaml:"locator,omitempty"`
	TabColors TabColorSettings `json:"tabColors,omitempty" yaml:"tabColors,omitempty"`
	S3        S3Settings       `json:"s3,omitempty" yaml:"s3,omitempty"`
}

const (
	DefaultMarkerColumn  = 2
	DefaultSectionAnchor = "Detailed Results"
	DefaultHeaderAnchor  = "Audit Leader"
	DefaultSheetPrefix   = "QA-ID-"
	DefaultDNCToken      = "DNC"
	DefaultFlaggedColor  = "FF0000"
	DefaultCleanColor    = "00FF00"
)

// ApplyDefaults fills every unset field with its default value.
func (s *Settings) ApplyDefaults() {
	if s.Locator.MarkerColumn == 0 {
		s.Locator.MarkerColumn = DefaultMarkerColumn
	}
	if s.Locator.SectionAnchor == "" {
		s.Locator.SectionAnchor = DefaultSectionAnchor
	}
	if s.Locator.HeaderAnchor == "" {
		s.Locator.HeaderAnchor = DefaultHeaderAnchor
	}
	if s.SheetPrefix == "" {
		s.SheetPrefix = DefaultSheetPrefix
	}
	if s.DNCToken == "" {
		s.DNCToken = DefaultDNCToken
	}
	if s.TabColors.Flagged == "" {
		s.TabColors.Flagged = DefaultFlaggedColor
	}
	if s.TabColors.Clean == "" {
		s.TabColors.Clean = DefaultCleanColor
	}
	if s.Presort == nil {
		presort := true
		s.Presort = &presort
	}
}

// UsePresort reports whether the pre-sorted intermediate strategy is enabled.
func (s *Settings) UsePresort() bool {
	return s.Presort == nil || *s.Presort
}
