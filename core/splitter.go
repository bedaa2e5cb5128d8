package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lblanes25/datasplitter/config"
)

// SheetTable is the analyzed detail table of one sheet: located region,
// resolved columns and materialized rows. It is computed once per workbook
// and reused for every leader; re-locating per leader would be both wasteful
// and a correctness hazard if the two scans ever disagreed.
type SheetTable struct {
	Name    string
	Region  TableRegion
	Columns ColumnMap
	Rows    []Row // original sheet order
	Sorted  []Row // OrderRows(Rows), the layout of the pre-sorted intermediate
}

// Analysis is the one-time structural scan of a workbook.
type Analysis struct {
	Tables  []SheetTable
	Leaders []string // sorted distinct leader values across all tables
}

// Summary reports the outcome of a split run. Partial success is the
// expected shape: failed leaders are logged and skipped, not fatal.
type Summary struct {
	Attempted int
	Succeeded int
	Outputs   map[string]string // leader -> generated file path
}

// Splitter splits an audit workbook into per-leader copies.
type Splitter struct {
	settings *config.Settings
	logger   *slog.Logger
	open     func(path string) (ExcelFile, error)
}

// NewSplitter creates a Splitter. A nil logger falls back to slog.Default.
func NewSplitter(settings *config.Settings, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Splitter{
		settings: settings,
		logger:   logger,
		open:     openExcelFile,
	}
}

// Split produces one workbook per distinct audit leader found in srcPath's
// detail sheets, written to outDir (the source's directory when empty).
// A missing source file is the only fatal error; everything sheet- or
// leader-scoped is reported and skipped.
func (s *Splitter) Split(srcPath, outDir string) (*Summary, error) {
	if _, err := os.Stat(srcPath); err != nil {
		return nil, fmt.Errorf("source workbook: %w", err)
	}
	if outDir == "" {
		outDir = filepath.Dir(srcPath)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	analysis, err := s.analyzeWorkbook(srcPath)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Outputs: make(map[string]string)}
	if len(analysis.Tables) == 0 {
		s.logger.Warn("nothing to split", "source", srcPath, "error", ErrNoDetailSheets)
		return summary, nil
	}
	if len(analysis.Leaders) == 0 {
		s.logger.Warn("nothing to split", "source", srcPath, "error", ErrNoLeaders)
		return summary, nil
	}

	ext := filepath.Ext(srcPath)
	stem := strings.TrimSuffix(filepath.Base(srcPath), ext)

	basePath := srcPath
	presorted := s.settings.UsePresort()
	if presorted {
		intermediate := filepath.Join(filepath.Dir(srcPath), stem+"_sorted_dnc"+ext)
		if err := s.buildPresorted(srcPath, intermediate, analysis); err != nil {
			return nil, fmt.Errorf("failed to build pre-sorted copy: %w", err)
		}
		defer func() {
			if err := os.Remove(intermediate); err != nil {
				s.logger.Warn("could not remove pre-sorted copy", "path", intermediate, "error", err)
			}
		}()
		basePath = intermediate
	}

	for _, leader := range analysis.Leaders {
		summary.Attempted++
		outPath := filepath.Join(outDir, fmt.Sprintf("%s - %s%s", stem, SanitizeFilename(leader), ext))

		if err := s.buildLeaderWorkbook(basePath, outPath, leader, analysis, presorted); err != nil {
			s.logger.Error("failed to build workbook for leader", "leader", leader, "error", err)
			if removeErr := os.Remove(outPath); removeErr != nil && !os.IsNotExist(removeErr) {
				s.logger.Warn("could not remove partial output", "path", outPath, "error", removeErr)
			}
			continue
		}

		summary.Succeeded++
		summary.Outputs[leader] = outPath
		s.logger.Info("generated workbook", "leader", leader, "path", outPath)
	}

	s.logger.Info("split complete", "succeeded", summary.Succeeded, "attempted", summary.Attempted)
	return summary, nil
}

// analyzeWorkbook locates and extracts every detail table once.
func (s *Splitter) analyzeWorkbook(srcPath string) (a *Analysis, err error) {
	f, err := s.open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func(f ExcelFile) {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}(f)

	analysis := &Analysis{}
	leaderSet := make(map[string]struct{})

	for _, sheet := range f.GetSheetList() {
		if !s.isDetailSheet(sheet) {
			continue
		}

		grid, err := newSheetGrid(f, sheet)
		if err != nil {
			s.logger.Warn("could not read sheet, skipping", "sheet", sheet, "error", err)
			continue
		}

		region, err := FindTableRegion(grid, s.settings.Locator)
		if err != nil {
			s.logger.Warn("skipping sheet", "sheet", sheet, "error", &SheetError{SheetName: sheet, Err: err})
			continue
		}

		columns := BuildColumnMap(grid, region, s.settings.Locator.HeaderAnchor)
		if columns.LeaderCol == 0 {
			s.logger.Warn("skipping sheet", "sheet", sheet,
				"error", &SheetError{SheetName: sheet, Err: ErrLeaderColumnNotFound})
			continue
		}
		if columns.ResultCol == 0 {
			s.logger.Warn("result column not found, non-conformance flagging disabled", "sheet", sheet)
		}

		rows, err := ExtractRows(f, sheet, region, columns, s.settings.DNCToken)
		if err != nil {
			s.logger.Warn("could not extract rows, skipping", "sheet", sheet, "error", err)
			continue
		}

		for _, leader := range DistinctLeaders(rows) {
			leaderSet[leader] = struct{}{}
		}

		analysis.Tables = append(analysis.Tables, SheetTable{
			Name:    sheet,
			Region:  region,
			Columns: columns,
			Rows:    rows,
			Sorted:  OrderRows(rows),
		})
		s.logger.Info("located detail table", "sheet", sheet,
			"headerRow", region.HeaderRow, "dataStart", region.DataStart,
			"dataEnd", region.DataEnd, "maxCol", region.MaxCol)
	}

	for leader := range leaderSet {
		analysis.Leaders = append(analysis.Leaders, leader)
	}
	sort.Strings(analysis.Leaders)

	s.logger.Info("analyzed workbook",
		"detailSheets", len(analysis.Tables), "leaders", len(analysis.Leaders))
	return analysis, nil
}

func (s *Splitter) isDetailSheet(name string) bool {
	return strings.HasPrefix(strings.ToUpper(name), strings.ToUpper(s.settings.SheetPrefix))
}

// buildPresorted writes a copy of the source whose detail tables are sorted
// by (leader, non-conformance first). Every leader's rows then form one
// contiguous run, so per-leader filtering reduces to bulk row deletion.
func (s *Splitter) buildPresorted(srcPath, dstPath string, analysis *Analysis) (err error) {
	if err := copyFile(srcPath, dstPath); err != nil {
		return err
	}

	f, err := s.open(dstPath)
	if err != nil {
		return fmt.Errorf("failed to open pre-sorted copy: %w", err)
	}
	defer func(f ExcelFile) {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close pre-sorted copy: %w", closeErr)
		}
	}(f)

	for _, table := range analysis.Tables {
		if table.Region.RowCount() == 0 {
			continue
		}
		if err := WriteRows(f, table.Name, table.Region, table.Sorted); err != nil {
			return fmt.Errorf("sorting sheet %s: %w", table.Name, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save pre-sorted copy: %w", err)
	}
	return nil
}

// buildLeaderWorkbook copies basePath to outPath and reduces every detail
// table to the given leader's rows. With a pre-sorted base the reduction is
// bulk deletion outside the leader's run; otherwise the table is filtered,
// sorted and rewritten in place.
func (s *Splitter) buildLeaderWorkbook(basePath, outPath, leader string, analysis *Analysis, presorted bool) (err error) {
	if err := copyFile(basePath, outPath); err != nil {
		return err
	}

	f, err := s.open(outPath)
	if err != nil {
		return fmt.Errorf("failed to open output copy: %w", err)
	}
	defer func(f ExcelFile) {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", closeErr)
		}
	}(f)

	for _, table := range analysis.Tables {
		var kept []Row
		if presorted {
			indices, usedFallback := MatchLeader(table.Sorted, leader)
			if usedFallback {
				s.logger.Warn("no exact leader match, recovered by substring containment",
					"sheet", table.Name, "leader", leader, "rows", len(indices))
			}
			if err := DeleteRowsOutside(f, table.Name, table.Region, indices); err != nil {
				return fmt.Errorf("filtering sheet %s: %w", table.Name, err)
			}
			for _, i := range indices {
				kept = append(kept, table.Sorted[i])
			}
		} else {
			var usedFallback bool
			kept, usedFallback = FilterForLeader(table.Rows, leader)
			if usedFallback {
				s.logger.Warn("no exact leader match, recovered by substring containment",
					"sheet", table.Name, "leader", leader, "rows", len(kept))
			}
			if err := WriteRows(f, table.Name, table.Region, kept); err != nil {
				return fmt.Errorf("filtering sheet %s: %w", table.Name, err)
			}
		}

		if table.Columns.ResultCol > 0 {
			color := s.settings.TabColors.Clean
			if HasDNC(kept) {
				color = s.settings.TabColors.Flagged
			}
			if err := f.SetTabColor(table.Name, color); err != nil {
				return fmt.Errorf("coloring sheet %s: %w", table.Name, err)
			}
		}
	}

	for _, sheet := range f.GetSheetList() {
		FinalizePresentation(f, sheet, s.logger)
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save output: %w", err)
	}
	return nil
}

// copyFile duplicates a file on disk. Outputs start life as a full copy of
// the source (or of the pre-sorted intermediate) so pass-through sheets and
// all formatting survive untouched.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
