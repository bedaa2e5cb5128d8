package core

import (
	"sort"
	"strings"
)

// The partition engine is pure over []Row. Two strategies share it: filtering
// an unsorted region down to one leader's rows, and sorting a whole region
// once so each leader occupies a contiguous run that can be cut out by bulk
// row deletion. Both must yield identical row sets in identical order.

// OrderRows returns rows stably sorted by (leader, non-conformance first).
// Rows with equal leader and flag keep their original relative order; callers
// rely on deterministic output for identical inputs.
func OrderRows(rows []Row) []Row {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Leader != sorted[j].Leader {
			return sorted[i].Leader < sorted[j].Leader
		}
		return sorted[i].DNC && !sorted[j].DNC
	})
	return sorted
}

// FilterForLeader keeps the rows belonging to one leader, non-conforming rows
// first. Matching is exact on the trimmed leader value; when no row matches
// exactly it falls back to case-insensitive substring containment. The
// fallback is a deliberate recovery for inconsistently keyed rows, and the
// second return value tells the caller to report it.
func FilterForLeader(rows []Row, leader string) ([]Row, bool) {
	indices, usedFallback := MatchLeader(rows, leader)
	kept := make([]Row, 0, len(indices))
	for _, i := range indices {
		kept = append(kept, rows[i])
	}
	return OrderRows(kept), usedFallback
}

// MatchLeader returns the indices (ascending) of rows belonging to leader,
// and whether the substring fallback was needed. An exact match on the
// trimmed leader value is tried first; if it yields nothing, a row matches
// when its leader value contains the target, ignoring case.
func MatchLeader(rows []Row, leader string) ([]int, bool) {
	var indices []int
	for i, row := range rows {
		if row.Leader == leader {
			indices = append(indices, i)
		}
	}
	if len(indices) > 0 {
		return indices, false
	}

	needle := strings.ToLower(leader)
	for i, row := range rows {
		if strings.Contains(strings.ToLower(row.Leader), needle) {
			indices = append(indices, i)
		}
	}
	return indices, len(indices) > 0
}

// HasDNC reports whether any row is non-conforming.
func HasDNC(rows []Row) bool {
	for _, row := range rows {
		if row.DNC {
			return true
		}
	}
	return false
}

// DistinctLeaders returns the sorted set of distinct, non-empty leader values.
func DistinctLeaders(rows []Row) []string {
	seen := make(map[string]struct{})
	var leaders []string
	for _, row := range rows {
		if row.Leader == "" {
			continue
		}
		if _, ok := seen[row.Leader]; !ok {
			seen[row.Leader] = struct{}{}
			leaders = append(leaders, row.Leader)
		}
	}
	sort.Strings(leaders)
	return leaders
}
