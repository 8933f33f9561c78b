// internal/discovery/ranker.go
package discovery

import "sort"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Rank sorts scored candidates by final score descending, breaking
// ties by ascending distance (unknown distances after known ones) and
// finally by candidate id, then truncates to limit. The comparison is
// a strict total order, so ranking is deterministic for a fixed set
// of scores.
func Rank(cands []*ScoredCandidate, limit int) []*ScoredCandidate {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	sort.Slice(cands, func(i, j int) bool {
		return rankLess(cands[i], cands[j])
	})

	if len(cands) > limit {
		cands = cands[:limit]
	}
	return cands
}

func rankLess(a, b *ScoredCandidate) bool {
	if a.FinalScore != b.FinalScore {
		return a.FinalScore > b.FinalScore
	}
	switch {
	case a.DistanceKm != nil && b.DistanceKm != nil:
		if *a.DistanceKm != *b.DistanceKm {
			return *a.DistanceKm < *b.DistanceKm
		}
	case a.DistanceKm != nil:
		return true
	case b.DistanceKm != nil:
		return false
	}
	return a.UserID < b.UserID
}
