package usecase

import "github.com/catalogwatch/backend/internal/domain"

// DeduplicateRecords collapses records sharing a canonical key, keeping the
// first occurrence and preserving the original relative order. The same
// product legitimately shows up under multiple pagination conventions; the
// page-processing order decides which copy wins, never whether it is kept.
func DeduplicateRecords(records []domain.CandidateRecord) []domain.CandidateRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]domain.CandidateRecord, 0, len(records))
	for _, rec := range records {
		key := rec.CanonicalKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}
	return out
}
