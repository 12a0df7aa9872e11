package usecase

import (
	"testing"

	"github.com/catalogwatch/backend/internal/domain"
)

func TestDeduplicateRecords(t *testing.T) {
	price := func(v int64) *int64 { return &v }

	first := domain.CandidateRecord{Name: "Vivo Y100", SalePrice: price(5000000)}
	duplicate := domain.CandidateRecord{Name: "vivo y100", SalePrice: price(4000000)}
	other := domain.CandidateRecord{Name: "Vivo V30"}
	variant := domain.CandidateRecord{Name: "Vivo Y100", Variant: "12/512"}

	out := DeduplicateRecords([]domain.CandidateRecord{first, other, duplicate, variant})

	if len(out) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out))
	}
	// First occurrence wins: the duplicate's price must not replace the
	// first-seen value.
	if out[0].SalePrice == nil || *out[0].SalePrice != 5000000 {
		t.Errorf("first-seen record must be kept, got %+v", out[0])
	}
	// Relative order is preserved.
	if out[1].Name != "Vivo V30" || out[2].Variant != "12/512" {
		t.Errorf("order not preserved: %+v", out)
	}
}

func TestDeduplicateRecords_VariantDistinguishes(t *testing.T) {
	a := domain.CandidateRecord{Name: "Vivo Y100", Variant: "8/256"}
	b := domain.CandidateRecord{Name: "Vivo Y100", Variant: "12/512"}

	out := DeduplicateRecords([]domain.CandidateRecord{a, b})
	if len(out) != 2 {
		t.Fatalf("different variants are different products, got %d records", len(out))
	}
}
