package risk

import (
	"context"
	"hash/fnv"

	"github.com/coopcredit/coopcredit/internal/domain"
	"github.com/shopspring/decimal"
)

// FallbackScorer is the deterministic offline scorer: a pure function of the
// document string, so the same document always maps to the same score, level,
// and detail - in tests, in production, and during bureau outages alike.
//
// The FNV-1a hash is split into buckets of roughly 20% HIGH, 30% MEDIUM and
// 50% LOW, each mapped onto the exact score range of its level.
type FallbackScorer struct{}

func NewFallbackScorer() *FallbackScorer {
	return &FallbackScorer{}
}

func (f *FallbackScorer) Score(_ context.Context, document string, _ decimal.Decimal, _ int) (*domain.RiskEvaluation, error) {
	score, detail := fallbackScore(document)
	return evaluationFor(score, detail)
}

func fallbackScore(document string) (int, string) {
	h := fnv.New32a()
	h.Write([]byte(document))
	sum := h.Sum32()

	switch {
	case sum%10 < 2: // 20% HIGH: 300-500
		return 300 + int(sum%201), "High credit risk detected in central database simulation."
	case sum%10 < 5: // 30% MEDIUM: 501-700
		return 501 + int(sum%200), "Medium credit risk history."
	default: // 50% LOW: 701-950
		return 701 + int(sum%250), "Excellent credit history (simulated)."
	}
}
