package schema

import (
	"testing"

	"github.com/dshills/planbalance/internal/assessment"
)

func validResult() assessment.Result {
	harms := []assessment.Impact{{Title: "Green Belt", Impact: 9}}
	benefits := []assessment.Impact{{Title: "Housing delivery", Impact: 6}}
	r := assessment.Balance(harms, benefits, map[string]float64{"housing": 1.4})
	r.Tool = "planbalance"
	r.Version = "0.1.0"
	return r
}

func TestValidatePasses(t *testing.T) {
	r := validResult()
	if errs := Validate(&r); len(errs) > 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateMissingMetadata(t *testing.T) {
	r := validResult()
	r.Tool = ""
	r.Version = ""
	errs := Validate(&r)
	if !hasPath(errs, "tool") || !hasPath(errs, "version") {
		t.Errorf("expected tool and version errors, got %v", errs)
	}
}

func TestValidateScoreMismatch(t *testing.T) {
	r := validResult()
	r.Score += 7
	r.Tier = assessment.TierForScore(r.Score)
	if errs := Validate(&r); !hasPath(errs, "score") {
		t.Errorf("expected score error, got %v", errs)
	}
}

func TestValidateTierMismatch(t *testing.T) {
	r := validResult()
	if r.Tier == assessment.TierVeryHigh {
		r.Tier = assessment.TierLow
	} else {
		r.Tier = assessment.TierVeryHigh
	}
	if errs := Validate(&r); !hasPath(errs, "tier") {
		t.Errorf("expected tier error, got %v", errs)
	}
}

func TestValidateNegativeImpact(t *testing.T) {
	r := validResult()
	r.Harms[0].Impact = -3
	if errs := Validate(&r); !hasPath(errs, "harms[0].impact") {
		t.Errorf("expected impact error, got %v", errs)
	}
}

func TestValidateEmptyLists(t *testing.T) {
	r := validResult()
	r.Harms = nil
	errs := Validate(&r)
	if !hasPath(errs, "harms") {
		t.Errorf("expected harms error, got %v", errs)
	}
}

func TestValidateTopUnsorted(t *testing.T) {
	r := validResult()
	r.Harms = []assessment.Impact{{Title: "a", Impact: 1}, {Title: "b", Impact: 9}}
	r.TopHarms = []assessment.Impact{{Title: "a", Impact: 1}, {Title: "b", Impact: 9}}
	if errs := Validate(&r); !hasPath(errs, "top_harms") {
		t.Errorf("expected top_harms error, got %v", errs)
	}
}

func TestValidateTopTooLong(t *testing.T) {
	r := validResult()
	r.TopHarms = make([]assessment.Impact, 4)
	for i := range r.TopHarms {
		r.TopHarms[i] = assessment.Impact{Title: "x", Impact: 1}
	}
	if errs := Validate(&r); !hasPath(errs, "top_harms") {
		t.Errorf("expected top_harms error, got %v", errs)
	}
}

func TestValidateWeightOutOfRange(t *testing.T) {
	r := validResult()
	r.Weights = map[string]float64{"housing": 3.5}
	// The recompute also shifts, so just confirm the weight path is flagged.
	if errs := Validate(&r); !hasPath(errs, "weights.housing") {
		t.Errorf("expected weights.housing error, got %v", errs)
	}
}

func hasPath(errs []ValidationError, path string) bool {
	for _, e := range errs {
		if e.Path == path {
			return true
		}
	}
	return false
}
