// Package schema validates assessment output against the planbalance schema.
package schema

import (
	"fmt"
	"math"

	"github.com/dshills/planbalance/internal/assessment"
	"github.com/dshills/planbalance/internal/policy"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Result for structural validity and internal
// consistency.
func Validate(r *assessment.Result) []ValidationError {
	var errs []ValidationError

	if r.Tool == "" {
		errs = append(errs, ValidationError{"tool", "required"})
	}
	if r.Version == "" {
		errs = append(errs, ValidationError{"version", "required"})
	}
	if !r.Tier.Valid() {
		errs = append(errs, ValidationError{"tier", fmt.Sprintf("invalid tier: %q", r.Tier)})
	}

	if r.Score < 0 || r.Score > 100 {
		errs = append(errs, ValidationError{"score", fmt.Sprintf("score %d out of range [0,100]", r.Score)})
	}
	if r.Tier.Valid() && assessment.TierForScore(r.Score) != r.Tier {
		errs = append(errs, ValidationError{"tier", fmt.Sprintf("tier %s does not match score %d", r.Tier, r.Score)})
	}

	// Verify score consistency against a recompute from the same inputs
	expected := assessment.Balance(r.Harms, r.Benefits, r.Weights)
	if expected.Score != r.Score {
		errs = append(errs, ValidationError{"score", fmt.Sprintf("score %d does not match computed %d", r.Score, expected.Score)})
	}

	errs = append(errs, validateImpacts("harms", r.Harms)...)
	errs = append(errs, validateImpacts("benefits", r.Benefits)...)
	errs = append(errs, validateTop("top_harms", r.TopHarms, len(r.Harms))...)
	errs = append(errs, validateTop("top_benefits", r.TopBenefits, len(r.Benefits))...)

	for topic, w := range r.Weights {
		if w < policy.MinWeight || w > policy.MaxWeight {
			errs = append(errs, ValidationError{
				Path:    "weights." + topic,
				Message: fmt.Sprintf("weight %.2f out of range [%.1f,%.1f]", w, policy.MinWeight, policy.MaxWeight),
			})
		}
	}

	return errs
}

func validateImpacts(path string, items []assessment.Impact) []ValidationError {
	var errs []ValidationError
	if len(items) == 0 {
		errs = append(errs, ValidationError{path, "must not be empty"})
	}
	for i, it := range items {
		p := fmt.Sprintf("%s[%d]", path, i)
		if it.Title == "" {
			errs = append(errs, ValidationError{p + ".title", "required"})
		}
		if math.IsNaN(it.Impact) || it.Impact < 0 {
			errs = append(errs, ValidationError{p + ".impact", fmt.Sprintf("impact %v must be a non-negative magnitude", it.Impact)})
		}
	}
	return errs
}

func validateTop(path string, items []assessment.Impact, sourceLen int) []ValidationError {
	var errs []ValidationError
	if len(items) > 3 {
		errs = append(errs, ValidationError{path, fmt.Sprintf("%d entries, max 3", len(items))})
	}
	if len(items) > sourceLen {
		errs = append(errs, ValidationError{path, fmt.Sprintf("%d entries exceeds source list length %d", len(items), sourceLen)})
	}
	for i := 1; i < len(items); i++ {
		if math.Abs(items[i].Impact) > math.Abs(items[i-1].Impact) {
			errs = append(errs, ValidationError{path, "not sorted by descending absolute impact"})
			break
		}
	}
	return errs
}
