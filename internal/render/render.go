// Package render produces Markdown output from an assessment result.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/planbalance/internal/assessment"
)

// Markdown renders an assessment result as a Markdown report.
func Markdown(r *assessment.Result) string {
	var b strings.Builder

	b.WriteString("# Planning Balance Assessment\n\n")
	fmt.Fprintf(&b, "**Verdict:** %s %s\n", r.Tier.Icon(), r.Tier.Label())
	fmt.Fprintf(&b, "**Score:** %d / 100\n", r.Score)
	fmt.Fprintf(&b, "**Benefit Score:** %.1f\n", r.BenefitScore)
	fmt.Fprintf(&b, "**Harm Score:** %.1f\n\n", r.HarmScore)

	if len(r.Weights) > 0 {
		b.WriteString("## Policy Weights\n\n")
		topics := make([]string, 0, len(r.Weights))
		for t := range r.Weights {
			topics = append(topics, t)
		}
		sort.Strings(topics)
		for _, t := range topics {
			fmt.Fprintf(&b, "- %s: %.2f\n", t, r.Weights[t])
		}
		b.WriteString("\n")
	}

	if len(r.TopBenefits) > 0 {
		b.WriteString("## Key Benefits\n\n")
		for _, ben := range r.TopBenefits {
			fmt.Fprintf(&b, "### %s\n\n", ben.Title)
			if ben.Description != "" {
				fmt.Fprintf(&b, "%s\n\n", ben.Description)
			}
			fmt.Fprintf(&b, "**Impact:** +%.4g\n\n", ben.Impact)
		}
	}

	if len(r.TopHarms) > 0 {
		b.WriteString("## Key Risks\n\n")
		for _, h := range r.TopHarms {
			fmt.Fprintf(&b, "### %s\n\n", h.Title)
			if h.Description != "" {
				fmt.Fprintf(&b, "%s\n\n", h.Description)
			}
			fmt.Fprintf(&b, "**Impact:** %.4g\n\n", h.Impact)
			if h.Mitigation != "" {
				fmt.Fprintf(&b, "**Mitigation:** %s\n\n", h.Mitigation)
			}
		}
	}

	recs := MitigationRecommendations(r)
	if recs != "" {
		b.WriteString("## Top Risk Mitigation Recommendations\n\n")
		b.WriteString(recs)
	}

	return b.String()
}

// MitigationRecommendations builds the templated mitigation narrative for
// the two largest harms.
func MitigationRecommendations(r *assessment.Result) string {
	top := assessment.TopImpacts(r.Harms, 2)
	var b strings.Builder
	for _, h := range top {
		mit := h.Mitigation
		if mit == "" {
			mit = "Develop a mitigation plan."
		}
		fmt.Fprintf(&b, "**%s:** %s\n\n%s\n\n", h.Title, h.Description, mit)
	}
	return b.String()
}
