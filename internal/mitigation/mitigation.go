// Package mitigation supplies templated mitigation text for harms.
package mitigation

import (
	"strings"

	"github.com/dshills/planbalance/internal/assessment"
)

// Fallback is used when no topic keyword matches a harm title.
const Fallback = "Prepare constraint-specific mitigation and document in submission."

type rule struct {
	keywords []string
	text     string
}

// Topic lookup table. First match wins, so more specific phrases sit above
// broader ones.
var rules = []rule{
	{[]string{"flood"}, "Sequential test; raise finished floor levels; SuDS; safe access/egress; FRA."},
	{[]string{"heritage", "conservation"}, "Heritage statement, sensitive design, materials, and setting protection."},
	{[]string{"green belt"}, "Demonstrate Very Special Circumstances (VSC); consider brownfield reuse and alternatives."},
	{[]string{"contamination"}, "Site investigation, remediation, monitoring and verification plan."},
	{[]string{"air", "noise"}, "AQ & noise assessments, mitigation (acoustic glazing, ventilation), layout changes."},
	{[]string{"protected employment"}, "Engage the council, justify change of use or provide employment retention strategy."},
}

// For returns the mitigation text for a harm title.
func For(title string) string {
	t := strings.ToLower(title)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(t, kw) {
				return r.text
			}
		}
	}
	return Fallback
}

// Fill assigns mitigation text to every harm that lacks one. Harms that
// already carry mitigation are left alone.
func Fill(harms []assessment.Impact) {
	for i := range harms {
		if harms[i].Mitigation == "" {
			harms[i].Mitigation = For(harms[i].Title)
		}
	}
}
