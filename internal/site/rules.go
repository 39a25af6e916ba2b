// Package site assesses a scheme from its explicit constraint flags.
package site

import (
	"fmt"

	"github.com/dshills/planbalance/internal/assessment"
	"github.com/dshills/planbalance/internal/mitigation"
	"github.com/dshills/planbalance/internal/policy"
	"github.com/dshills/planbalance/internal/scenario"
)

// Assess derives harms and benefits from the site's boolean and categorical
// attributes. Each triggered condition appends one impact with a fixed
// magnitude. The returned lists are never empty.
func Assess(site scenario.Site) (harms, benefits []assessment.Impact) {
	f := site.Flags

	switch f.FloodZone {
	case 3:
		harms = append(harms, assessment.Impact{
			Title:       "Known Flood Risk (Zone 3)",
			Description: "Site lies in flood zone 3 with high probability of flooding.",
			Impact:      8,
		})
	case 2:
		harms = append(harms, assessment.Impact{
			Title:       "Known Flood Risk (Zone 2)",
			Description: "Site lies in flood zone 2 with medium probability of flooding.",
			Impact:      5,
		})
	}

	if f.GreenBelt {
		harms = append(harms, assessment.Impact{
			Title:       "Green Belt",
			Description: "Site lies in the Green Belt.",
			Impact:      9,
		})
	}

	if f.HeritageAdjacent {
		harms = append(harms, assessment.Impact{
			Title:       "Heritage asset proximity",
			Description: "Close to or within setting of a heritage asset.",
			Impact:      6,
		})
	}

	if f.ConservationArea {
		harms = append(harms, assessment.Impact{
			Title:       "Conservation Area",
			Description: "Within or adjacent to a conservation area.",
			Impact:      4,
		})
	}

	if f.Brownfield {
		benefits = append(benefits, assessment.Impact{
			Title:       "Brownfield reuse",
			Description: "Site is previously developed (brownfield).",
			Impact:      6,
		})
		if f.Contamination {
			harms = append(harms, assessment.Impact{
				Title:       "Known Contamination Risk",
				Description: "Known or suspected contamination from previous use.",
				Impact:      5,
			})
		}
	}

	if f.PoorAccess {
		harms = append(harms, assessment.Impact{
			Title:       "Poor site access",
			Description: "Substandard highway access or limited transport connectivity.",
			Impact:      3,
		})
	}

	switch {
	case f.AffordablePercent >= 35:
		benefits = append(benefits, assessment.Impact{
			Title:       "35% Affordable Housing",
			Description: fmt.Sprintf("%.0f%% affordable housing provision meets the policy target.", f.AffordablePercent),
			Impact:      5,
		})
	case f.AffordablePercent >= 20:
		benefits = append(benefits, assessment.Impact{
			Title:       "Affordable housing contribution",
			Description: fmt.Sprintf("%.0f%% affordable housing provision below the policy target.", f.AffordablePercent),
			Impact:      3,
		})
	}

	if use := site.Use(); use == scenario.UseResidential || use == scenario.UseMixed {
		switch policy.ParseSupply(site.Context.FiveYearSupply) {
		case policy.SupplyNotDemonstrated:
			benefits = append(benefits, assessment.Impact{
				Title:       "Housing delivery in undersupplied market",
				Description: "Scheme delivers housing where a five-year supply cannot be demonstrated.",
				Impact:      4,
			})
		case policy.SupplyMarginal:
			benefits = append(benefits, assessment.Impact{
				Title:       "Housing delivery",
				Description: "Scheme delivers housing where supply is marginal.",
				Impact:      2,
			})
		}
	}

	harms, benefits = assessment.WithDefaults(harms, benefits)
	mitigation.Fill(harms)
	return harms, benefits
}
