package constraints

import (
	"fmt"
	"math"
	"sort"

	"github.com/dshills/planbalance/internal/assessment"
	"github.com/dshills/planbalance/internal/mitigation"
	"github.com/dshills/planbalance/internal/scenario"
)

// impactMultiplier scales a 0-1 constraint score into a 0-10 impact.
const impactMultiplier = 10.0

// isBenefitColumn classifies each named constraint. Anything absent from
// this map counts as a harm. Column names appear exactly as they do in the
// source workbook, typos included.
var isBenefitColumn = map[string]bool{
	"Green Belt":                        false,
	"Brownfield":                        true,
	"Heritage Site?":                    false,
	"Known Contamination Risk?":         false,
	"Minimum 10% Biodiversity Net Gain": true,
	"Known Flood Risk":                  false,
	"Conservation Area":                 false,
	"High Levels of Air pollution":      false,
	"High Levels of Noise pollution":    false,
	"Sufficient Utility Capacity":       true,
	"Sufficient Transport Connectivity": true,
	"Protected Employment Land":         false,
	"Density compliance":                true,
	"Sufficient Total Housing":          true,
	"35% Affordable Housing":            true,
	"Aesthetical alginment":             true,
	"Sufficent Housing mixture":         true,
}

var columnDescriptions = map[string]string{
	"Green Belt":                        "Site lies in the Green Belt.",
	"Brownfield":                        "Site is previously developed (brownfield).",
	"Heritage Site?":                    "Close to or within setting of a heritage asset.",
	"Known Contamination Risk?":         "Known/suspected contamination.",
	"Minimum 10% Biodiversity Net Gain": "Meets biodiversity net gain expectations.",
	"Known Flood Risk":                  "Flood risk present.",
	"Conservation Area":                 "Within or adjacent to a conservation area.",
	"High Levels of Air pollution":      "High local air pollution.",
	"High Levels of Noise pollution":    "High local noise levels.",
	"Sufficient Utility Capacity":       "Sufficient utility capacity.",
	"Sufficient Transport Connectivity": "Good transport connections.",
	"Protected Employment Land":         "Designated protected employment land.",
	"Density compliance":                "Density is compliant with local expectations.",
	"Sufficient Total Housing":          "Sufficient housing totals locally.",
	"35% Affordable Housing":            "35% affordable housing provision.",
	"Aesthetical alginment":             "Design aligns with local character.",
	"Sufficent Housing mixture":         "Appropriate housing mix.",
}

// Assess derives harms and benefits from the constraint table blended for
// the site's use class, plus two synthetic scale benefits from dwelling
// count and floorspace. The returned lists are never empty.
func Assess(site scenario.Site, table Table) (harms, benefits []assessment.Impact) {
	combined := table.Combined(site)

	cols := make([]string, 0, len(combined))
	for c := range combined {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	for _, c := range cols {
		v := combined[c]
		// Scores outside (0,1] carry no signal; negatives are malformed
		// and count as zero rather than failing the run.
		if math.IsNaN(v) || v <= 0 {
			continue
		}
		impact := round2(v * impactMultiplier)
		desc := columnDescriptions[c]
		if desc == "" {
			desc = fmt.Sprintf("%s: score %.2f", c, v)
		}
		it := assessment.Impact{Title: c, Description: desc, Impact: impact}
		if isBenefitColumn[c] {
			benefits = append(benefits, it)
		} else {
			harms = append(harms, it)
		}
	}

	benefits = append(benefits, scaleBenefits(site)...)

	harms, benefits = assessment.WithDefaults(harms, benefits)
	mitigation.Fill(harms)
	return harms, benefits
}

// scaleBenefits converts dwelling count and floorspace into saturating
// benefit magnitudes. Dwellings follow a logistic curve centered at 100
// units; floorspace follows a log curve capped at 50,000 m².
func scaleBenefits(site scenario.Site) []assessment.Impact {
	ds := dwellingScore(site.Dwellings)
	fs := floorspaceScore(site.TotalFloorspace)

	var out []assessment.Impact
	use := site.Use()
	if use == scenario.UseResidential || use == scenario.UseMixed {
		out = append(out, assessment.Impact{
			Title:       "Housing delivery",
			Description: "Scheme delivers housing to local market",
			Impact:      round2(ds*8.0 + fs*2.0),
		})
	}
	if use == scenario.UseCommercial || use == scenario.UseMixed {
		out = append(out, assessment.Impact{
			Title:       "Employment / commercial floorspace",
			Description: "Scheme provides commercial floorspace and potential jobs",
			Impact:      round2(fs*8.0 + ds*1.0),
		})
	}
	return out
}

func dwellingScore(n int) float64 {
	return 1.0 / (1.0 + math.Exp(-(float64(n)-100.0)/75.0))
}

func floorspaceScore(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Min(1.0, math.Log1p(x)/math.Log(50000.0))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
