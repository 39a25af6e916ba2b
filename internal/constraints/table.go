// Package constraints assesses a scheme from a table of per-scenario
// constraint scores.
package constraints

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dshills/planbalance/internal/normalize"
	"github.com/dshills/planbalance/internal/scenario"
)

// Table maps a scenario row name to its constraint scores in [0,1].
type Table map[string]map[string]float64

// Load reads a constraint table from a CSV or JSON file, chosen by
// extension. A missing or unparseable file returns an empty table together
// with the error; callers treat that as zero data rather than a fatal
// condition.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("constraints.Load: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parseJSON(path, data)
	}
	return parseCSV(path, data)
}

// parseCSV expects the first column to hold scenario names and the header
// row to hold constraint names. Cell values that fail to parse count as 0.
func parseCSV(path string, data []byte) (Table, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("constraints.Load: parse %s: %w", path, err)
	}
	if len(records) < 2 {
		return Table{}, fmt.Errorf("constraints.Load: %s: no data rows", path)
	}

	header := records[0]
	t := Table{}
	for _, row := range records[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		name := strings.TrimSpace(row[0])
		scores := map[string]float64{}
		for i := 1; i < len(row) && i < len(header); i++ {
			col := strings.TrimSpace(header[i])
			if col == "" {
				continue
			}
			scores[col] = parseScore(row[i])
		}
		t[name] = scores
	}
	return t, nil
}

func parseJSON(path string, data []byte) (Table, error) {
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Table{}, fmt.Errorf("constraints.Load: parse %s: %w", path, err)
	}
	t := Table{}
	for name, row := range raw {
		scores := map[string]float64{}
		for col, v := range row {
			switch val := v.(type) {
			case float64:
				scores[strings.TrimSpace(col)] = val
			case string:
				scores[strings.TrimSpace(col)] = parseScore(val)
			default:
				scores[strings.TrimSpace(col)] = 0
			}
		}
		t[strings.TrimSpace(name)] = scores
	}
	return t, nil
}

// parseScore coerces a cell to a float, defaulting malformed values to 0 so
// a bad cell never breaks the assessment.
func parseScore(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Row finds the first row matching any candidate name. Matching trims
// whitespace and ignores case, because sheet row labels carry trailing tabs
// and inconsistent casing. A missing row returns nil.
func (t Table) Row(candidates ...string) map[string]float64 {
	for _, c := range candidates {
		if row, ok := t[c]; ok {
			return row
		}
		want := normalize.Fold(c)
		for name, row := range t {
			if normalize.Fold(name) == want {
				return row
			}
		}
	}
	return nil
}

// Row name aliases seen across source workbooks.
var (
	residentialAliases = []string{"Residential", "EC Resid", "Resid"}
	commercialAliases  = []string{"Commercial", "EC Comm", "Comm"}
)

// Combined blends the residential and commercial rows into one constraint
// map according to the site's use class. A constraint missing from either
// row contributes 0 from that row.
func (t Table) Combined(site scenario.Site) map[string]float64 {
	pctRes := site.ResidentialShare()
	pctCom := 1.0 - pctRes

	res := t.Row(residentialAliases...)
	com := t.Row(commercialAliases...)

	cols := map[string]struct{}{}
	for c := range res {
		cols[c] = struct{}{}
	}
	for c := range com {
		cols[c] = struct{}{}
	}

	combined := map[string]float64{}
	for c := range cols {
		switch site.Use() {
		case scenario.UseResidential:
			combined[c] = res[c]
		case scenario.UseCommercial:
			combined[c] = com[c]
		default:
			combined[c] = res[c]*pctRes + com[c]*pctCom
		}
	}
	return combined
}
