// Package scenario handles reading, hashing, and parsing scenario files.
package scenario

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/planbalance/internal/normalize"
	"github.com/dshills/planbalance/internal/policy"
	"gopkg.in/yaml.v3"
)

// Site is the full set of user-entered site attributes for one scheme.
// A Site is replaced wholesale on every save; no history is retained.
type Site struct {
	Name               string         `yaml:"name" json:"name"`
	PrimaryUse         string         `yaml:"primary_use" json:"primary_use"`
	Dwellings          int            `yaml:"dwellings" json:"dwellings"`
	TotalFloorspace    float64        `yaml:"total_floorspace" json:"total_floorspace"`
	PercentResidential float64        `yaml:"percent_residential" json:"percent_residential"`
	Flags              Flags          `yaml:"flags" json:"flags"`
	Context            policy.Context `yaml:"planning_context" json:"planning_context"`
}

// Flags are the boolean/categorical constraint attributes consumed by the
// rule-based assessor.
type Flags struct {
	FloodZone         int     `yaml:"flood_zone" json:"flood_zone"` // EA zone 1-3; 0 means unknown
	GreenBelt         bool    `yaml:"green_belt" json:"green_belt"`
	HeritageAdjacent  bool    `yaml:"heritage_adjacent" json:"heritage_adjacent"`
	ConservationArea  bool    `yaml:"conservation_area" json:"conservation_area"`
	Brownfield        bool    `yaml:"brownfield" json:"brownfield"`
	Contamination     bool    `yaml:"contamination" json:"contamination"`
	PoorAccess        bool    `yaml:"poor_access" json:"poor_access"`
	AffordablePercent float64 `yaml:"affordable_percent" json:"affordable_percent"`
}

// Scenario holds a loaded scenario file with its parsed site and hash.
type Scenario struct {
	FilePath string
	Site     Site
	Hash     string
}

// Load reads a scenario YAML file and computes its SHA-256 hash.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario.Load: %w", err)
	}
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("scenario.Load: parse %s: %w", path, err)
	}
	h := sha256.Sum256(data)
	return &Scenario{
		FilePath: path,
		Site:     site,
		Hash:     fmt.Sprintf("sha256:%x", h),
	}, nil
}

// UseClass is the normalized primary use of a scheme.
type UseClass string

const (
	UseResidential UseClass = "RESIDENTIAL"
	UseCommercial  UseClass = "COMMERCIAL"
	UseMixed       UseClass = "MIXED"
)

func (u UseClass) Valid() bool {
	switch u {
	case UseResidential, UseCommercial, UseMixed:
		return true
	}
	return false
}

// ParseUseClass normalizes a primary use string. Unrecognized or empty
// values default to residential, matching the downstream defaults that
// absorb missing input.
func ParseUseClass(s string) UseClass {
	f := normalize.Fold(s)
	switch {
	case strings.Contains(f, "mix"):
		return UseMixed
	case strings.Contains(f, "comm"):
		return UseCommercial
	default:
		return UseResidential
	}
}

// Use returns the normalized use class of the site.
func (s Site) Use() UseClass {
	return ParseUseClass(s.PrimaryUse)
}

// ResidentialShare returns the residential fraction in [0,1] used to blend
// mixed-use constraint rows.
func (s Site) ResidentialShare() float64 {
	switch s.Use() {
	case UseResidential:
		return 1.0
	case UseCommercial:
		return 0.0
	default:
		pct := s.PercentResidential
		// A mixed scheme that omits the split (or gives a malformed
		// value) counts as fully residential.
		if pct <= 0 {
			pct = 100
		}
		if pct > 100 {
			pct = 100
		}
		return pct / 100.0
	}
}
