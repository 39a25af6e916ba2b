// Package policy handles local planning-policy context and the topic
// weights derived from it.
package policy

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/planbalance/internal/normalize"
	"gopkg.in/yaml.v3"
)

// Context holds the qualitative local-policy fields for one assessment run.
// Values may arrive plain or decorated; every rule matches on the
// normalized form.
type Context struct {
	FiveYearSupply   string `yaml:"five_year_supply" json:"five_year_supply"`
	HousingDelivery  string `yaml:"housing_delivery" json:"housing_delivery"`
	LocalPlanStatus  string `yaml:"local_plan_status" json:"local_plan_status"`
	BrownfieldPolicy string `yaml:"brownfield_policy" json:"brownfield_policy"`
	HeritageContext  string `yaml:"heritage_context" json:"heritage_context"`
}

// File holds a loaded context file with its parsed content and hash.
type File struct {
	FilePath string
	Context  Context
	Hash     string
}

// Load reads a policy context YAML file and computes its SHA-256 hash.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("policy.Load: %w", err)
	}
	var ctx Context
	if err := yaml.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("policy.Load: parse %s: %w", path, err)
	}
	h := sha256.Sum256(data)
	return &File{
		FilePath: path,
		Context:  ctx,
		Hash:     fmt.Sprintf("sha256:%x", h),
	}, nil
}

// SupplyStatus is the normalized five-year housing land supply position.
type SupplyStatus string

const (
	SupplyDemonstrated    SupplyStatus = "DEMONSTRATED"
	SupplyMarginal        SupplyStatus = "MARGINAL"
	SupplyNotDemonstrated SupplyStatus = "NOT_DEMONSTRATED"
	SupplyUnknown         SupplyStatus = "UNKNOWN"
)

// DeliveryBand is the normalized housing delivery test result.
type DeliveryBand string

const (
	DeliveryAbove95 DeliveryBand = "ABOVE_95"
	Delivery75To95  DeliveryBand = "75_TO_95"
	DeliveryBelow75 DeliveryBand = "BELOW_75"
	DeliveryUnknown DeliveryBand = "UNKNOWN"
)

// PlanStatus is the normalized local plan status.
type PlanStatus string

const (
	PlanAdopted   PlanStatus = "ADOPTED"
	PlanEmerging  PlanStatus = "EMERGING"
	PlanOutOfDate PlanStatus = "OUT_OF_DATE"
	PlanUnknown   PlanStatus = "UNKNOWN"
)

// Preference is the normalized strength of a topical policy preference,
// shared by the brownfield and heritage fields.
type Preference string

const (
	PreferenceStrong   Preference = "STRONG"
	PreferenceModerate Preference = "MODERATE"
	PreferenceNone     Preference = "NONE"
)

// ParseSupply normalizes a five-year supply option. Unrecognized values map
// to SupplyUnknown and contribute no weight bump.
func ParseSupply(s string) SupplyStatus {
	f := normalize.Fold(s)
	switch {
	case f == "":
		return SupplyUnknown
	case strings.Contains(f, "not demonstrated") || f == "no" || strings.HasPrefix(f, "no "):
		return SupplyNotDemonstrated
	case strings.Contains(f, "marginal"):
		return SupplyMarginal
	case strings.HasPrefix(f, "yes") || strings.Contains(f, "demonstrated"):
		return SupplyDemonstrated
	default:
		return SupplyUnknown
	}
}

// ParseDelivery normalizes a housing delivery band option.
func ParseDelivery(s string) DeliveryBand {
	f := normalize.Fold(s)
	switch {
	case f == "":
		return DeliveryUnknown
	case strings.Contains(f, "<75") || strings.Contains(f, "below 75"):
		return DeliveryBelow75
	case strings.Contains(f, "75-95"):
		return Delivery75To95
	case strings.Contains(f, ">95") || strings.Contains(f, "above 95"):
		return DeliveryAbove95
	default:
		return DeliveryUnknown
	}
}

// ParsePlanStatus normalizes a local plan status option.
func ParsePlanStatus(s string) PlanStatus {
	f := normalize.Fold(s)
	switch {
	case f == "":
		return PlanUnknown
	case strings.Contains(f, "emerging"):
		return PlanEmerging
	case strings.Contains(f, "out-of-date") || strings.Contains(f, "out of date"):
		return PlanOutOfDate
	case strings.Contains(f, "adopted"):
		return PlanAdopted
	default:
		return PlanUnknown
	}
}

// ParseBrownfieldPolicy normalizes a brownfield preference option.
// "Strong preference" and "Strong priority" are the same logical choice.
func ParseBrownfieldPolicy(s string) Preference {
	f := normalize.Fold(s)
	switch {
	case strings.Contains(f, "strong"):
		return PreferenceStrong
	case strings.Contains(f, "moderate"):
		return PreferenceModerate
	default:
		return PreferenceNone
	}
}

// ParseHeritageContext normalizes a heritage sensitivity option.
func ParseHeritageContext(s string) Preference {
	f := normalize.Fold(s)
	switch {
	case strings.Contains(f, "high"):
		return PreferenceStrong
	case strings.Contains(f, "moderate"):
		return PreferenceModerate
	default:
		return PreferenceNone
	}
}
