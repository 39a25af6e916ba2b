package scenario

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	content := `name: Test Site
primary_use: Mixed
dwellings: 200
total_floorspace: 8000
percent_residential: 60
flags:
  flood_zone: 2
  green_belt: true
  affordable_percent: 35
planning_context:
  five_year_supply: "No"
  housing_delivery: "<75%"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if sc.Site.Name != "Test Site" {
		t.Errorf("name = %q", sc.Site.Name)
	}
	if sc.Site.Dwellings != 200 {
		t.Errorf("dwellings = %d", sc.Site.Dwellings)
	}
	if sc.Site.Flags.FloodZone != 2 || !sc.Site.Flags.GreenBelt {
		t.Errorf("flags = %+v", sc.Site.Flags)
	}
	if sc.Site.Context.FiveYearSupply != "No" {
		t.Errorf("context = %+v", sc.Site.Context)
	}
	if !strings.HasPrefix(sc.Hash, "sha256:") {
		t.Errorf("hash %q missing sha256 prefix", sc.Hash)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestParseUseClass(t *testing.T) {
	tests := []struct {
		in   string
		want UseClass
	}{
		{"Residential", UseResidential},
		{"residential", UseResidential},
		{"Commercial", UseCommercial},
		{"Commercial\t", UseCommercial},
		{"Mixed", UseMixed},
		{"Mixed Use", UseMixed},
		{"", UseResidential},
		{"garbage", UseResidential},
	}
	for _, tt := range tests {
		if got := ParseUseClass(tt.in); got != tt.want {
			t.Errorf("ParseUseClass(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestResidentialShare(t *testing.T) {
	tests := []struct {
		name string
		site Site
		want float64
	}{
		{"residential", Site{PrimaryUse: "Residential"}, 1.0},
		{"commercial", Site{PrimaryUse: "Commercial"}, 0.0},
		{"mixed 60", Site{PrimaryUse: "Mixed", PercentResidential: 60}, 0.6},
		{"mixed clamp high", Site{PrimaryUse: "Mixed", PercentResidential: 140}, 1.0},
		{"mixed omitted defaults residential", Site{PrimaryUse: "Mixed"}, 1.0},
		{"mixed negative defaults residential", Site{PrimaryUse: "Mixed", PercentResidential: -5}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.site.ResidentialShare(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ResidentialShare() = %v, want %v", got, tt.want)
			}
		})
	}
}
