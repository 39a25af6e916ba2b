// Package assessment defines the core types and the balance engine for
// planbalance output.
package assessment

// Impact is a single planning consideration with a magnitude. Harms and
// benefits share this shape; direction comes from which list an Impact
// belongs to, never from the value itself.
type Impact struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Impact      float64 `json:"impact"`
	Mitigation  string  `json:"mitigation,omitempty"`
}

// Result is the top-level output object for one assessment run.
type Result struct {
	Tool         string             `json:"tool"`
	Version      string             `json:"version"`
	Input        Input              `json:"input"`
	Score        int                `json:"score"`
	Tier         RiskTier           `json:"tier"`
	HarmScore    float64            `json:"harm_score"`
	BenefitScore float64            `json:"benefit_score"`
	Harms        []Impact           `json:"harms"`
	Benefits     []Impact           `json:"benefits"`
	TopHarms     []Impact           `json:"top_harms"`
	TopBenefits  []Impact           `json:"top_benefits"`
	Weights      map[string]float64 `json:"weights,omitempty"`
}

// Input describes the files and settings used for the assessment.
type Input struct {
	ScenarioFile    string `json:"scenario_file"`
	ScenarioHash    string `json:"scenario_hash"`
	ContextFile     string `json:"context_file,omitempty"`
	ContextHash     string `json:"context_hash,omitempty"`
	ConstraintsFile string `json:"constraints_file,omitempty"`
	Mode            string `json:"mode"`
	Profile         string `json:"profile,omitempty"`
}
