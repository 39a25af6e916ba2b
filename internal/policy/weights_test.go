package policy

import (
	"math"
	"testing"
)

func TestCalculateWeightsBaseline(t *testing.T) {
	// A healthy policy position produces no bumps anywhere.
	ctx := Context{
		FiveYearSupply:   "Yes - Demonstrated",
		HousingDelivery:  ">95%",
		LocalPlanStatus:  "Adopted (<5 years)",
		BrownfieldPolicy: "Limited",
		HeritageContext:  "Low",
	}
	w := CalculateWeights(ctx)
	for _, topic := range []string{"housing", "brownfield", "heritage"} {
		if w[topic] != 1.0 {
			t.Errorf("weight[%s] = %v, want 1.0", topic, w[topic])
		}
	}
}

func TestCalculateWeightsRuleTable(t *testing.T) {
	tests := []struct {
		name  string
		ctx   Context
		topic string
		want  float64
	}{
		{"supply not demonstrated", Context{FiveYearSupply: "No"}, "housing", 1.4},
		{"supply not demonstrated decorated", Context{FiveYearSupply: "❌ No - Not demonstrated"}, "housing", 1.4},
		{"supply marginal", Context{FiveYearSupply: "Marginal"}, "housing", 1.2},
		{"supply marginal decorated", Context{FiveYearSupply: "⚠️ Marginal"}, "housing", 1.2},
		{"delivery below 75", Context{HousingDelivery: "<75%"}, "housing", 1.3},
		{"delivery below 75 alias", Context{HousingDelivery: "Below 75%"}, "housing", 1.3},
		{"delivery mid band", Context{HousingDelivery: "75-95%"}, "housing", 1.15},
		{"delivery mid band en dash", Context{HousingDelivery: "75–95%"}, "housing", 1.15},
		{"plan emerging", Context{LocalPlanStatus: "Emerging"}, "housing", 1.2},
		{"plan emerging decorated", Context{LocalPlanStatus: "📋 Emerging"}, "housing", 1.2},
		{"plan out of date decorated", Context{LocalPlanStatus: "📜 Out-of-date"}, "housing", 1.2},
		{"brownfield strong", Context{BrownfieldPolicy: "Strong preference"}, "brownfield", 1.3},
		{"brownfield strong alias", Context{BrownfieldPolicy: "Strong priority"}, "brownfield", 1.3},
		{"brownfield moderate decorated", Context{BrownfieldPolicy: "⚖️ Moderate preference"}, "brownfield", 1.15},
		{"heritage high", Context{HeritageContext: "High sensitivity"}, "heritage", 1.4},
		{"heritage high decorated", Context{HeritageContext: "🏛️ High sensitivity"}, "heritage", 1.4},
		{"heritage high short", Context{HeritageContext: "High"}, "heritage", 1.4},
		{"heritage moderate", Context{HeritageContext: "Moderate sensitivity"}, "heritage", 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := CalculateWeights(tt.ctx)
			if math.Abs(w[tt.topic]-tt.want) > 1e-9 {
				t.Errorf("weight[%s] = %v, want %v", tt.topic, w[tt.topic], tt.want)
			}
		})
	}
}

func TestCalculateWeightsBumpsAccumulate(t *testing.T) {
	ctx := Context{
		FiveYearSupply:  "No",
		HousingDelivery: "<75%",
		LocalPlanStatus: "Emerging",
	}
	w := CalculateWeights(ctx)
	// 1.0 + 0.4 + 0.3 + 0.2
	if math.Abs(w["housing"]-1.9) > 1e-9 {
		t.Errorf("housing weight = %v, want 1.9", w["housing"])
	}
}

func TestCalculateWeightsAlwaysInRange(t *testing.T) {
	contexts := []Context{
		{},
		{FiveYearSupply: "nonsense", HousingDelivery: "???", LocalPlanStatus: "", BrownfieldPolicy: "n/a", HeritageContext: "!!"},
		{FiveYearSupply: "No", HousingDelivery: "<75%", LocalPlanStatus: "Out-of-date", BrownfieldPolicy: "Strong preference", HeritageContext: "High"},
	}
	for _, ctx := range contexts {
		w := CalculateWeights(ctx)
		for topic, v := range w {
			if v < MinWeight || v > MaxWeight {
				t.Errorf("weight[%s] = %v out of [%v,%v] for %+v", topic, v, MinWeight, MaxWeight, ctx)
			}
		}
	}
}

func TestClampWeight(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.1, 0.5},
		{0.5, 0.5},
		{1.3, 1.3},
		{2.0, 2.0},
		{2.7, 2.0},
	}
	for _, tt := range tests {
		if got := clampWeight(tt.in); got != tt.want {
			t.Errorf("clampWeight(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUnrecognizedValuesAddNothing(t *testing.T) {
	ctx := Context{
		FiveYearSupply:   "perhaps",
		HousingDelivery:  "around half",
		LocalPlanStatus:  "pending review",
		BrownfieldPolicy: "unclear",
		HeritageContext:  "unclear",
	}
	w := CalculateWeights(ctx)
	for topic, v := range w {
		if v != 1.0 {
			t.Errorf("weight[%s] = %v, want 1.0 for unrecognized input", topic, v)
		}
	}
}
