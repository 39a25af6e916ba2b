package normalize

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"❌ No - Not demonstrated", "No - Not demonstrated"},
		{"⚠️ Marginal", "Marginal"},
		{"✅ Yes - Demonstrated", "Yes - Demonstrated"},
		{"📋 Emerging", "Emerging"},
		{"🏛️ High sensitivity", "High sensitivity"},
		{"⚖️ Moderate preference", "Moderate preference"},
		{"🎯 Strong preference", "Strong preference"},
		{"75–95%", "75-95%"},
		{"  padded   text \t", "padded text"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFold(t *testing.T) {
	if got := Fold("📜 Out-of-date"); got != "out-of-date" {
		t.Errorf("Fold = %q, want %q", got, "out-of-date")
	}
	if got := Fold("Commercial\t"); got != "commercial" {
		t.Errorf("Fold = %q, want %q", got, "commercial")
	}
}
