package assessment

import "testing"

func TestTopImpacts(t *testing.T) {
	items := []Impact{
		{Title: "a", Impact: 2},
		{Title: "b", Impact: 9},
		{Title: "c", Impact: 5},
		{Title: "d", Impact: 9},
		{Title: "e", Impact: 1},
	}

	top := TopImpacts(items, 3)

	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	// Stable sort: b precedes d on equal magnitude.
	expected := []string{"b", "d", "c"}
	for i, title := range expected {
		if top[i].Title != title {
			t.Errorf("position %d: got %s, want %s", i, top[i].Title, title)
		}
	}
}

func TestTopImpactsShortList(t *testing.T) {
	items := []Impact{{Title: "only", Impact: 3}}
	top := TopImpacts(items, 3)
	if len(top) != 1 {
		t.Errorf("len = %d, want 1", len(top))
	}
}

func TestTopImpactsDoesNotMutateInput(t *testing.T) {
	items := []Impact{
		{Title: "small", Impact: 1},
		{Title: "big", Impact: 10},
	}
	_ = TopImpacts(items, 2)
	if items[0].Title != "small" {
		t.Error("input slice was reordered")
	}
}

func TestMentionsTopic(t *testing.T) {
	tests := []struct {
		name  string
		it    Impact
		topic string
		want  bool
	}{
		{"title match", Impact{Title: "Housing delivery"}, "housing", true},
		{"description match", Impact{Title: "Reuse", Description: "brownfield land"}, "brownfield", true},
		{"case fold", Impact{Title: "HERITAGE setting"}, "heritage", true},
		{"no match", Impact{Title: "Transport"}, "housing", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mentionsTopic(tt.it, tt.topic); got != tt.want {
				t.Errorf("mentionsTopic = %v, want %v", got, tt.want)
			}
		})
	}
}
