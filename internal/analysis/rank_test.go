package analysis

import "testing"

var canonicalModels = []string{
	"llama3-8b-8192",
	"gemini-2.0-flash",
	"gpt-4o",
	"claude-3-5-sonnet-20241022",
	"deepseek-chat",
}

func TestRankOrdersByDescendingSuccessRate(t *testing.T) {
	cells := map[string]Cell{
		"gpt-4o":        {Success: 1, Rejection: 3},
		"deepseek-chat": {Success: 9, Rejection: 1},
		"gpt-4o-mini":   {Success: 5, Rejection: 5},
	}
	rankings := Rank(cells, canonicalModels)
	if len(rankings) != 3 {
		t.Fatalf("expected 3 rankings, got %d", len(rankings))
	}
	if rankings[0].Model != "deepseek-chat" || rankings[1].Model != "gpt-4o-mini" || rankings[2].Model != "gpt-4o" {
		t.Fatalf("unexpected order: %v %v %v", rankings[0].Model, rankings[1].Model, rankings[2].Model)
	}
	if rankings[0].SuccessRate != 0.9 {
		t.Fatalf("unexpected top rate %f", rankings[0].SuccessRate)
	}
}

func TestRankTiesKeepCanonicalOrder(t *testing.T) {
	cells := map[string]Cell{
		"deepseek-chat":    {Success: 2, Rejection: 2},
		"gemini-2.0-flash": {Success: 1, Rejection: 1},
		"gpt-4o":           {Success: 3, Rejection: 3},
	}
	rankings := Rank(cells, canonicalModels)
	want := []string{"gemini-2.0-flash", "gpt-4o", "deepseek-chat"}
	for i, model := range want {
		if rankings[i].Model != model {
			t.Fatalf("rank %d: expected %s, got %s", i, model, rankings[i].Model)
		}
	}
}

func TestRankUnknownModelsFollowInNameOrder(t *testing.T) {
	cells := map[string]Cell{
		"zeta-model":  {Success: 1, Rejection: 1},
		"alpha-model": {Success: 1, Rejection: 1},
		"gpt-4o":      {Success: 1, Rejection: 1},
	}
	rankings := Rank(cells, canonicalModels)
	want := []string{"gpt-4o", "alpha-model", "zeta-model"}
	for i, model := range want {
		if rankings[i].Model != model {
			t.Fatalf("rank %d: expected %s, got %s", i, model, rankings[i].Model)
		}
	}
}

func TestRankEmptyCellRanksLast(t *testing.T) {
	cells := map[string]Cell{
		"gpt-4o":        {},
		"deepseek-chat": {Success: 1, Rejection: 9},
	}
	rankings := Rank(cells, canonicalModels)
	if rankings[0].Model != "deepseek-chat" || rankings[1].Model != "gpt-4o" {
		t.Fatalf("expected empty cell last, got %v then %v", rankings[0].Model, rankings[1].Model)
	}
	if rankings[1].SuccessRate != 0 {
		t.Fatalf("expected empty cell rate 0, got %f", rankings[1].SuccessRate)
	}
}
