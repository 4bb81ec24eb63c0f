package questions

import "testing"

func TestDefaultBankCoversAllDifficulties(t *testing.T) {
	b := Default()
	if got := b.MaxDifficulty(); got != 5 {
		t.Fatalf("MaxDifficulty() = %d, want 5", got)
	}
	for diff := 1; diff <= 5; diff++ {
		for _, m := range Modalities {
			pool := b.Pool(diff, m)
			if len(pool) == 0 {
				t.Errorf("empty pool for difficulty %d modality %s", diff, m)
			}
			for i, e := range pool {
				if e.Answer == "" {
					t.Errorf("difficulty %d %s entry %d has no answer", diff, m, i)
				}
				switch m {
				case WordOrdering:
					if len(e.Words) == 0 {
						t.Errorf("difficulty %d word ordering entry %d has no words", diff, i)
					}
				case MultipleChoice:
					if len(e.Options) < 2 {
						t.Errorf("difficulty %d multiple choice entry %d has %d options", diff, i, len(e.Options))
					}
					found := false
					for _, opt := range e.Options {
						if opt == e.Answer {
							found = true
						}
					}
					if !found {
						t.Errorf("difficulty %d multiple choice entry %d: answer %q not in options", diff, i, e.Answer)
					}
				case FillInTheBlank:
					if e.Prompt == "" {
						t.Errorf("difficulty %d fill-in entry %d has no prompt", diff, i)
					}
				}
			}
		}
	}
}

func TestPoolMissingDifficultyIsEmpty(t *testing.T) {
	b := Default()
	if pool := b.Pool(99, WordOrdering); len(pool) != 0 {
		t.Fatalf("expected empty pool for unknown difficulty, got %d entries", len(pool))
	}
	if pool := b.Pool(1, Modality("riddles")); len(pool) != 0 {
		t.Fatalf("expected empty pool for unknown modality, got %d entries", len(pool))
	}
}

func TestMatchesIgnoresCaseAndWhitespace(t *testing.T) {
	e := Entry{Answer: "I am happy"}
	cases := []struct {
		in   string
		want bool
	}{
		{"I am happy", true},
		{"i AM happy", true},
		{"  i am happy  ", true},
		{"I am happy!", false},
		{"I am", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := e.Matches(tc.in); got != tc.want {
			t.Errorf("Matches(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEntryKey(t *testing.T) {
	withPrompt := Entry{Prompt: "Complete: She ___ happy", Answer: "is"}
	if withPrompt.Key() != withPrompt.Prompt {
		t.Errorf("Key() = %q, want the prompt", withPrompt.Key())
	}
	ordering := Entry{Words: []string{"She", "is", "happy"}, Answer: "She is happy"}
	if ordering.Key() != ordering.Answer {
		t.Errorf("Key() = %q, want the answer sentence", ordering.Key())
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	if _, err := Load([]byte("difficulties: [")); err == nil {
		t.Fatal("expected parse error for malformed YAML")
	}
	if _, err := Load([]byte("difficulties:\n  - difficulty: 0\n")); err == nil {
		t.Fatal("expected error for difficulty below 1")
	}
}

func TestModalityHelpers(t *testing.T) {
	for _, m := range Modalities {
		if !m.Valid() {
			t.Errorf("%s should be valid", m)
		}
		if m.Title() == string(m) {
			t.Errorf("%s has no display title", m)
		}
	}
	if Modality("nope").Valid() {
		t.Error("unknown modality reported valid")
	}
}
