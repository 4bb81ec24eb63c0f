package mazequest

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/mazequest/internal/config"
	"github.com/vovakirdan/mazequest/internal/core"
	"github.com/vovakirdan/mazequest/internal/questions"
)

func adjacentPair(cfg config.MazeQuestConfig) (*Character, *Character) {
	hero := NewHero(cfg, 100, 100)
	enemy := NewEnemy(cfg, 1, 100+20, 100)
	return hero, enemy
}

func TestEncounterRequiresQuestions(t *testing.T) {
	cfg := testConfig()
	hero, enemy := adjacentPair(cfg)
	rng := rand.New(rand.NewSource(1))

	if e := NewEncounter(hero, enemy, questions.MultipleChoice, nil, rng); e != nil {
		t.Error("an encounter with an empty pool must not start")
	}
}

func TestCorrectAnswerAttacksEnemy(t *testing.T) {
	cfg := testConfig()
	hero, enemy := adjacentPair(cfg)
	rng := rand.New(rand.NewSource(1))
	pool := []questions.Entry{{Prompt: "I ___ a student. (to be)", Answer: "am"}}

	e := NewEncounter(hero, enemy, questions.FillInTheBlank, pool, rng)
	result := e.ProcessTurn("am")
	if !result.Correct {
		t.Fatal("answer should grade correct")
	}
	if enemy.Health != 0 {
		t.Errorf("enemy health = %d, want 0", enemy.Health)
	}
	if e.Active() {
		t.Error("encounter must end when the enemy dies")
	}
	if !result.Over {
		t.Error("result should report the encounter is over")
	}
	if hero.Health != hero.MaxHealth {
		t.Error("hero must be untouched by a correct answer")
	}
}

// Grading ignores case and surrounding whitespace: a word-ordering
// submission "i AM happy" matches the canonical "I am happy".
func TestGradingIsCaseInsensitive(t *testing.T) {
	cfg := testConfig()
	hero, enemy := adjacentPair(cfg)
	rng := rand.New(rand.NewSource(1))
	pool := []questions.Entry{{Words: []string{"I", "am", "happy"}, Answer: "I am happy"}}

	e := NewEncounter(hero, enemy, questions.WordOrdering, pool, rng)
	if !e.CheckAnswer("i AM happy") {
		t.Error("case-insensitive match should grade correct")
	}
	if !e.CheckAnswer("  I am happy  ") {
		t.Error("surrounding whitespace should be ignored")
	}
	if e.CheckAnswer("happy am I") {
		t.Error("wrong word order must not match")
	}
}

// CheckAnswer is pure: repeated grading of the same answer gives the
// same verdict and mutates nothing.
func TestGradingHasNoSideEffects(t *testing.T) {
	cfg := testConfig()
	hero, enemy := adjacentPair(cfg)
	rng := rand.New(rand.NewSource(1))
	pool := []questions.Entry{{Prompt: "She ___ happy. (to be)", Answer: "is"}}

	e := NewEncounter(hero, enemy, questions.FillInTheBlank, pool, rng)
	key := e.Current().Key()
	for i := 0; i < 5; i++ {
		if !e.CheckAnswer("is") {
			t.Fatal("verdict changed between identical calls")
		}
		if e.CheckAnswer("was") {
			t.Fatal("wrong answer graded correct")
		}
	}
	if hero.Health != hero.MaxHealth || enemy.Health != enemy.MaxHealth {
		t.Error("grading must not touch health")
	}
	if e.Current().Key() != key {
		t.Error("grading must not advance the question")
	}
}

// A wrong answer lets the enemy strike: a hero at 10 health is killed
// and the encounter ends for good.
func TestWrongAnswerKillsWoundedHero(t *testing.T) {
	cfg := testConfig()
	hero, enemy := adjacentPair(cfg)
	hero.Health = 10
	rng := rand.New(rand.NewSource(1))
	pool := []questions.Entry{{Prompt: "She ___ happy. (to be)", Answer: "is"}}

	e := NewEncounter(hero, enemy, questions.FillInTheBlank, pool, rng)
	result := e.ProcessTurn("are")
	if result.Correct {
		t.Fatal("wrong answer graded correct")
	}
	if hero.Health != 0 || hero.Alive() {
		t.Errorf("hero health = %d, want 0 and dead", hero.Health)
	}
	if e.Active() {
		t.Error("encounter must end when the hero dies")
	}

	// Termination is permanent.
	later := e.ProcessTurn("is")
	if !later.Over || e.Active() {
		t.Error("a finished encounter must stay finished")
	}
	if enemy.Health != enemy.MaxHealth {
		t.Error("turns after the end must not deal damage")
	}
}

func TestBothSurviveDrawsNextQuestion(t *testing.T) {
	cfg := testConfig()
	hero, enemy := adjacentPair(cfg)
	enemy.Health = 50
	enemy.MaxHealth = 50
	rng := rand.New(rand.NewSource(7))
	pool := []questions.Entry{
		{Prompt: "q1", Answer: "a1"},
		{Prompt: "q2", Answer: "a2"},
		{Prompt: "q3", Answer: "a3"},
	}

	e := NewEncounter(hero, enemy, questions.FillInTheBlank, pool, rng)
	first := e.Current().Key()
	result := e.ProcessTurn(e.Current().Answer)
	if result.Over || !e.Active() {
		t.Fatal("encounter should continue while both survive")
	}
	if e.Current().Key() == first {
		t.Error("immediate question repeat should be suppressed")
	}
}

func TestConsecutiveQuestionsNeverRepeat(t *testing.T) {
	cfg := testConfig()
	hero, enemy := adjacentPair(cfg)
	rng := rand.New(rand.NewSource(3))
	pool := []questions.Entry{
		{Prompt: "q1", Answer: "a"},
		{Prompt: "q2", Answer: "a"},
	}

	e := NewEncounter(hero, enemy, questions.FillInTheBlank, pool, rng)
	last := e.Current().Key()
	for i := 0; i < 50; i++ {
		e.generateQuestion()
		if e.Current().Key() == last {
			t.Fatalf("draw %d repeated question %q", i, last)
		}
		last = e.Current().Key()
	}
}

func TestWordOrderingShufflesForDisplay(t *testing.T) {
	cfg := testConfig()
	hero, enemy := adjacentPair(cfg)
	rng := rand.New(rand.NewSource(5))
	pool := []questions.Entry{{
		Words:  []string{"The", "book", "is", "on", "the", "table"},
		Answer: "The book is on the table",
	}}

	e := NewEncounter(hero, enemy, questions.WordOrdering, pool, rng)
	if len(e.Shuffled) != 6 {
		t.Fatalf("shuffled word count = %d, want 6", len(e.Shuffled))
	}
	seen := map[string]int{}
	for _, w := range e.Shuffled {
		seen[w]++
	}
	for _, w := range pool[0].Words {
		seen[w]--
	}
	for w, n := range seen {
		if n != 0 {
			t.Errorf("shuffle changed the multiset of words (%q off by %d)", w, n)
		}
	}
}

func TestPromptWordOrderingFlow(t *testing.T) {
	p := &prompt{
		modality: questions.WordOrdering,
		words:    []string{"happy", "She", "is"},
		used:     make([]bool, 3),
	}

	pick := func() {
		in := core.NewInputFrame()
		in.Set(core.ActionConfirm)
		if _, submitted := p.handle(in); submitted {
			t.Fatal("picking a word must not submit")
		}
	}
	right := func() {
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		p.handle(in)
	}

	right()         // cursor -> "She"
	pick()          // pick "She"
	right()         // skip used, land on "happy"... cursor moves to next unused
	if p.used[p.cursor] {
		t.Fatal("cursor must rest on an unused word")
	}
	// Pick "is" then "happy" in whatever order the cursor allows.
	for len(p.picked) < 3 {
		if !p.used[p.cursor] {
			pick()
		} else {
			right()
		}
	}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	answer, submitted := p.handle(in)
	if !submitted {
		t.Fatal("a complete answer should submit on confirm")
	}
	if answer == "" || len(p.picked) != 3 {
		t.Fatalf("unexpected answer %q", answer)
	}
}

func TestPromptBackspaceUnpicksWord(t *testing.T) {
	p := &prompt{
		modality: questions.WordOrdering,
		words:    []string{"a", "b"},
		used:     make([]bool, 2),
	}
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	p.handle(confirm) // pick "a"
	if len(p.picked) != 1 {
		t.Fatalf("picked = %d, want 1", len(p.picked))
	}

	back := core.NewInputFrame()
	back.Set(core.ActionBackspace)
	p.handle(back)
	if len(p.picked) != 0 || p.used[0] {
		t.Error("backspace should return the word to the pool")
	}
}

func TestPromptTextTyping(t *testing.T) {
	p := &prompt{modality: questions.FillInTheBlank}

	in := core.NewInputFrame()
	in.Type('a')
	in.Type('m')
	p.handle(in)

	back := core.NewInputFrame()
	back.Set(core.ActionBackspace)
	p.handle(back)

	in2 := core.NewInputFrame()
	in2.Type('m')
	in2.Set(core.ActionConfirm)
	answer, submitted := p.handle(in2)
	if !submitted || answer != "am" {
		t.Errorf("answer = %q submitted=%v, want %q", answer, submitted, "am")
	}
}

func TestPromptOptionCursorWraps(t *testing.T) {
	p := &prompt{
		modality: questions.MultipleChoice,
		options:  []string{"are", "is", "am"},
	}

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	p.handle(up)
	if p.cursor != 2 {
		t.Errorf("cursor = %d, want wrap to 2", p.cursor)
	}

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	answer, submitted := p.handle(confirm)
	if !submitted || answer != "am" {
		t.Errorf("answer = %q, want %q", answer, "am")
	}
}
