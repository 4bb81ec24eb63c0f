package mazequest

import (
	"math/rand"

	"github.com/vovakirdan/mazequest/internal/questions"
)

// Encounter is a turn-based fight bound to exactly one hero and one
// enemy. While active it is the only code allowed to invoke attacks
// between the two, and free movement for both is suspended. It is
// destroyed the moment either participant dies.
type Encounter struct {
	Hero     *Character
	Enemy    *Character
	Modality questions.Modality

	pool    []questions.Entry
	rng     *rand.Rand
	active  bool
	current questions.Entry
	// Shuffled is the word-ordering display order; empty for the other
	// modalities.
	Shuffled []string

	lastKey string
}

// TurnResult reports the outcome of one answered question.
type TurnResult struct {
	Correct bool
	Message string
	// Over is true when the exchange killed a participant and the
	// encounter ended.
	Over bool
}

// NewEncounter binds the participants and draws the first question.
// Returns nil if the question pool is empty: a fight nobody can resolve
// is never started.
func NewEncounter(hero, enemy *Character, modality questions.Modality, pool []questions.Entry, rng *rand.Rand) *Encounter {
	if len(pool) == 0 {
		return nil
	}
	e := &Encounter{
		Hero:     hero,
		Enemy:    enemy,
		Modality: modality,
		pool:     pool,
		rng:      rng,
		active:   true,
	}
	e.generateQuestion()
	return e
}

// Active reports whether the encounter still binds its participants.
// Once false it never becomes true again.
func (e *Encounter) Active() bool {
	return e.active
}

// Current returns the active question entry.
func (e *Encounter) Current() questions.Entry {
	return e.current
}

// generateQuestion draws the next question, avoiding an immediate
// repeat of the previous one when the pool allows it. Word-ordering
// questions get their words shuffled for display.
func (e *Encounter) generateQuestion() {
	for attempts := 0; ; attempts++ {
		entry := e.pool[e.rng.Intn(len(e.pool))]
		// A single-entry pool can only repeat.
		if entry.Key() == e.lastKey && len(e.pool) > 1 && attempts < 100 {
			continue
		}
		e.current = entry
		e.lastKey = entry.Key()
		break
	}
	if e.Modality == questions.WordOrdering {
		e.Shuffled = append(e.Shuffled[:0], e.current.Words...)
		e.rng.Shuffle(len(e.Shuffled), func(i, j int) {
			e.Shuffled[i], e.Shuffled[j] = e.Shuffled[j], e.Shuffled[i]
		})
	}
}

// CheckAnswer grades a submitted answer against the current question
// without side effects. Grading is pure: the same inputs always give
// the same verdict.
func (e *Encounter) CheckAnswer(answer string) bool {
	return e.current.Matches(answer)
}

// ProcessTurn resolves one combat exchange. A correct answer lets the
// hero attack the enemy; a wrong one lets the enemy attack the hero.
// If both survive, the next question is drawn. The turn pacing replaces
// the free-roam cooldown, so the attacker's timer is cleared first.
func (e *Encounter) ProcessTurn(answer string) TurnResult {
	if !e.active {
		return TurnResult{Over: true}
	}

	result := TurnResult{Correct: e.CheckAnswer(answer)}
	if result.Correct {
		e.Hero.ResetCooldown()
		e.Hero.Attack(e.Enemy)
		result.Message = "Correct! You strike the enemy."
	} else {
		e.Enemy.ResetCooldown()
		e.Enemy.Attack(e.Hero)
		result.Message = "Wrong. The enemy strikes you."
	}

	if !e.Hero.Alive() || !e.Enemy.Alive() {
		e.active = false
		result.Over = true
	} else {
		e.generateQuestion()
	}
	return result
}
