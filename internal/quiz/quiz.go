// Package quiz maps a completed quiz answer set to exactly one plan, first by
// an ordered override rule table and then by a weighted best-match score.
package quiz

import (
	"fmt"

	"coaching-offers-api/internal/catalog"
	"coaching-offers-api/internal/models"
)

// Field weights reflect the relative importance of each quiz question.
const (
	weightGoal  = 4
	weightLevel = 3
	weightDays  = 2
	weightPlace = 1
)

// Engine selects a plan for a completed answer set. It is stateless and
// never fails for well-formed complete answers.
type Engine struct {
	store *catalog.Store
}

// NewEngine builds the engine over a catalog store. An empty plan catalog is
// a configuration error: the scoring fallback would have nothing to return.
func NewEngine(store *catalog.Store) (*Engine, error) {
	if len(store.Plans()) == 0 {
		return nil, fmt.Errorf("quiz: plan catalog is empty")
	}
	return &Engine{store: store}, nil
}

// IsComplete reports whether all four quiz fields are answered. Callers must
// gate Recommend behind it.
func IsComplete(a models.QuizAnswers) bool {
	return a.Goal != nil && a.Level != nil && a.DaysPerWeek != nil && a.TrainingPlace != nil
}

// Recommend returns the plan for a completed answer set. The rule table is
// scanned in order and the first full structural match whose target slug
// resolves wins; only then does the weighted scorer run.
func (e *Engine) Recommend(a models.QuizAnswers) models.Plan {
	for _, rule := range e.store.Rules() {
		if !ruleMatches(rule.When, a) {
			continue
		}
		if plan, ok := e.store.PlanBySlug(rule.PlanSlug); ok {
			return plan
		}
	}
	return e.bestMatch(a)
}

// ruleMatches tests every field named in the partial predicate against the
// answers. Unset predicate fields are wildcards.
func ruleMatches(when, a models.QuizAnswers) bool {
	if when.Goal != nil && (a.Goal == nil || *a.Goal != *when.Goal) {
		return false
	}
	if when.Level != nil && (a.Level == nil || *a.Level != *when.Level) {
		return false
	}
	if when.DaysPerWeek != nil && (a.DaysPerWeek == nil || *a.DaysPerWeek != *when.DaysPerWeek) {
		return false
	}
	if when.TrainingPlace != nil && (a.TrainingPlace == nil || *a.TrainingPlace != *when.TrainingPlace) {
		return false
	}
	return true
}

// bestMatch scores every plan in catalog order and keeps the first plan with
// the highest score, so ties resolve to catalog order.
func (e *Engine) bestMatch(a models.QuizAnswers) models.Plan {
	plans := e.store.Plans()
	best := plans[0]
	bestScore := score(best, a)

	for _, plan := range plans[1:] {
		if s := score(plan, a); s > bestScore {
			best = plan
			bestScore = s
		}
	}
	return best
}

func score(plan models.Plan, a models.QuizAnswers) int {
	s := 0
	if a.Goal != nil && plan.Goal == *a.Goal {
		s += weightGoal
	}
	if a.Level != nil && plan.Level == *a.Level {
		s += weightLevel
	}
	if a.DaysPerWeek != nil && plan.DaysPerWeek == *a.DaysPerWeek {
		s += weightDays
	}
	if a.TrainingPlace != nil && plan.TrainingPlace == *a.TrainingPlace {
		s += weightPlace
	}
	return s
}
