package catalog

import (
	"fmt"

	"coaching-offers-api/internal/models"
)

// Store holds the authoritative, load-time-validated catalog of Plans,
// Programas and quiz rules. It is read-only after construction.
type Store struct {
	plans     []models.Plan
	programas []models.Programa
	rules     []models.QuizRule

	planIndex     map[string]int
	programaIndex map[string]int
	tierIndex     map[models.Tier]int
}

// NewStore builds the Store from the static catalog data.
func NewStore() (*Store, error) {
	return newStore(plans, programas, quizRules)
}

// newStore validates the given data and builds the lookup indexes. Duplicate
// slugs and tier coverage violations are configuration errors: construction
// fails instead of silently overwriting.
func newStore(planList []models.Plan, programaList []models.Programa, ruleList []models.QuizRule) (*Store, error) {
	s := &Store{
		plans:         planList,
		programas:     programaList,
		rules:         ruleList,
		planIndex:     make(map[string]int, len(planList)),
		programaIndex: make(map[string]int, len(programaList)),
		tierIndex:     make(map[models.Tier]int, len(programaList)),
	}

	for i, p := range planList {
		if _, dup := s.planIndex[p.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate plan slug %q", p.Slug)
		}
		s.planIndex[p.Slug] = i
	}

	for i, p := range programaList {
		if _, dup := s.programaIndex[p.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate programa slug %q", p.Slug)
		}
		s.programaIndex[p.Slug] = i

		if _, dup := s.tierIndex[p.Tier]; dup {
			return nil, fmt.Errorf("catalog: duplicate programa tier %q", p.Tier)
		}
		s.tierIndex[p.Tier] = i
	}

	for _, tier := range models.TierOrder {
		if _, ok := s.tierIndex[tier]; !ok {
			return nil, fmt.Errorf("catalog: no programa for tier %q", tier)
		}
	}

	return s, nil
}

// Plans returns all plans in presentation order.
func (s *Store) Plans() []models.Plan {
	return s.plans
}

// Programas returns all programas in presentation order.
func (s *Store) Programas() []models.Programa {
	return s.programas
}

// Rules returns the ordered quiz rule table.
func (s *Store) Rules() []models.QuizRule {
	return s.rules
}

// PlanBySlug looks up a plan by slug.
func (s *Store) PlanBySlug(slug string) (models.Plan, bool) {
	i, ok := s.planIndex[slug]
	if !ok {
		return models.Plan{}, false
	}
	return s.plans[i], true
}

// ProgramaBySlug looks up a programa by slug.
func (s *Store) ProgramaBySlug(slug string) (models.Programa, bool) {
	i, ok := s.programaIndex[slug]
	if !ok {
		return models.Programa{}, false
	}
	return s.programas[i], true
}

// ProgramaByTier looks up a programa by tier.
func (s *Store) ProgramaByTier(tier models.Tier) (models.Programa, bool) {
	i, ok := s.tierIndex[tier]
	if !ok {
		return models.Programa{}, false
	}
	return s.programas[i], true
}
