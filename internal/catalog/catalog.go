package catalog

import "strings"

// Catalog is the fixed, read-only set of exercise definitions.
// All other components treat it as immutable reference data.
type Catalog struct {
	exercises []Exercise
	byID      map[string]Exercise
}

func New() *Catalog {
	return newWithExercises(builtinExercises)
}

func newWithExercises(exercises []Exercise) *Catalog {
	byID := make(map[string]Exercise, len(exercises))
	for _, e := range exercises {
		byID[e.ID] = e
	}
	return &Catalog{
		exercises: exercises,
		byID:      byID,
	}
}

func (c *Catalog) Get(id string) (Exercise, bool) {
	e, ok := c.byID[id]
	return e, ok
}

func (c *Catalog) Size() int {
	return len(c.exercises)
}

type Filter struct {
	// Query matches name or description, case-insensitive
	Query      string
	Category   string
	Difficulty Difficulty
}

func (f Filter) matches(e Exercise) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) {
			return false
		}
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && e.Difficulty != f.Difficulty {
		return false
	}
	return true
}

// List returns the exercises matching the filter, in catalog order.
func (c *Catalog) List(filter Filter) []Exercise {
	var result []Exercise
	for _, e := range c.exercises {
		if filter.matches(e) {
			result = append(result, e)
		}
	}
	return result
}

// Categories returns the distinct exercise categories, in order of first appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, e := range c.exercises {
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	return categories
}
