package program

import (
	"fmt"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"

	"go.uber.org/multierr"
)

// Catalog is the immutable registry of programs and exercises.
// All getters hand out copies, so callers cannot mutate it.
type Catalog struct {
	programs  map[Mode]*Program
	exercises map[string]Exercise
	order     []string
	nutrition map[Mode]NutritionTarget
}

var defaultCatalog = NewCatalog([]Program{normal5Day, ramadan4Day}, library).
	WithNutrition(normalNutrition, ramadanNutrition)

// DefaultCatalog returns the built-in catalog with the normal and ramadan programs.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func NewCatalog(programs []Program, exercises []Exercise) *Catalog {
	c := &Catalog{
		programs:  make(map[Mode]*Program, len(programs)),
		exercises: make(map[string]Exercise, len(exercises)),
	}
	for i := range programs {
		c.programs[programs[i].Mode] = programs[i].clone()
	}
	for _, e := range exercises {
		if _, ok := c.exercises[e.ID]; !ok {
			c.order = append(c.order, e.ID)
		}
		c.exercises[e.ID] = e
	}
	return c
}

// WithNutrition registers the nutrition target of each mode.
func (c *Catalog) WithNutrition(targets ...NutritionTarget) *Catalog {
	if c.nutrition == nil {
		c.nutrition = make(map[Mode]NutritionTarget, len(targets))
	}
	for _, t := range targets {
		c.nutrition[t.Mode] = t.clone()
	}
	return c
}

// NutritionTarget returns the target for mode, the normal one when mode has
// none registered.
func (c *Catalog) NutritionTarget(mode Mode) (NutritionTarget, error) {
	if t, ok := c.nutrition[mode]; ok {
		return t.clone(), nil
	}
	if t, ok := c.nutrition[ModeNormal]; ok {
		return t.clone(), nil
	}
	return NutritionTarget{}, apperr.Configuration("no nutrition target registered")
}

// ProgramFor returns the program registered for mode.
func (c *Catalog) ProgramFor(mode Mode) (*Program, error) {
	p, ok := c.programs[mode]
	if !ok {
		return nil, apperr.Configuration("no program registered for mode %q", mode)
	}
	return p.clone(), nil
}

// Session looks a session template up by id within the program of mode.
func (c *Catalog) Session(mode Mode, id string) (SessionTemplate, error) {
	p, ok := c.programs[mode]
	if !ok {
		return SessionTemplate{}, apperr.Configuration("no program registered for mode %q", mode)
	}
	return p.Session(id)
}

func (c *Catalog) Programs() []*Program {
	out := make([]*Program, 0, len(c.programs))
	for _, m := range []Mode{ModeNormal, ModeRamadan} {
		if p, ok := c.programs[m]; ok {
			out = append(out, p.clone())
		}
	}
	return out
}

func (c *Catalog) Exercise(id string) (Exercise, bool) {
	e, ok := c.exercises[id]
	return e, ok
}

// ExerciseOrStub never fails: unknown ids get a named stub.
func (c *Catalog) ExerciseOrStub(id string) Exercise {
	if e, ok := c.exercises[id]; ok {
		return e
	}
	return StubExercise(id)
}

// ExerciseDetail returns the exercise with its replacements resolved
// against the library, or NotFound for an unknown id.
func (c *Catalog) ExerciseDetail(id string) (ExerciseDetail, error) {
	e, ok := c.exercises[id]
	if !ok {
		return ExerciseDetail{}, apperr.NotFound("exercise %q not found", id)
	}
	return c.detail(e), nil
}

func (c *Catalog) detail(e Exercise) ExerciseDetail {
	d := ExerciseDetail{
		Exercise:     e,
		Replacements: make([]ReplacementOption, 0, len(e.Replacements)),
	}
	for _, r := range e.Replacements {
		alt := c.ExerciseOrStub(r.ExerciseID)
		d.Replacements = append(d.Replacements, ReplacementOption{
			ExerciseID: alt.ID,
			Name:       alt.Name,
			Equipment:  alt.Equipment,
			Reason:     r.Reason,
		})
	}
	return d
}

// Slots resolves every slot of s against the library.
func (c *Catalog) Slots(s SessionTemplate) []PlannedSlot {
	out := make([]PlannedSlot, 0, len(s.Exercises))
	for _, slot := range s.Exercises {
		d := c.detail(c.ExerciseOrStub(slot.ExerciseID))
		out = append(out, PlannedSlot{
			Slot:         slot,
			Name:         d.Name,
			SafetyNote:   d.SafetyNote,
			Replacements: d.Replacements,
		})
	}
	return out
}

func (c *Catalog) Exercises() []Exercise {
	out := make([]Exercise, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.exercises[id])
	}
	return out
}

// Validate checks referential integrity: every schedule entry names a session
// of its program, every slot names a known exercise and every replacement
// points back into the library. All problems are reported together.
func (c *Catalog) Validate() error {
	var errs error
	for _, mode := range []Mode{ModeNormal, ModeRamadan} {
		p, ok := c.programs[mode]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("mode %q: no program", mode))
			continue
		}
		sessionIDs := make(map[string]bool, len(p.Sessions))
		for _, s := range p.Sessions {
			sessionIDs[s.ID] = true
			for _, slot := range s.Exercises {
				if _, ok := c.exercises[slot.ExerciseID]; !ok {
					errs = multierr.Append(errs, fmt.Errorf("session %q: unknown exercise %q", s.ID, slot.ExerciseID))
				}
				if slot.SetScheme.Sets <= 0 || slot.SetScheme.RepsMin > slot.SetScheme.RepsMax {
					errs = multierr.Append(errs, fmt.Errorf("session %q: bad set scheme for %q", s.ID, slot.ExerciseID))
				}
			}
		}
		for i, d := range calendar.Week {
			if !sessionIDs[p.Schedule[i]] {
				errs = multierr.Append(errs, fmt.Errorf("program %q: %s maps to unknown session %q", p.ID, d, p.Schedule[i]))
			}
		}
	}
	for _, id := range c.order {
		for _, r := range c.exercises[id].Replacements {
			if _, ok := c.exercises[r.ExerciseID]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("exercise %q: unknown replacement %q", id, r.ExerciseID))
			}
		}
	}
	for mode, t := range c.nutrition {
		if !mode.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("nutrition target for unknown mode %q", mode))
		}
		if t.CaloriesMin > t.CaloriesMax || t.CarbsGMin > t.CarbsGMax || t.FatGMin > t.FatGMax {
			errs = multierr.Append(errs, fmt.Errorf("nutrition target %q: min above max", mode))
		}
	}
	if errs != nil {
		return apperr.Configuration("catalog integrity: %s", errs)
	}
	return nil
}
