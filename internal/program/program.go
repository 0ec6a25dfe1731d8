package program

import (
	"encoding/json"
	"slices"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"
)

type Mode string

const (
	ModeNormal  Mode = "normal"
	ModeRamadan Mode = "ramadan"
)

func (m Mode) IsValid() bool {
	return m == ModeNormal || m == ModeRamadan
}

func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.IsValid() {
		return "", apperr.Validation(`mode must be "normal" or "ramadan"`)
	}
	return m, nil
}

type SessionType string

const (
	SessionPush     SessionType = "push"
	SessionPull     SessionType = "pull"
	SessionLegs     SessionType = "legs"
	SessionUpper    SessionType = "upper"
	SessionLower    SessionType = "lower"
	SessionFullBody SessionType = "full-body"
	SessionCardio   SessionType = "cardio"
	SessionSteps    SessionType = "steps"
	SessionRest     SessionType = "rest"
)

type SetScheme struct {
	Sets        int `json:"sets"`
	RepsMin     int `json:"repsMin"`
	RepsMax     int `json:"repsMax"`
	RIRTarget   int `json:"rirTarget"`
	RestSeconds int `json:"restSeconds"`
}

// Slot is one exercise in a session template.
type Slot struct {
	ExerciseID string    `json:"exerciseId"`
	SetScheme  SetScheme `json:"setScheme"`
	Notes      string    `json:"notes,omitempty"`
}

type SessionTemplate struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Type             SessionType `json:"type"`
	GymDay           bool        `json:"gymDay"`
	Description      string      `json:"description"`
	EstimatedMinutes int         `json:"estimatedMinutes"`
	WarmupProtocol   string      `json:"warmupProtocol,omitempty"`
	Exercises        []Slot      `json:"exercises"`
}

// IsStepDay reports whether the session counts toward step adherence.
func (s SessionTemplate) IsStepDay() bool {
	return s.Type == SessionSteps
}

func (s SessionTemplate) clone() SessionTemplate {
	s.Exercises = slices.Clone(s.Exercises)
	if s.Exercises == nil {
		s.Exercises = []Slot{}
	}
	return s
}

// WeeklySchedule maps every weekday (indexed MON=0..SUN=6) to a session id.
type WeeklySchedule [7]string

func (w WeeklySchedule) For(d calendar.Weekday) string {
	i := d.Index()
	if i < 0 {
		return ""
	}
	return w[i]
}

func (w WeeklySchedule) MarshalJSON() ([]byte, error) {
	m := make(map[calendar.Weekday]string, len(w))
	for i, d := range calendar.Week {
		m[d] = w[i]
	}
	return json.Marshal(m)
}

type Program struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Mode        Mode              `json:"mode"`
	Description string            `json:"description"`
	Schedule    WeeklySchedule    `json:"weeklySchedule"`
	Sessions    []SessionTemplate `json:"sessions"`
	Notes       string            `json:"notes,omitempty"`
}

// Session returns a copy of the session template with the given id.
func (p *Program) Session(id string) (SessionTemplate, error) {
	for _, s := range p.Sessions {
		if s.ID == id {
			return s.clone(), nil
		}
	}
	return SessionTemplate{}, apperr.NotFound("session %q not found in program %q", id, p.ID)
}

func (p *Program) clone() *Program {
	c := *p
	c.Sessions = make([]SessionTemplate, len(p.Sessions))
	for i, s := range p.Sessions {
		c.Sessions[i] = s.clone()
	}
	return &c
}
