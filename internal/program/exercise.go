package program

import (
	"regexp"
	"strings"
)

type Category string

const (
	CategoryCompound   Category = "compound"
	CategoryIsolation  Category = "isolation"
	CategoryBodyweight Category = "bodyweight"
)

type Muscle string

type Replacement struct {
	ExerciseID string `json:"exerciseId"`
	Reason     string `json:"reason"`
}

type Exercise struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Category     Category      `json:"category"`
	Primary      []Muscle      `json:"primaryMuscles"`
	Secondary    []Muscle      `json:"secondaryMuscles"`
	Equipment    []string      `json:"equipment"`
	Replacements []Replacement `json:"replacements,omitempty"`
	SafetyNote   string        `json:"safetyNote,omitempty"`
}

// ReplacementOption is a replacement with the alternative looked up.
type ReplacementOption struct {
	ExerciseID string   `json:"exerciseId"`
	Name       string   `json:"name"`
	Equipment  []string `json:"equipment,omitempty"`
	Reason     string   `json:"reason"`
}

// ExerciseDetail is an exercise as served to clients.
type ExerciseDetail struct {
	Exercise
	Replacements []ReplacementOption `json:"replacements"`
}

// PlannedSlot is a session slot with the exercise it names filled in.
type PlannedSlot struct {
	Slot
	Name         string              `json:"name"`
	SafetyNote   string              `json:"safetyNote,omitempty"`
	Replacements []ReplacementOption `json:"replacements"`
}

// StubExercise is what callers get for an id missing from the library.
func StubExercise(id string) Exercise {
	return Exercise{
		ID:       id,
		Name:     strings.ReplaceAll(id, "-", " "),
		Category: CategoryCompound,
	}
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// ExerciseKey normalises a free-form exercise name into a storage key,
// e.g. "Lat Pulldown (wide)" -> "lat_pulldown_wide".
func ExerciseKey(name string) string {
	key := nonAlnum.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
	return strings.Trim(key, "_")
}
