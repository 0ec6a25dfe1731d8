package program

import (
	"encoding/json"
	"testing"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Validate(t *testing.T) {
	require.NoError(t, DefaultCatalog().Validate())
}

func TestDefaultCatalog_ProgramFor(t *testing.T) {
	c := DefaultCatalog()

	normal, err := c.ProgramFor(ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, "normal-5day", normal.ID)
	assert.Equal(t, "normal-push", normal.Schedule.For(calendar.Monday))
	assert.Equal(t, "normal-steps", normal.Schedule.For(calendar.Thursday))
	assert.Equal(t, "normal-rest", normal.Schedule.For(calendar.Sunday))
	assert.Len(t, normal.Sessions, 7)

	ramadan, err := c.ProgramFor(ModeRamadan)
	require.NoError(t, err)
	assert.Equal(t, "ramadan-4day", ramadan.ID)
	assert.Equal(t, "ramadan-steps", ramadan.Schedule.For(calendar.Saturday))

	gymDays := 0
	for _, d := range calendar.Week {
		s, err := ramadan.Session(ramadan.Schedule.For(d))
		require.NoError(t, err)
		if s.GymDay {
			gymDays++
		}
	}
	assert.Equal(t, 4, gymDays)

	_, err = c.ProgramFor("cutting")
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}

func TestCatalog_IsImmutable(t *testing.T) {
	c := DefaultCatalog()

	p, err := c.ProgramFor(ModeNormal)
	require.NoError(t, err)
	p.Schedule[0] = "hacked"
	p.Sessions[0].Exercises[0].ExerciseID = "hacked"

	s, err := c.Session(ModeNormal, "normal-push")
	require.NoError(t, err)
	s.Exercises[0].SetScheme.Sets = 99

	again, err := c.ProgramFor(ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, "normal-push", again.Schedule.For(calendar.Monday))
	assert.Equal(t, "chest-press-machine", again.Sessions[0].Exercises[0].ExerciseID)
	assert.Equal(t, 4, again.Sessions[0].Exercises[0].SetScheme.Sets)
}

func TestCatalog_Session(t *testing.T) {
	c := DefaultCatalog()

	s, err := c.Session(ModeNormal, "normal-legs")
	require.NoError(t, err)
	assert.Equal(t, SessionLegs, s.Type)
	assert.True(t, s.GymDay)
	require.Len(t, s.Exercises, 5)
	assert.Equal(t, SetScheme{Sets: 4, RepsMin: 10, RepsMax: 15, RIRTarget: 2, RestSeconds: 120}, s.Exercises[0].SetScheme)

	steps, err := c.Session(ModeNormal, "normal-steps")
	require.NoError(t, err)
	assert.True(t, steps.IsStepDay())
	assert.False(t, steps.GymDay)
	assert.NotNil(t, steps.Exercises)

	_, err = c.Session(ModeNormal, "ramadan-upper-a")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = c.Session("bulk", "normal-legs")
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}

func TestCatalog_Validate_ReportsAllProblems(t *testing.T) {
	broken := normal5Day
	broken.Schedule[2] = "missing-session"
	c := NewCatalog([]Program{broken}, []Exercise{
		{ID: "chest-press-machine", Replacements: []Replacement{{ExerciseID: "nowhere"}}},
	})

	err := c.Validate()
	require.ErrorIs(t, err, apperr.ErrConfiguration)
	msg := err.Error()
	assert.Contains(t, msg, `mode "ramadan": no program`)
	assert.Contains(t, msg, `WED maps to unknown session "missing-session"`)
	assert.Contains(t, msg, `unknown exercise "lat-pulldown"`)
	assert.Contains(t, msg, `unknown replacement "nowhere"`)

	// the source program is untouched
	assert.Equal(t, "normal-legs", normal5Day.Schedule[2])
}

func TestCatalog_Exercises(t *testing.T) {
	c := DefaultCatalog()

	e, ok := c.Exercise("face-pull")
	require.True(t, ok)
	assert.Equal(t, "Cable Face Pull", e.Name)
	assert.Equal(t, CategoryIsolation, e.Category)

	_, ok = c.Exercise("jefferson-curl")
	assert.False(t, ok)
	stub := c.ExerciseOrStub("jefferson-curl")
	assert.Equal(t, "jefferson curl", stub.Name)

	all := c.Exercises()
	assert.Len(t, all, 35)
	assert.Equal(t, "barbell-bench-press", all[0].ID)
}

func TestCatalog_ExerciseDetail(t *testing.T) {
	c := DefaultCatalog()

	d, err := c.ExerciseDetail("barbell-bench-press")
	require.NoError(t, err)
	assert.Equal(t, "Barbell Bench Press", d.Name)
	assert.Equal(t, []ReplacementOption{
		{ExerciseID: "db-bench-press", Name: "Dumbbell Bench Press", Equipment: []string{"dumbbell"}, Reason: "Use if: shoulder pain > 3/10 or no spotter"},
		{ExerciseID: "incline-db-press", Name: "Incline Dumbbell Press", Equipment: []string{"dumbbell"}, Reason: "Use if: AC joint pain or want upper-chest focus"},
	}, d.Replacements)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"replacements":[{"exerciseId":"db-bench-press","name":"Dumbbell Bench Press"`)

	_, err = c.ExerciseDetail("jefferson-curl")
	assert.True(t, apperr.IsNotFound(err))
}

func TestCatalog_Slots(t *testing.T) {
	c := DefaultCatalog()
	push, err := c.Session(ModeNormal, "normal-push")
	require.NoError(t, err)

	slots := c.Slots(push)
	require.Len(t, slots, len(push.Exercises))
	assert.Equal(t, "chest-press-machine", slots[0].ExerciseID)
	assert.Equal(t, "Chest Press Machine", slots[0].Name)
	assert.Equal(t, 4, slots[0].SetScheme.Sets)
	assert.NotEmpty(t, slots[0].SafetyNote)
	require.Len(t, slots[0].Replacements, 2)
	assert.Equal(t, "Incline Chest Press Machine", slots[0].Replacements[0].Name)

	rest, err := c.Session(ModeNormal, "normal-rest")
	require.NoError(t, err)
	assert.Empty(t, c.Slots(rest))
}

func TestCatalog_NutritionTarget(t *testing.T) {
	c := DefaultCatalog()

	normal, err := c.NutritionTarget(ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, 2400, normal.CaloriesMin)
	assert.Equal(t, 3000, normal.WaterMlMin)
	assert.Len(t, normal.Meals, 6)

	ramadan, err := c.NutritionTarget(ModeRamadan)
	require.NoError(t, err)
	assert.Equal(t, ModeRamadan, ramadan.Mode)
	assert.Equal(t, 2000, ramadan.CaloriesMin)
	assert.Equal(t, 3500, ramadan.WaterMlMin)
	require.Len(t, ramadan.Meals, 5)
	assert.Equal(t, "ramadan-suhoor", ramadan.Meals[0].ID)

	// unknown modes fall back to normal
	fallback, err := c.NutritionTarget(Mode("keto"))
	require.NoError(t, err)
	assert.Equal(t, ModeNormal, fallback.Mode)

	// callers get copies
	ramadan.Meals[0].Suggestions[0] = "nothing"
	again, err := c.NutritionTarget(ModeRamadan)
	require.NoError(t, err)
	assert.NotEqual(t, "nothing", again.Meals[0].Suggestions[0])

	_, err = NewCatalog(nil, nil).NutritionTarget(ModeNormal)
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}

func TestExerciseKey(t *testing.T) {
	for in, want := range map[string]string{
		"Lat Pulldown":              "lat_pulldown",
		"  Romanian Deadlift (RDL)": "romanian_deadlift_rdl",
		"Chest-Supported Row!!":     "chest_supported_row",
		"___":                       "",
		"Incline 30° DB Press":      "incline_30_db_press",
	} {
		assert.Equal(t, want, ExerciseKey(in), in)
	}
}

func TestWeeklySchedule_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(ramadan4Day.Schedule)
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Len(t, m, 7)
	assert.Equal(t, "ramadan-lower-b", m["FRI"])
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("ramadan")
	require.NoError(t, err)
	assert.Equal(t, ModeRamadan, m)

	_, err = ParseMode("Normal")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
