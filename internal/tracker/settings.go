package tracker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// SettingsKey is the well known key of the single settings record.
const SettingsKey = "singleton"

const (
	DefaultStepGoal          = 10000
	DefaultWorkoutRemindTime = "18:00"
	DefaultStepsRemindTime   = "20:00"
	clockLayout              = "15:04"
)

type Settings struct {
	DisplayName          string           `json:"displayName"`
	Mode                 program.Mode     `json:"mode"`
	RamadanEndDate       string           `json:"ramadanEndDate"`
	StepGoalPerDay       int              `json:"stepGoalPerDay"`
	WeightUnit           WeightUnit       `json:"weightUnit"`
	WaistUnit            WaistUnit        `json:"waistUnit"`
	NotificationsEnabled bool             `json:"notificationsEnabled"`
	OnboardingComplete   bool             `json:"onboardingComplete"`
	GymStartDay          calendar.Weekday `json:"gymStartDay"`
	NotifyWorkoutTime    string           `json:"notifyWorkoutTime"`
	NotifyStepsTime      string           `json:"notifyStepsTime"`
	NotifyWeighInDay     calendar.Weekday `json:"notifyWeighInDay"`
	CreatedAt            string           `json:"createdAt"`
	UpdatedAt            string           `json:"updatedAt"`
}

// DefaultSettings are used for fields missing from the stored record and
// before onboarding.
func DefaultSettings() Settings {
	return Settings{
		Mode:              program.ModeNormal,
		StepGoalPerDay:    DefaultStepGoal,
		WeightUnit:        Kilograms,
		WaistUnit:         Centimeters,
		GymStartDay:       calendar.Monday,
		NotifyWorkoutTime: DefaultWorkoutRemindTime,
		NotifyStepsTime:   DefaultStepsRemindTime,
		NotifyWeighInDay:  calendar.Monday,
	}
}

func settingsDefaults() store.Patch {
	d := DefaultSettings()
	return store.Patch{
		"displayName":          d.DisplayName,
		"mode":                 d.Mode,
		"ramadanEndDate":       d.RamadanEndDate,
		"stepGoalPerDay":       d.StepGoalPerDay,
		"weightUnit":           d.WeightUnit,
		"waistUnit":            d.WaistUnit,
		"notificationsEnabled": d.NotificationsEnabled,
		"onboardingComplete":   d.OnboardingComplete,
		"gymStartDay":          d.GymStartDay,
		"notifyWorkoutTime":    d.NotifyWorkoutTime,
		"notifyStepsTime":      d.NotifyStepsTime,
		"notifyWeighInDay":     d.NotifyWeighInDay,
	}
}

// SettingsPatch holds the settings a user can change. Nil fields are left
// as they are.
type SettingsPatch struct {
	DisplayName          *string           `json:"displayName,omitempty"`
	Mode                 *program.Mode     `json:"mode,omitempty"`
	RamadanEndDate       *string           `json:"ramadanEndDate,omitempty"`
	StepGoalPerDay       *int              `json:"stepGoalPerDay,omitempty"`
	WeightUnit           *WeightUnit       `json:"weightUnit,omitempty"`
	WaistUnit            *WaistUnit        `json:"waistUnit,omitempty"`
	NotificationsEnabled *bool             `json:"notificationsEnabled,omitempty"`
	GymStartDay          *calendar.Weekday `json:"gymStartDay,omitempty"`
	NotifyWorkoutTime    *string           `json:"notifyWorkoutTime,omitempty"`
	NotifyStepsTime      *string           `json:"notifyStepsTime,omitempty"`
	NotifyWeighInDay     *calendar.Weekday `json:"notifyWeighInDay,omitempty"`
}

func (p SettingsPatch) Validate() error {
	if p.Mode != nil && !p.Mode.IsValid() {
		return apperr.Validation(`mode must be "normal" or "ramadan"`)
	}
	if p.RamadanEndDate != nil && *p.RamadanEndDate != "" && !calendar.IsValidISO(*p.RamadanEndDate) {
		return apperr.Validation("ramadan end date must be YYYY-MM-DD")
	}
	if p.StepGoalPerDay != nil && *p.StepGoalPerDay <= 0 {
		return apperr.Validation("step goal must be positive")
	}
	if p.WeightUnit != nil && !p.WeightUnit.IsValid() {
		return apperr.Validation(`weight unit must be "kg" or "lbs"`)
	}
	if p.WaistUnit != nil && !p.WaistUnit.IsValid() {
		return apperr.Validation(`waist unit must be "cm" or "in"`)
	}
	if p.GymStartDay != nil && !p.GymStartDay.IsValid() {
		return apperr.Validation("invalid gym start day %q", *p.GymStartDay)
	}
	if p.NotifyWeighInDay != nil && !p.NotifyWeighInDay.IsValid() {
		return apperr.Validation("invalid weigh-in day %q", *p.NotifyWeighInDay)
	}
	for _, clock := range []*string{p.NotifyWorkoutTime, p.NotifyStepsTime} {
		if clock == nil {
			continue
		}
		if _, err := time.Parse(clockLayout, *clock); err != nil {
			return apperr.Validation("reminder time %q must be HH:mm", *clock)
		}
	}
	return nil
}

// Settings returns the stored settings, or a NotFound error before
// onboarding.
func (s *Service) Settings(ctx context.Context) (_ *Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.settings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rec, err := s.store.Get(ctx, store.KindSettings, "", SettingsKey)
	if err != nil {
		return nil, err
	}
	return decodeSettings(rec)
}

func decodeSettings(rec *store.Record) (*Settings, error) {
	settings := DefaultSettings()
	if err := json.Unmarshal(rec.Data, &settings); err != nil {
		return nil, apperr.Storage(err, "decode settings")
	}
	return &settings, nil
}

// SettingsOrDefault is used where a missing settings record is not an
// error, e.g. step goals before onboarding.
func (s *Service) SettingsOrDefault(ctx context.Context) (*Settings, error) {
	settings, err := s.Settings(ctx)
	if apperr.IsNotFound(err) {
		d := DefaultSettings()
		return &d, nil
	}
	return settings, err
}

// CompleteOnboarding creates the settings record, or updates it when the
// user runs onboarding again, and marks onboarding as done.
func (s *Service) CompleteOnboarding(ctx context.Context, patch SettingsPatch) (_ *Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.settings.onboarding")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := patch.Validate(); err != nil {
		return nil, err
	}
	p, err := store.PatchOf(patch)
	if err != nil {
		return nil, apperr.Validation("invalid settings: %s", err)
	}
	now := s.now().UTC().Format(time.RFC3339)
	p["onboardingComplete"] = true
	p["updatedAt"] = now

	defaults := settingsDefaults()
	defaults["createdAt"] = now

	rec, err := s.store.Upsert(ctx, store.KindSettings, "", SettingsKey, p, defaults)
	if err != nil {
		return nil, err
	}
	settings, err := decodeSettings(rec)
	if err != nil {
		return nil, err
	}
	log.Infof("onboarding complete, mode: %s", settings.Mode)
	return settings, nil
}

// UpdateSettings applies patch to the existing settings. It fails with
// NotFound before onboarding.
func (s *Service) UpdateSettings(ctx context.Context, patch SettingsPatch) (_ *Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.settings.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := patch.Validate(); err != nil {
		return nil, err
	}
	p, err := store.PatchOf(patch)
	if err != nil {
		return nil, apperr.Validation("invalid settings: %s", err)
	}

	rec, err := s.store.Modify(ctx, store.KindSettings, "", SettingsKey, nil, func(current store.Patch) (store.Patch, error) {
		if len(current) == 0 {
			return nil, apperr.NotFound("settings not found, onboarding is not complete")
		}
		p["updatedAt"] = s.now().UTC().Format(time.RFC3339)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return decodeSettings(rec)
}

// ApplyAutoModeSwitch moves a user in ramadan mode back to the normal
// program once the configured ramadan end date is reached.
func (s *Service) ApplyAutoModeSwitch(ctx context.Context) (switched bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.settings.auto_mode_switch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	settings, err := s.Settings(ctx)
	if apperr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !shouldSwitchToNormal(settings, s.Today()) {
		return false, nil
	}

	normal := program.ModeNormal
	if _, err := s.UpdateSettings(ctx, SettingsPatch{Mode: &normal}); err != nil {
		return false, err
	}
	log.Infof("ramadan ended on %s, switched to normal mode", settings.RamadanEndDate)
	return true, nil
}

func shouldSwitchToNormal(settings *Settings, today string) bool {
	return settings.Mode == program.ModeRamadan &&
		settings.RamadanEndDate != "" &&
		today >= settings.RamadanEndDate
}
