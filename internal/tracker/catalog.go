package tracker

import (
	"context"

	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

func (s *Service) Programs() []*program.Program {
	return s.catalog.Programs()
}

// Exercises lists the whole exercise library with replacements resolved.
func (s *Service) Exercises() []program.ExerciseDetail {
	exercises := s.catalog.Exercises()
	out := make([]program.ExerciseDetail, 0, len(exercises))
	for _, e := range exercises {
		d, err := s.catalog.ExerciseDetail(e.ID)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (s *Service) Exercise(id string) (*program.ExerciseDetail, error) {
	d, err := s.catalog.ExerciseDetail(id)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// NutritionTarget returns the daily target of mode. An empty mode means the
// user's current one, normal before onboarding.
func (s *Service) NutritionTarget(ctx context.Context, mode string) (_ *program.NutritionTarget, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.nutrition.target")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m := program.Mode(mode)
	if mode == "" {
		settings, err := s.SettingsOrDefault(ctx)
		if err != nil {
			return nil, err
		}
		m = settings.Mode
	} else if m, err = program.ParseMode(mode); err != nil {
		return nil, err
	}

	target, err := s.catalog.NutritionTarget(m)
	if err != nil {
		return nil, err
	}
	return &target, nil
}
