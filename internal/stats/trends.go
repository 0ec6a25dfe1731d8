package stats

import (
	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/tracker"
)

type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Trends struct {
	WeightUnit tracker.WeightUnit `json:"weightUnit"`
	Weight     []TrendPoint       `json:"weight"`
	WaistUnit  tracker.WaistUnit  `json:"waistUnit"`
	Waist      []TrendPoint       `json:"waist"`
	Steps      []TrendPoint       `json:"steps"`
}

// WeightTrend lists the logged weights in unit, oldest first. Days without
// a weight entry are skipped.
func WeightTrend(logs []tracker.BodyLog, unit tracker.WeightUnit) []TrendPoint {
	points := make([]TrendPoint, 0, len(logs))
	for _, l := range logs {
		if l.WeightKg == nil {
			continue
		}
		points = append(points, TrendPoint{Date: l.Date, Value: tracker.FromKg(*l.WeightKg, unit)})
	}
	return points
}

// WaistTrend lists the logged waist measurements in unit, oldest first.
func WaistTrend(logs []tracker.BodyLog, unit tracker.WaistUnit) []TrendPoint {
	points := make([]TrendPoint, 0, len(logs))
	for _, l := range logs {
		if l.WaistCm == nil {
			continue
		}
		points = append(points, TrendPoint{Date: l.Date, Value: tracker.FromCm(*l.WaistCm, unit)})
	}
	return points
}

// StepsTrend has one point per day of the window, 0 for days with no log.
func StepsTrend(logs []tracker.StepsLog, today string, days int) ([]TrendPoint, error) {
	window, err := calendar.LastNDays(today, days)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]int, len(logs))
	for _, l := range logs {
		byDate[l.Date] = l.Steps
	}
	points := make([]TrendPoint, 0, len(window))
	for _, d := range window {
		points = append(points, TrendPoint{Date: d, Value: float64(byDate[d])})
	}
	return points, nil
}
