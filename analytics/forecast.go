package analytics

import (
	"app/models"
)

// ConfidenceStrategy labels a forecast given the historical series and
// the requested horizon. The label is empty for strategies that only
// produce a numeric score.
type ConfidenceStrategy interface {
	Confidence(series []float64, horizonDays int) (score int, label string)
}

// HorizonConfidence maps the standard horizons to fixed scores. Used by
// the payload predict path where the caller picks 1, 7 or 30 days.
type HorizonConfidence struct{}

func (HorizonConfidence) Confidence(_ []float64, horizonDays int) (int, string) {
	switch horizonDays {
	case 1:
		return 85, ""
	case 7:
		return 75, ""
	default:
		return 65, ""
	}
}

// VariationConfidence derives a discrete label from the coefficient of
// variation of the historical series: a stable series earns "high", a
// volatile one "low". Used by the DB-backed forecast where an arbitrary
// horizon comes with a full lookback.
type VariationConfidence struct{}

func (VariationConfidence) Confidence(series []float64, _ int) (int, string) {
	cv := CoefficientOfVariation(series)
	switch {
	case cv < 20:
		return 90, "high"
	case cv > 50:
		return 55, "low"
	default:
		return 75, "medium"
	}
}

// Forecaster combines a moving average with a two-point trend to produce
// a point prediction. The zero value forecasts daily order counts over a
// 14-day window with a 7-day moving average and horizon-based confidence.
type Forecaster struct {
	Window   int
	MAWindow int
	Strategy ConfidenceStrategy
}

func (f Forecaster) window() int {
	if f.Window <= 0 {
		return 14
	}
	return f.Window
}

func (f Forecaster) maWindow() int {
	if f.MAWindow <= 0 {
		return 7
	}
	return f.MAWindow
}

func (f Forecaster) strategy() ConfidenceStrategy {
	if f.Strategy == nil {
		return HorizonConfidence{}
	}
	return f.Strategy
}

// Predict buckets the orders into a dense daily-count sequence anchored
// at the most recent order date and extrapolates horizonDays ahead.
// Empty input yields a zero forecast with zero confidence.
func (f Forecaster) Predict(orders []models.Order, horizonDays int) models.Forecast {
	seq, _ := DailyCounts(orders, f.window())
	return f.PredictSeries(seq, horizonDays)
}

// PredictSeries forecasts from an already-bucketed daily sequence,
// oldest first. Used directly by the DB-backed variant, which builds the
// series in SQL.
func (f Forecaster) PredictSeries(seq []float64, horizonDays int) models.Forecast {
	if len(seq) == 0 {
		return models.Forecast{Value: 0, Confidence: 0}
	}

	prediction := MovingAverage(seq, f.maWindow()) + Trend(seq)*float64(horizonDays)

	value := int(prediction)
	if value < 0 {
		value = 0
	}

	score, label := f.strategy().Confidence(seq, horizonDays)
	return models.Forecast{Value: value, Confidence: score, ConfidenceLabel: label}
}
