package globe

import (
	"math"
	"strconv"
)

// Score bounds.
const (
	MinScore = 10.0
	MaxScore = 95.0
)

// Tier colors used by the globe markers.
const (
	ColorRed   = "#ef4444"
	ColorAmber = "#fbbf24"
	ColorGreen = "#22c55e"
)

// Defaults substituted for an indicator that is absent or not a finite
// number.  EPI is on a 0-100 scale; the other inputs are fractions.
const (
	DefaultRenewables = 0.0
	DefaultHDI        = 0.7
	DefaultEPI        = 50.0
	DefaultCO2        = 0.0
)

// Inputs are the optional numeric indicators of one country.  A nil field
// takes its default.
type Inputs struct {
	Renewables *float64 // share of renewable energy, 0-1
	HDI        *float64 // human development index, 0-1
	EPI        *float64 // environmental performance index, 0-100
	CO2        *float64 // tonnes per capita
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// Score computes the sustainability score, clamped to [MinScore, MaxScore]
// and rounded to one decimal.
func Score(in Inputs) float64 {
	score, _ := scoreOf(in)
	return score
}

// scoreOf also reports whether the raw value hit one of the bounds.
func scoreOf(in Inputs) (float64, bool) {
	ren := valueOr(in.Renewables, DefaultRenewables)
	hdi := valueOr(in.HDI, DefaultHDI)
	epi := valueOr(in.EPI, DefaultEPI) / 100
	co2 := valueOr(in.CO2, DefaultCO2)

	raw := ((ren+hdi+epi)/3 - co2/20) * 100
	clamped := raw <= MinScore || raw >= MaxScore
	return round1(clamp(raw, MinScore, MaxScore)), clamped
}

// FormatScore renders a score for display: one decimal, or a bare integer
// when the score sits on a bound because of clamping.
func FormatScore(score float64, clamped bool) string {
	if clamped {
		return strconv.FormatFloat(score, 'f', 0, 64)
	}
	return strconv.FormatFloat(score, 'f', 1, 64)
}

// TierColor bands a score into red, amber and green.
func TierColor(score float64) string {
	switch {
	case score < 40:
		return ColorRed
	case score < 70:
		return ColorAmber
	default:
		return ColorGreen
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// round1 rounds the exact binary value to one decimal, ties to even.
func round1(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}
