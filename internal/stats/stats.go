// Package stats computes aggregate views over a room snapshot. Pure and
// stateless: both functions may be re-invoked on the same snapshot any
// number of times without side effects.
package stats

import (
	"math"

	"github.com/Mitri45/estimator/internal/domain"
)

// Averages holds per-field arithmetic means, rounded to one decimal.
type Averages struct {
	Risk        float64 `json:"risk"`
	Effort      float64 `json:"effort"`
	Uncertainty float64 `json:"uncertainty"`
	Sum         float64 `json:"sum"`
}

// Highest holds per-field maxima. The four maxima may come from
// different participants.
type Highest struct {
	Risk        int `json:"risk"`
	Effort      int `json:"effort"`
	Uncertainty int `json:"uncertainty"`
	Sum         int `json:"sum"`
}

// ComputeAverages averages risk, effort, uncertainty and the cached sum
// across submitted participants. An empty or all-unsubmitted snapshot
// yields the zero value.
func ComputeAverages(participants []domain.Participant) Averages {
	submitted := filterSubmitted(participants)
	if len(submitted) == 0 {
		return Averages{}
	}

	var risk, effort, uncertainty, sum int
	for _, p := range submitted {
		risk += deref(p.Risk)
		effort += deref(p.Effort)
		uncertainty += deref(p.Uncertainty)
		sum += deref(p.Sum)
	}
	n := float64(len(submitted))
	return Averages{
		Risk:        round1(float64(risk) / n),
		Effort:      round1(float64(effort) / n),
		Uncertainty: round1(float64(uncertainty) / n),
		Sum:         round1(float64(sum) / n),
	}
}

// ComputeHighest takes the per-field max across submitted participants.
// The sum maximum is recomputed from the three fields rather than read
// from the cache.
func ComputeHighest(participants []domain.Participant) Highest {
	submitted := filterSubmitted(participants)
	if len(submitted) == 0 {
		return Highest{}
	}

	var out Highest
	for _, p := range submitted {
		out.Risk = max(out.Risk, deref(p.Risk))
		out.Effort = max(out.Effort, deref(p.Effort))
		out.Uncertainty = max(out.Uncertainty, deref(p.Uncertainty))
		out.Sum = max(out.Sum, deref(p.Risk)+deref(p.Effort)+deref(p.Uncertainty))
	}
	return out
}

func filterSubmitted(participants []domain.Participant) []domain.Participant {
	out := make([]domain.Participant, 0, len(participants))
	for _, p := range participants {
		if p.Submitted {
			out = append(out, p)
		}
	}
	return out
}

// round1 rounds half away from zero at the first decimal digit; values
// here are non-negative so this is round-half-up.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
