package stats

import (
	"testing"

	"github.com/Mitri45/estimator/internal/domain"
)

func submitted(name string, risk, effort, uncertainty int) domain.Participant {
	p := domain.Participant{ID: name, Name: name, RoomID: "r1"}
	p.SetEstimates(risk, effort, uncertainty)
	return p
}

func unsubmitted(name string) domain.Participant {
	return domain.Participant{ID: name, Name: name, RoomID: "r1"}
}

func TestComputeAverages(t *testing.T) {
	tests := []struct {
		name string
		in   []domain.Participant
		want Averages
	}{
		{
			name: "empty list",
			in:   nil,
			want: Averages{},
		},
		{
			name: "nobody submitted",
			in:   []domain.Participant{unsubmitted("alice"), unsubmitted("bob")},
			want: Averages{},
		},
		{
			name: "single submitter",
			in:   []domain.Participant{submitted("alice", 3, 5, 2), unsubmitted("bob")},
			want: Averages{Risk: 3, Effort: 5, Uncertainty: 2, Sum: 10},
		},
		{
			name: "two submitters",
			in: []domain.Participant{
				submitted("alice", 3, 5, 2),
				submitted("bob", 7, 1, 4),
			},
			want: Averages{Risk: 5.0, Effort: 3.0, Uncertainty: 3.0, Sum: 11.0},
		},
		{
			name: "rounds half up at first decimal",
			in: []domain.Participant{
				submitted("a", 1, 1, 1),
				submitted("b", 2, 2, 2),
				submitted("c", 2, 2, 2),
				submitted("d", 2, 2, 2),
			},
			// 7/4 = 1.75 -> 1.8, sums 21/4 = 5.25 -> 5.3
			want: Averages{Risk: 1.8, Effort: 1.8, Uncertainty: 1.8, Sum: 5.3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAverages(tt.in)
			if got != tt.want {
				t.Errorf("ComputeAverages() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeHighest(t *testing.T) {
	tests := []struct {
		name string
		in   []domain.Participant
		want Highest
	}{
		{
			name: "empty list",
			in:   nil,
			want: Highest{},
		},
		{
			name: "nobody submitted",
			in:   []domain.Participant{unsubmitted("alice")},
			want: Highest{},
		},
		{
			name: "maxima can come from different participants",
			in: []domain.Participant{
				submitted("alice", 3, 5, 2),
				submitted("bob", 7, 1, 4),
			},
			want: Highest{Risk: 7, Effort: 5, Uncertainty: 4, Sum: 12},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHighest(tt.in)
			if got != tt.want {
				t.Errorf("ComputeHighest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAggregatesAreIdempotent(t *testing.T) {
	in := []domain.Participant{
		submitted("alice", 3, 5, 2),
		submitted("bob", 7, 1, 4),
		unsubmitted("carol"),
	}

	first := ComputeAverages(in)
	second := ComputeAverages(in)
	if first != second {
		t.Errorf("ComputeAverages not stable: %+v vs %+v", first, second)
	}

	h1 := ComputeHighest(in)
	h2 := ComputeHighest(in)
	if h1 != h2 {
		t.Errorf("ComputeHighest not stable: %+v vs %+v", h1, h2)
	}
}

func TestStaleFieldsIgnoredWhenUnsubmitted(t *testing.T) {
	// A participant mid-reset can carry numbers with submitted=false;
	// aggregates must not count them.
	stale := unsubmitted("alice")
	v := 9
	stale.Risk = &v

	if got := ComputeAverages([]domain.Participant{stale}); got != (Averages{}) {
		t.Errorf("ComputeAverages() = %+v, want zero value", got)
	}
	if got := ComputeHighest([]domain.Participant{stale}); got != (Highest{}) {
		t.Errorf("ComputeHighest() = %+v, want zero value", got)
	}
}
