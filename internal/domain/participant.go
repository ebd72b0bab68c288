package domain

import "errors"

const MaxParticipantNameLen = 36

var (
	ErrParticipantNameEmpty   = errors.New("participant name empty")
	ErrParticipantNameTooLong = errors.New("participant name too long")
)

// Participant is one connected user inside exactly one room. The numeric
// estimate fields are present only while Submitted is true; Sum is cached
// at submission time rather than rederived by every reader.
type Participant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Submitted   bool   `json:"submitted"`
	Risk        *int   `json:"risk,omitempty"`
	Effort      *int   `json:"effort,omitempty"`
	Uncertainty *int   `json:"uncertainty,omitempty"`
	Sum         *int   `json:"sum,omitempty"`
	RoomID      RoomID `json:"roomId"`
}

// NewParticipant avoids raw literals in adapters and keeps construction obvious.
func NewParticipant(id, name string, roomID RoomID) (*Participant, error) {
	if len(name) == 0 {
		return nil, ErrParticipantNameEmpty
	}
	if len(name) > MaxParticipantNameLen {
		return nil, ErrParticipantNameTooLong
	}
	return &Participant{ID: id, Name: name, RoomID: roomID}, nil
}

// SetEstimates records one round's values and caches their sum.
func (p *Participant) SetEstimates(risk, effort, uncertainty int) {
	sum := risk + effort + uncertainty
	p.Risk = &risk
	p.Effort = &effort
	p.Uncertainty = &uncertainty
	p.Sum = &sum
	p.Submitted = true
}

// ClearEstimates returns the participant to the unsubmitted state.
func (p *Participant) ClearEstimates() {
	p.Risk = nil
	p.Effort = nil
	p.Uncertainty = nil
	p.Sum = nil
	p.Submitted = false
}

// Clone returns a deep copy, safe to hand to readers outside the registry lock.
func (p *Participant) Clone() Participant {
	out := *p
	out.Risk = cloneInt(p.Risk)
	out.Effort = cloneInt(p.Effort)
	out.Uncertainty = cloneInt(p.Uncertainty)
	out.Sum = cloneInt(p.Sum)
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
