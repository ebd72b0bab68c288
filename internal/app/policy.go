package app

import "github.com/Mitri45/estimator/internal/core"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	DropConnection
)

// Policy decides what happens to a member whose connection could not
// accept a broadcast frame.
type Policy interface {
	OnBackpressure(id core.ConnectionID) BackpressureAction
}

// SimplePolicy closes slow connections; their pump teardown then funnels
// through the normal disconnect path.
type SimplePolicy struct{}

func (SimplePolicy) OnBackpressure(id core.ConnectionID) BackpressureAction {
	return DropConnection
}
