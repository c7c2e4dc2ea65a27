package domain

import (
	"errors"
	"fmt"
)

// FlowState is the pass lifecycle state as seen by a single device.
type FlowState string

const (
	// FlowLoading is the initial state while the existence check runs.
	FlowLoading FlowState = "loading"
	// FlowLocked means no pass exists yet; the form is editable.
	FlowLocked FlowState = "locked"
	// FlowGenerating means a submit is in flight.
	FlowGenerating FlowState = "generating"
	// FlowUnlocked means a pass exists and true values may be revealed.
	FlowUnlocked FlowState = "unlocked"
)

// FlowEvent is a transition trigger.
type FlowEvent string

const (
	EventPassFound  FlowEvent = "pass_found"
	EventNoPass     FlowEvent = "no_pass"
	EventSubmit     FlowEvent = "submit"
	EventSaved      FlowEvent = "saved"
	EventSaveFailed FlowEvent = "save_failed"
	EventRegenerate FlowEvent = "regenerate"
)

var ErrInvalidFlowTransition = errors.New("invalid flow transition")

// flowTransitions defines the allowed state machine transitions. Keeping the
// machine explicit makes illegal states (e.g. generating with stale values)
// unrepresentable.
var flowTransitions = map[FlowState]map[FlowEvent]FlowState{
	FlowLoading: {
		EventPassFound: FlowUnlocked,
		EventNoPass:    FlowLocked,
	},
	FlowLocked: {
		EventSubmit: FlowGenerating,
	},
	FlowGenerating: {
		EventSaved:      FlowUnlocked,
		EventSaveFailed: FlowLocked,
	},
	FlowUnlocked: {
		EventRegenerate: FlowLocked,
	},
}

// Apply advances the state machine by one event.
func (s FlowState) Apply(e FlowEvent) (FlowState, error) {
	next, ok := flowTransitions[s][e]
	if !ok {
		return s, fmt.Errorf("%w: %s on %s", ErrInvalidFlowTransition, e, s)
	}
	return next, nil
}
