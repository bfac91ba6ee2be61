package services

import (
	"errors"
	"sync"
)

// ErrSubmitting is returned by Flow.Begin while a submission is outstanding.
var ErrSubmitting = errors.New("a submission is already in progress")

type FlowState int

const (
	FlowIdle FlowState = iota
	FlowSubmitting
	FlowSucceeded
	FlowFailed
)

func (s FlowState) String() string {
	switch s {
	case FlowSubmitting:
		return "submitting"
	case FlowSucceeded:
		return "success"
	case FlowFailed:
		return "failure"
	default:
		return "idle"
	}
}

// Flow tracks a single form submission. Only one submission may be in
// flight at a time; a finished flow can be started again.
type Flow struct {
	mu    sync.Mutex
	state FlowState
	err   error
}

func (f *Flow) Begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FlowSubmitting {
		return ErrSubmitting
	}
	f.state = FlowSubmitting
	f.err = nil
	return nil
}

func (f *Flow) Finish(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.err = err
	if err != nil {
		f.state = FlowFailed
		return
	}
	f.state = FlowSucceeded
}

func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the error of the last finished submission.
func (f *Flow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
