package workflow

import "context"

// RunState accumulates the events of one run. Lines keep the order they
// arrived in within each stream; nothing is promised across streams.
type RunState struct {
	Output   []string
	Errors   []string
	Status   string // empty until a CompletedEvent arrives
	Stage    Stage
	HadError bool
	Done     bool
}

// Apply folds ev into the state.
func (s *RunState) Apply(ev Event) {
	switch e := ev.(type) {
	case StdoutEvent:
		s.Output = append(s.Output, e.Line)
	case StderrEvent:
		// Any stderr output marks the run as failed, even when the exit
		// status is clean.
		s.HadError = true
		s.Errors = append(s.Errors, e.Line)
	case CompletedEvent:
		s.Status = e.Status
		if !e.Succeeded() {
			s.HadError = true
		}
	case StageEvent:
		s.Stage = e.Stage
	case FailedEvent:
		s.HadError = true
		s.Errors = append(s.Errors, e.Err.Error())
	case DoneEvent:
		s.Done = true
	}
}

// Succeeded reports a clean completion with no error output.
func (s *RunState) Succeeded() bool {
	return s.Status == StatusSuccess && !s.HadError
}

// Collect drains events into a RunState until the channel closes, a
// DoneEvent arrives or ctx ends.
func Collect(ctx context.Context, events <-chan Event) *RunState {
	s := &RunState{}
	for {
		select {
		case <-ctx.Done():
			return s
		case ev, ok := <-events:
			if !ok {
				return s
			}
			s.Apply(ev)
			if s.Done {
				return s
			}
		}
	}
}
