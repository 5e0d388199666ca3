package workflow

// Event is the interface for all workflow events.
// UI handles events via type switch.
type Event interface {
	isEvent()
}

// StatusSuccess is the completion status of a process that exited cleanly.
const StatusSuccess = "Success"

// StdoutEvent carries one line the launched process wrote to stdout.
type StdoutEvent struct {
	Line string
}

func (StdoutEvent) isEvent() {}

// StderrEvent carries one line the launched process wrote to stderr.
type StderrEvent struct {
	Line string
}

func (StderrEvent) isEvent() {}

// CompletedEvent is emitted exactly once per launch, after every output
// line. Status is StatusSuccess or "Error: <message>".
type CompletedEvent struct {
	Status string
}

func (CompletedEvent) isEvent() {}

// Succeeded reports whether the process exited cleanly.
func (e CompletedEvent) Succeeded() bool {
	return e.Status == StatusSuccess
}

// Stage names a step of the run pipeline.
type Stage string

const (
	StageWriteConfig Stage = "write-config"
	StageLaunch      Stage = "launch"
	StageParse       Stage = "parse-output"
	StageGenerate    Stage = "generate-scenarios"
)

// StageEvent is emitted when the pipeline enters a new step.
type StageEvent struct {
	Stage  Stage
	Detail string // e.g. the config file written or the script run
}

func (StageEvent) isEvent() {}

// FailedEvent is emitted when a pipeline step fails outside the launched
// process, e.g. the config could not be written.
type FailedEvent struct {
	Err error
}

func (FailedEvent) isEvent() {}

// DoneEvent is emitted when the pipeline returns, successful or not.
type DoneEvent struct{}

func (DoneEvent) isEvent() {}
