package domain

// RunState is the lifecycle of a single build invocation.
type RunState uint8

const (
	// StateNotStarted means the tool has not been launched yet.
	StateNotStarted RunState = iota
	// StateRunning means the tool process is alive.
	StateRunning
	// StateSucceeded means the tool exited cleanly and the artifact was found.
	StateSucceeded
	// StateFailedExit means the tool exited with a non-zero status.
	StateFailedExit
	// StateFailedMissingArtifact means the tool exited cleanly without producing the artifact.
	StateFailedMissingArtifact
	// StateFailedLaunch means the tool could not be started.
	StateFailedLaunch
)

// String returns a short name for the state.
func (s RunState) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailedExit:
		return "failed-exit"
	case StateFailedMissingArtifact:
		return "failed-missing-artifact"
	case StateFailedLaunch:
		return "failed-launch"
	default:
		return "unknown"
	}
}

// CanTransition reports whether moving from s to next is allowed.
// There is no retry edge: terminal states stay terminal.
func (s RunState) CanTransition(next RunState) bool {
	switch s {
	case StateNotStarted:
		return next == StateRunning || next == StateFailedLaunch
	case StateRunning:
		return next == StateSucceeded || next == StateFailedExit || next == StateFailedMissingArtifact
	default:
		return false
	}
}
