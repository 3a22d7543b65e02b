package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why a build did not produce a result.
type ErrorKind uint8

const (
	// KindLaunchFailure means the tool could not be found or started.
	KindLaunchFailure ErrorKind = iota + 1
	// KindBuildFailure means the tool ran and exited with a non-zero status.
	KindBuildFailure
	// KindMissingArtifact means the tool succeeded but the artifact is absent.
	KindMissingArtifact
	// KindUnsupportedConfiguration means the request was rejected before launch.
	KindUnsupportedConfiguration
)

// String returns the name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindLaunchFailure:
		return "LaunchFailure"
	case KindBuildFailure:
		return "BuildFailure"
	case KindMissingArtifact:
		return "MissingArtifactFailure"
	case KindUnsupportedConfiguration:
		return "UnsupportedConfiguration"
	default:
		return "Unknown"
	}
}

// State returns the terminal run state matching the kind.
func (k ErrorKind) State() RunState {
	switch k {
	case KindLaunchFailure:
		return StateFailedLaunch
	case KindBuildFailure:
		return StateFailedExit
	case KindMissingArtifact:
		return StateFailedMissingArtifact
	default:
		return StateNotStarted
	}
}

// BuildError carries enough context to diagnose a failed build without
// running it again.
type BuildError struct {
	Kind     ErrorKind
	Tool     string
	Command  string
	Dir      string
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	// Expected is the artifact path that was looked for.
	Expected string
	Err      error
}

// Message returns the description of this error without its cause.
func (e *BuildError) Message() string {
	var b strings.Builder
	switch e.Kind {
	case KindLaunchFailure:
		fmt.Fprintf(&b, "failed to launch %s", e.Tool)
	case KindBuildFailure:
		fmt.Fprintf(&b, "%s exited with status %d", e.Tool, e.ExitCode)
	case KindMissingArtifact:
		fmt.Fprintf(&b, "%s succeeded but did not produce %s", e.Tool, e.Expected)
	default:
		b.WriteString("unsupported configuration")
	}
	if e.Command != "" {
		b.WriteString("\ncommand: " + e.Command)
	}
	if e.Kind == KindLaunchFailure && e.Tool == DefaultToolName {
		b.WriteString("\nis zig installed? set " + ToolEnvVar + " to point at the executable")
	}
	if e.Kind == KindBuildFailure || e.Kind == KindMissingArtifact {
		if out := strings.TrimRight(string(e.Stdout), "\n"); out != "" {
			b.WriteString("\nstdout:\n" + out)
		}
		if out := strings.TrimRight(string(e.Stderr), "\n"); out != "" {
			b.WriteString("\nstderr:\n" + out)
		}
	}
	return b.String()
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return e.Message() + ": " + e.Err.Error()
	}
	return e.Message()
}

// Unwrap returns the underlying cause, if any.
func (e *BuildError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a BuildError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
