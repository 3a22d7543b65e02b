package domain

// Stream names an output stream of the build tool.
type Stream string

const (
	// StreamStdout is the tool's standard output.
	StreamStdout Stream = "stdout"
	// StreamStderr is the tool's standard error.
	StreamStderr Stream = "stderr"
)

// ProcessOutput is what the tool process left behind.
// Stdout and Stderr are kept verbatim.
type ProcessOutput struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// BuildResult is handed back to the host build after a successful run.
type BuildResult struct {
	// Name is the library name the host links with.
	Name string
	// Artifact is the path of the primary library file.
	Artifact string
	// Companions are platform specific side files found next to the artifact.
	Companions []string
	// LibDir is the directory the host adds to its link search path.
	LibDir  string
	Linkage Linkage
	// SystemLibs are extra libraries the host must link, in order.
	SystemLibs []string

	Stdout []byte
	Stderr []byte
	State  RunState
}
