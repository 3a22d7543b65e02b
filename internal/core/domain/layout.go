package domain

import "path/filepath"

const (
	// ToolEnvVar is the environment variable that overrides the zig executable.
	ToolEnvVar = "ZIG"

	// DefaultToolName is the zig executable looked up on PATH when ToolEnvVar is unset.
	DefaultToolName = "zig"

	// DefaultOutputDirName is the install prefix used when none is configured.
	DefaultOutputDirName = "zig-out"

	// DefaultEntryPoint is the root source file used when none is configured.
	DefaultEntryPoint = "src/root.zig"

	// ConfigVersion is the only supported value of the config file's version key.
	ConfigVersion = "1"

	// CacheDirName is the name of the local zig cache directory inside the prefix.
	CacheDirName = ".zig-cache"

	// LibDirName is the prefix subdirectory holding libraries.
	LibDirName = "lib"

	// BinDirName is the prefix subdirectory holding executables and DLLs.
	BinDirName = "bin"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "zigcli.yaml"
)

// DefaultCacheDir returns the local cache directory for the given prefix.
func DefaultCacheDir(outputDir string) string {
	return filepath.Join(outputDir, CacheDirName)
}
