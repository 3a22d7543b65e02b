package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/zerr"
	"go.trai.ch/zigcli/internal/app"
	"go.trai.ch/zigcli/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the library with zig and print link directives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			configPath, _ := flags.GetString("config")
			format, _ := flags.GetString("format")
			dryRun, _ := flags.GetBool("dry-run")

			settings, err := settingsFromFlags(flags)
			if err != nil {
				return err
			}

			return c.app.Build(cmd.Context(), app.BuildOptions{
				ConfigPath: configPath,
				Settings:   settings,
				Format:     format,
				DryRun:     dryRun,
				Output:     cmd.OutOrStdout(),
			})
		},
	}

	f := cmd.Flags()
	f.StringP("config", "c", "", "Path to the config file (default: <project-dir>/"+domain.ConfigFileName+")")
	f.StringP("project-dir", "C", "", "Directory containing build.zig")
	f.String("name", "", "Library name")
	f.String("entry", "", "Root source file (default: "+domain.DefaultEntryPoint+")")
	f.StringP("out-dir", "o", "", "Install prefix (default: "+domain.DefaultOutputDirName+")")
	f.String("cache-dir", "", "Local zig cache directory")
	f.String("global-cache-dir", "", "Global zig cache directory")
	f.StringP("target", "t", "", "Host target triple (default: this machine)")
	f.String("optimize", "", "Optimize mode: Debug, ReleaseSafe, ReleaseFast, or ReleaseSmall")
	f.String("opt-level", "", "Optimization level: 0, 1, 2, 3, s, or z")
	f.String("cpu", "", "CPU model (default: baseline)")
	f.StringArray("feature", nil, "CPU feature toggle, e.g. +avx2 or -sse4.1 (repeatable)")
	f.Bool("pic", false, "Build position independent code")
	f.Bool("bundle-compiler-rt", false, "Bundle compiler_rt into the library")
	f.String("linkage", "", "Library linkage: static or dynamic")
	f.String("release", "", "Release mode passed as --release: auto, fast, safe, or small")
	f.IntP("jobs", "j", 0, "Number of parallel jobs")
	f.BoolP("verbose", "v", false, "Print zig's compile steps")
	f.StringArrayP("define", "D", nil, "Project option key[=value] passed as -D (repeatable)")
	f.StringP("format", "f", "text", "Result format: text, json, yaml, cargo, or cgo")
	f.Bool("dry-run", false, "Print the zig command line without running it")
	return cmd
}

// settingsFromFlags collects the flags that were set on the command line.
// Flags left at their default do not override the config file.
func settingsFromFlags(flags *pflag.FlagSet) (domain.BuildSettings, error) {
	var s domain.BuildSettings
	s.ProjectDir, _ = flags.GetString("project-dir")
	s.Name, _ = flags.GetString("name")
	s.EntryPoint, _ = flags.GetString("entry")
	s.OutputDir, _ = flags.GetString("out-dir")
	s.CacheDir, _ = flags.GetString("cache-dir")
	s.GlobalCacheDir, _ = flags.GetString("global-cache-dir")
	s.Triple, _ = flags.GetString("target")
	s.Optimize, _ = flags.GetString("optimize")
	s.OptLevel, _ = flags.GetString("opt-level")
	s.CPU, _ = flags.GetString("cpu")
	s.Linkage, _ = flags.GetString("linkage")
	s.Release, _ = flags.GetString("release")

	s.PIC = changedBool(flags, "pic")
	s.BundleCompilerRT = changedBool(flags, "bundle-compiler-rt")
	s.Verbose = changedBool(flags, "verbose")
	if flags.Changed("jobs") {
		jobs, _ := flags.GetInt("jobs")
		s.Jobs = &jobs
	}

	toggles, _ := flags.GetStringArray("feature")
	features, err := parseFeatures(toggles)
	if err != nil {
		return s, err
	}
	s.Features = features

	defines, _ := flags.GetStringArray("define")
	for _, d := range defines {
		s.Options = append(s.Options, "-D"+d)
	}
	return s, nil
}

func changedBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	v, _ := flags.GetBool(name)
	return &v
}

// parseFeatures reads +name and -name toggles. A bare name enables the feature.
func parseFeatures(toggles []string) (map[string]bool, error) {
	if len(toggles) == 0 {
		return nil, nil
	}
	features := make(map[string]bool, len(toggles))
	for _, t := range toggles {
		for _, part := range strings.Split(t, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			enabled := !strings.HasPrefix(part, "-")
			name := strings.TrimLeft(part, "+-")
			if name == "" || len(part)-len(name) > 1 {
				return nil, &domain.BuildError{
					Kind: domain.KindUnsupportedConfiguration,
					Err:  zerr.With(domain.ErrInvalidFeature, "feature", part),
				}
			}
			features[name] = enabled
		}
	}
	return features, nil
}
