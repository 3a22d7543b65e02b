package domain

// BuildSettings is raw, unvalidated build input as it comes from the
// configuration file or the command line. Nil pointers and empty strings
// mean "not set" so that layers can be merged.
type BuildSettings struct {
	Name           string
	EntryPoint     string
	ProjectDir     string
	OutputDir      string
	CacheDir       string
	GlobalCacheDir string

	PIC              *bool
	BundleCompilerRT *bool
	Verbose          *bool
	Jobs             *int

	Linkage string
	Release string
	CPU     string
	Options []string

	Triple   string
	Optimize string
	OptLevel string
	Features map[string]bool
}

// Merge returns s with every field that is set in over replaced.
// Options and features accumulate, with over taking precedence per feature.
func (s BuildSettings) Merge(over BuildSettings) BuildSettings {
	out := s
	setString(&out.Name, over.Name)
	setString(&out.EntryPoint, over.EntryPoint)
	setString(&out.ProjectDir, over.ProjectDir)
	setString(&out.OutputDir, over.OutputDir)
	setString(&out.CacheDir, over.CacheDir)
	setString(&out.GlobalCacheDir, over.GlobalCacheDir)
	setString(&out.Linkage, over.Linkage)
	setString(&out.Release, over.Release)
	setString(&out.CPU, over.CPU)
	setString(&out.Triple, over.Triple)
	if over.Optimize != "" || over.OptLevel != "" {
		out.Optimize = over.Optimize
		out.OptLevel = over.OptLevel
	}

	if over.PIC != nil {
		out.PIC = over.PIC
	}
	if over.BundleCompilerRT != nil {
		out.BundleCompilerRT = over.BundleCompilerRT
	}
	if over.Verbose != nil {
		out.Verbose = over.Verbose
	}
	if over.Jobs != nil {
		out.Jobs = over.Jobs
	}

	if len(over.Options) > 0 {
		out.Options = append(append([]string(nil), s.Options...), over.Options...)
	}
	if len(over.Features) > 0 {
		merged := make(map[string]bool, len(s.Features)+len(over.Features))
		for k, v := range s.Features {
			merged[k] = v
		}
		for k, v := range over.Features {
			merged[k] = v
		}
		out.Features = merged
	}
	return out
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
