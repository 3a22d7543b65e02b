package config

import "go.trai.ch/zigcli/internal/core/domain"

// Zigfile represents the structure of the zigcli.yaml configuration file.
type Zigfile struct {
	Version string `yaml:"version"`

	Name           string `yaml:"name"`
	EntryPoint     string `yaml:"entryPoint"`
	OutputDir      string `yaml:"outputDir"`
	CacheDir       string `yaml:"cacheDir"`
	GlobalCacheDir string `yaml:"globalCacheDir"`

	Target   string          `yaml:"target"`
	Optimize string          `yaml:"optimize"`
	OptLevel string          `yaml:"optLevel"`
	CPU      string          `yaml:"cpu"`
	Features map[string]bool `yaml:"features"`

	PIC              *bool    `yaml:"pic"`
	BundleCompilerRT *bool    `yaml:"bundleCompilerRt"`
	Linkage          string   `yaml:"linkage"`
	Release          string   `yaml:"release"`
	Jobs             *int     `yaml:"jobs"`
	Verbose          *bool    `yaml:"verbose"`
	Options          []string `yaml:"options"`
}

func (z *Zigfile) settings() domain.BuildSettings {
	return domain.BuildSettings{
		Name:             z.Name,
		EntryPoint:       z.EntryPoint,
		OutputDir:        z.OutputDir,
		CacheDir:         z.CacheDir,
		GlobalCacheDir:   z.GlobalCacheDir,
		PIC:              z.PIC,
		BundleCompilerRT: z.BundleCompilerRT,
		Verbose:          z.Verbose,
		Jobs:             z.Jobs,
		Linkage:          z.Linkage,
		Release:          z.Release,
		CPU:              z.CPU,
		Options:          z.Options,
		Triple:           z.Target,
		Optimize:         z.Optimize,
		OptLevel:         z.OptLevel,
		Features:         z.Features,
	}
}
