package artifact

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
	"go.trai.ch/zigcli/internal/core/domain"
)

// Resolver implements ports.ArtifactResolver by scanning the install prefix.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve locates the library an invocation was expected to install. It
// must only be called after zig exited successfully. A missing artifact is a
// BuildError of kind KindMissingArtifact naming the path that was expected.
func (r *Resolver) Resolve(inv *domain.Invocation) (*domain.BuildResult, error) {
	prefix := InstallPrefix(inv)
	layout := Expected(inv.Target.Triple, inv.Config.Name, inv.Config.Linkage)
	artifact := filepath.Join(prefix, filepath.FromSlash(layout.Artifact))

	found, err := listFiles(filepath.Dir(artifact))
	if err != nil || !slices.Contains(found, filepath.Base(artifact)) {
		return nil, &domain.BuildError{
			Kind:     domain.KindMissingArtifact,
			Tool:     inv.Tool.String(),
			Command:  inv.String(),
			Dir:      inv.Dir,
			Expected: artifact,
			Err:      missingCause(err, found),
		}
	}

	var companions []string
	for _, c := range layout.Companions {
		p := filepath.Join(prefix, filepath.FromSlash(c))
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			companions = append(companions, p)
		}
	}

	return &domain.BuildResult{
		Name:       inv.Config.Name,
		Artifact:   artifact,
		Companions: companions,
		LibDir:     filepath.Join(prefix, domain.LibDirName),
		Linkage:    inv.Config.Linkage,
		SystemLibs: SystemLibs(inv.Target.Triple, inv.Config.Linkage),
	}, nil
}

// InstallPrefix returns the prefix zig installed into. A relative prefix
// is resolved against the directory zig ran in.
func InstallPrefix(inv *domain.Invocation) string {
	if filepath.IsAbs(inv.Prefix) || inv.Dir == "" {
		return inv.Prefix
	}
	return filepath.Join(inv.Dir, inv.Prefix)
}

// listFiles returns the sorted names of the non-directory entries in dir.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func missingCause(listErr error, found []string) error {
	if listErr != nil {
		if errors.Is(listErr, fs.ErrNotExist) {
			return zerr.Wrap(listErr, domain.ErrArtifactNotFound.Error())
		}
		return zerr.Wrap(listErr, "failed to scan output directory")
	}
	if len(found) == 0 {
		return zerr.With(domain.ErrArtifactNotFound, "found", "nothing")
	}
	return zerr.With(domain.ErrArtifactNotFound, "found", strings.Join(found, ", "))
}
