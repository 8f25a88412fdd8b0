package merger

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const stdlibArchive = "libstdc++.a"

// extractStdObjects locates and unpacks the platform C++ standard
// library. Lookup failures are downgraded to a warning so the merge can
// still proceed, but a failing extraction of a found archive is fatal.
func (m *Merger) extractStdObjects(ctx context.Context) error {
	if m.profile.Stdlib == StdlibNone {
		return nil
	}

	stdlib, err := m.findStdlib(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("continuing without the standard library")
		return nil
	}

	m.log.Info().Str("archive", stdlib).Msg("extracting standard library")
	return m.extractArchive(ctx, stdlib)
}

func (m *Merger) findStdlib(ctx context.Context) (string, error) {
	switch m.profile.Stdlib {
	case StdlibGCCTree:
		return findGCCStdlib(m.profile.StdlibPath)
	case StdlibMinGW:
		return m.findMinGWStdlib(ctx)
	}
	return "", fmt.Errorf("%w for platform %s", ErrStdlibNotFound, m.profile.Name)
}

// findGCCStdlib walks the GCC library tree and returns the first
// libstdc++.a found. Unreadable subtrees are skipped rather than failing
// the search.
func findGCCStdlib(root string) (string, error) {
	var found string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == stdlibArchive {
			found = path
			return fs.SkipAll
		}
		return nil
	})

	if found == "" {
		return "", fmt.Errorf("%w: %s not found under %s", ErrStdlibNotFound, stdlibArchive, root)
	}
	return found, nil
}

func (m *Merger) findMinGWStdlib(ctx context.Context) (string, error) {
	stdlib, err := m.windowsPath(ctx, m.profile.StdlibPath)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(stdlib); err != nil {
		return "", fmt.Errorf("%w: %s; try installing it with: pacman -S mingw-w64-x86_64-gcc",
			ErrStdlibNotFound, m.profile.StdlibPath)
	}
	return stdlib, nil
}
