package merger

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// scratchArea stages extracted object files before re-archiving. It is
// created at the start of a run and removed on every exit path.
type scratchArea struct {
	root string
	dirs map[string]string
}

func newScratchArea() (*scratchArea, error) {
	root, err := os.MkdirTemp("", "armerge-")
	if err != nil {
		return nil, err
	}

	return &scratchArea{
		root: root,
		dirs: map[string]string{},
	}, nil
}

func (s *scratchArea) Release() {
	os.RemoveAll(s.root)
}

// subdir creates the staging directory for one archive. Each archive gets
// its own directory so that same-named members of different archives do
// not clobber each other. Two input archives sharing a base name would
// silently merge their members, so that is rejected instead.
func (s *scratchArea) subdir(stem string) (string, error) {
	if existing, ok := s.dirs[stem]; ok {
		return "", fmt.Errorf("%w: %s already staged at %s", ErrDuplicateArchive, stem, existing)
	}

	dir := filepath.Join(s.root, stem)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	s.dirs[stem] = dir
	return dir, nil
}

// objects walks the staged tree and collects every file with the
// platform's object extension. Duplicate member names across different
// archives are distinct files and both are returned.
func (s *scratchArea) objects(ext string) ([]string, error) {
	var objs []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ext) {
			objs = append(objs, path)
		}
		return nil
	})
	return objs, err
}

// archiveStem returns the archive's base name without the archive
// suffix, e.g. "libfoo" for both "libfoo.a" and "libfoo.dll.a". Only the
// known suffixes are stripped so that versioned names like
// "libLLVM-17.0.6.a" keep their full stem. MSYS2 tools may hand back
// paths with either separator, so both are honored.
func archiveStem(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(base, importLibSuffix)
	base = strings.TrimSuffix(base, ".a")
	return base
}
