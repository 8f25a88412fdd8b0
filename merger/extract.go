package merger

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Import libraries are stubs for linking against DLLs and carry no real
// code objects.
const importLibSuffix = ".dll.a"

// discoverArchives lists the LLVM component archives beneath the install
// directory's lib folder, skipping import libraries.
func discoverArchives(installDir string) ([]string, error) {
	libs, err := filepath.Glob(filepath.Join(installDir, "lib", "*.a"))
	if err != nil {
		return nil, err
	}

	var archives []string
	for _, lib := range libs {
		if strings.HasSuffix(lib, importLibSuffix) {
			continue
		}
		archives = append(archives, lib)
	}
	return archives, nil
}

func (m *Merger) extractLLVMObjects(ctx context.Context) error {
	m.log.Info().Msg("extracting LLVM objects")

	archives, err := discoverArchives(m.installDir)
	if err != nil {
		return err
	}

	for _, archive := range archives {
		if err := m.extractArchive(ctx, archive); err != nil {
			return err
		}
	}
	return nil
}

// extractArchive unpacks one archive's members into its own scratch
// subdirectory. The archiver extracts into its working directory, so the
// invocation runs with Dir set to that subdirectory.
func (m *Merger) extractArchive(ctx context.Context, archive string) error {
	dir, err := m.scratch.subdir(archiveStem(archive))
	if err != nil {
		return err
	}

	m.log.Info().Str("archive", archive).Str("dir", dir).Msg("extracting")

	_, err = m.runner.Run(ctx, Invocation{
		Path: m.toolchain.AR,
		Args: []string{"x", archive},
		Dir:  dir,
	})
	if err != nil {
		return errors.Join(fmt.Errorf("%w: extracting %s", ErrArchiverFailed, archive), err)
	}
	return nil
}
